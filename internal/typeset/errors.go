// Package typeset invokes the external LaTeX compiler on assembled CV markup.
package typeset

import "fmt"

// CompileError represents a failed compiler invocation. LogOutput carries
// the compiler's log file content, falling back to raw process output when
// the log could not be read.
type CompileError struct {
	Message   string
	Pass      int
	LogOutput string
	Cause     error
}

func (e *CompileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("compile error (pass %d): %s: %v", e.Pass, e.Message, e.Cause)
	}
	return fmt.Sprintf("compile error (pass %d): %s", e.Pass, e.Message)
}

func (e *CompileError) Unwrap() error {
	return e.Cause
}
