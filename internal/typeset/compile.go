package typeset

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const (
	// DefaultBinary is the LaTeX compiler invoked when none is configured.
	DefaultBinary = "pdflatex"

	// jobName is the fixed basename of every working file; each run
	// overwrites the previous one (last-writer-wins).
	jobName = "cv"

	// passes is the number of compiler invocations; the second pass
	// resolves cross-references produced by the first.
	passes = 2
)

// auxExtensions are the working files pdflatex leaves next to the PDF.
var auxExtensions = []string{".aux", ".log", ".out", ".toc", ".lof", ".lot"}

// Compiler writes assembled markup to a working file and runs the external
// LaTeX compiler over it in batch mode.
type Compiler struct {
	Binary    string          // compiler executable, DefaultBinary when empty
	OutputDir string          // working and output directory for all compile files
	StylePath string          // optional .sty asset staged next to the .tex file
	OnPass    func(pass int)  // optional, called before each invocation
}

// Compile writes document to <OutputDir>/cv.tex and invokes the compiler
// exactly twice. It returns the produced PDF path. A non-zero exit on
// either pass aborts immediately, without attempting the second pass,
// and the returned CompileError carries the compiler log (or raw output
// when the log is unreadable).
//
// No timeout is imposed; cancellation is the caller's context's business.
func (c *Compiler) Compile(ctx context.Context, document string) (string, error) {
	if err := os.MkdirAll(c.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", c.OutputDir, err)
	}

	texPath := filepath.Join(c.OutputDir, jobName+".tex")
	if err := os.WriteFile(texPath, []byte(document), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", texPath, err)
	}

	if err := c.stageStyle(); err != nil {
		return "", err
	}

	binary := c.Binary
	if binary == "" {
		binary = DefaultBinary
	}
	if _, err := exec.LookPath(binary); err != nil {
		return "", fmt.Errorf("%s not found in PATH: %w", binary, err)
	}

	for pass := 1; pass <= passes; pass++ {
		if c.OnPass != nil {
			c.OnPass(pass)
		}
		cmd := exec.CommandContext(ctx, binary,
			"-interaction=nonstopmode",
			"-output-directory", c.OutputDir,
			texPath)
		cmd.Dir = c.OutputDir

		var stdout, stderr strings.Builder
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr

		if runErr := cmd.Run(); runErr != nil {
			return "", &CompileError{
				Message:   "compiler exited with non-zero status",
				Pass:      pass,
				LogOutput: c.compileLog(stdout.String() + stderr.String()),
				Cause:     runErr,
			}
		}
	}

	return filepath.Join(c.OutputDir, jobName+".pdf"), nil
}

// stageStyle copies the configured style asset into the output directory
// so the compiler can resolve \usepackage{academic-cv}.
func (c *Compiler) stageStyle() error {
	if c.StylePath == "" {
		return nil
	}
	content, err := os.ReadFile(c.StylePath)
	if err != nil {
		return fmt.Errorf("failed to read style asset %s: %w", c.StylePath, err)
	}
	dest := filepath.Join(c.OutputDir, filepath.Base(c.StylePath))
	if err := os.WriteFile(dest, content, 0644); err != nil {
		return fmt.Errorf("failed to stage style asset: %w", err)
	}
	return nil
}

// compileLog reads the compiler's log file, falling back to the raw
// process output when the log is unavailable.
func (c *Compiler) compileLog(rawOutput string) string {
	logPath := filepath.Join(c.OutputDir, jobName+".log")
	content, err := os.ReadFile(logPath)
	if err != nil {
		return rawOutput
	}
	return string(content)
}

// CleanupArtifacts removes the auxiliary files a compile run leaves in
// outputDir. Missing files are not errors.
func CleanupArtifacts(outputDir string) {
	for _, ext := range auxExtensions {
		_ = os.Remove(filepath.Join(outputDir, jobName+ext))
	}
}
