// Package pipeline provides the high-level orchestration for CV generation:
// record retrieval, markup assembly, external compilation and artifact
// publication.
package pipeline

import (
	"context"
	"fmt"

	"github.com/hansriess/academic-site/internal/db"
	"github.com/hansriess/academic-site/internal/publish"
	"github.com/hansriess/academic-site/internal/rendering"
	"github.com/hansriess/academic-site/internal/storage"
	"github.com/hansriess/academic-site/internal/typeset"
)

// State names one step of a run. A run traverses the states in order
// exactly once; Aborted is terminal and reachable from Fetching and
// Compiling only.
type State string

const (
	StateIdle       State = "idle"
	StateFetching   State = "fetching"
	StateFormatting State = "formatting"
	StateCompiling  State = "compiling"
	StatePublishing State = "publishing"
	StateCleanup    State = "cleanup"
	StateDone       State = "done"
	StateAborted    State = "aborted"
)

// ProgressEvent reports a state transition during a run.
type ProgressEvent struct {
	State   State  `json:"state"`
	Message string `json:"message"`
}

// ProgressCallback is called on every state transition when configured.
type ProgressCallback func(event ProgressEvent)

// Source supplies the record snapshot a run formats. *db.DB satisfies it.
type Source interface {
	LoadSnapshot(ctx context.Context) (*db.Snapshot, error)
}

// Options holds configuration for a pipeline run.
type Options struct {
	OutputDir            string          // working directory for tex/pdf/aux files
	StylePath            string          // .sty asset staged beside the markup
	CompilerBinary       string          // defaults to typeset.DefaultBinary
	Store                storage.Storage // nil disables publishing
	CleanFailedArtifacts bool            // remove working files after a failed compile
	OnProgress           ProgressCallback
}

// Result describes a completed run.
type Result struct {
	PDFPath      string `json:"pdf_path"`
	PublishedURL string `json:"published_url,omitempty"`
}

// emit calls the progress callback if configured.
func emit(opts *Options, state State, format string, args ...any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{State: state, Message: fmt.Sprintf(format, args...)})
	}
}

// Run executes one full CV generation: snapshot the record store, assemble
// the LaTeX document, compile it, publish the artifact and clean up. Every
// failure is terminal for the run; nothing is retried.
func Run(ctx context.Context, src Source, opts Options) (*Result, error) {
	emit(&opts, StateFetching, "loading records")
	snap, err := src.LoadSnapshot(ctx)
	if err != nil {
		emit(&opts, StateAborted, "record fetch failed: %v", err)
		return nil, fmt.Errorf("loading records failed: %w", err)
	}

	emit(&opts, StateFormatting, "assembling document")
	document := rendering.BuildDocument(snap)

	compiler := &typeset.Compiler{
		Binary:    opts.CompilerBinary,
		OutputDir: opts.OutputDir,
		StylePath: opts.StylePath,
		OnPass: func(pass int) {
			emit(&opts, StateCompiling, "compiler pass %d", pass)
		},
	}
	pdfPath, err := compiler.Compile(ctx, document)
	if err != nil {
		emit(&opts, StateAborted, "compilation failed: %v", err)
		// Working files stay in place for inspection unless the cleanup
		// policy says otherwise.
		if opts.CleanFailedArtifacts {
			typeset.CleanupArtifacts(opts.OutputDir)
		}
		return nil, err
	}

	emit(&opts, StatePublishing, "publishing artifact")
	publisher := &publish.Publisher{Store: opts.Store}
	url := publisher.Publish(ctx, pdfPath)
	emit(&opts, StateCleanup, "removed auxiliary files")

	emit(&opts, StateDone, "cv written to %s", pdfPath)
	return &Result{PDFPath: pdfPath, PublishedURL: url}, nil
}
