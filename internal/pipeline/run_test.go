package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hansriess/academic-site/internal/db"
	"github.com/hansriess/academic-site/internal/typeset"
)

type stubSource struct {
	snap *db.Snapshot
	err  error
}

func (s *stubSource) LoadSnapshot(context.Context) (*db.Snapshot, error) {
	return s.snap, s.err
}

func okSource() *stubSource {
	return &stubSource{snap: &db.Snapshot{
		Profile: &db.Profile{Name: "Ada Example", Email: "ada@example.edu"},
	}}
}

// stubCompiler writes an executable shell script standing in for pdflatex.
func stubCompiler(t *testing.T, dir, script string) string {
	t.Helper()
	path := filepath.Join(dir, "fakelatex")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755))
	return path
}

func collectStates(events []ProgressEvent) []State {
	states := make([]State, len(events))
	for i, ev := range events {
		states[i] = ev.State
	}
	return states
}

func TestRun_HappyPath(t *testing.T) {
	dir := t.TempDir()
	binary := stubCompiler(t, dir, `printf '%%PDF-1.5' > "$PWD/cv.pdf"; exit 0`)

	var events []ProgressEvent
	res, err := Run(context.Background(), okSource(), Options{
		OutputDir:      dir,
		CompilerBinary: binary,
		OnProgress:     func(ev ProgressEvent) { events = append(events, ev) },
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "cv.pdf"), res.PDFPath)
	assert.Empty(t, res.PublishedURL)
	assert.Equal(t, []State{
		StateFetching,
		StateFormatting,
		StateCompiling,
		StateCompiling,
		StatePublishing,
		StateCleanup,
		StateDone,
	}, collectStates(events))

	// The assembled markup reached the compiler's working file.
	tex, readErr := os.ReadFile(filepath.Join(dir, "cv.tex"))
	require.NoError(t, readErr)
	assert.Contains(t, string(tex), `\cvname{Ada Example}`)
}

func TestRun_MissingProfileAborts(t *testing.T) {
	src := &stubSource{err: db.ErrNoProfile}

	var events []ProgressEvent
	_, err := Run(context.Background(), src, Options{
		OutputDir:  t.TempDir(),
		OnProgress: func(ev ProgressEvent) { events = append(events, ev) },
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, db.ErrNoProfile))
	assert.Equal(t, []State{StateFetching, StateAborted}, collectStates(events))
}

func TestRun_CompileFailureKeepsWorkingFiles(t *testing.T) {
	dir := t.TempDir()
	binary := stubCompiler(t, dir, `echo "! Emergency stop." > "$PWD/cv.log"; exit 1`)

	var events []ProgressEvent
	_, err := Run(context.Background(), okSource(), Options{
		OutputDir:      dir,
		CompilerBinary: binary,
		OnProgress:     func(ev ProgressEvent) { events = append(events, ev) },
	})
	require.Error(t, err)

	var compileErr *typeset.CompileError
	require.True(t, errors.As(err, &compileErr))
	assert.Equal(t, 1, compileErr.Pass)
	assert.Equal(t, StateAborted, events[len(events)-1].State)

	// Default policy leaves the log behind for inspection.
	_, statErr := os.Stat(filepath.Join(dir, "cv.log"))
	assert.NoError(t, statErr)
}

func TestRun_CompileFailureCleansWhenConfigured(t *testing.T) {
	dir := t.TempDir()
	binary := stubCompiler(t, dir, `echo "! Emergency stop." > "$PWD/cv.log"; exit 1`)

	_, err := Run(context.Background(), okSource(), Options{
		OutputDir:            dir,
		CompilerBinary:       binary,
		CleanFailedArtifacts: true,
	})
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "cv.log"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_NoProgressCallbackIsFine(t *testing.T) {
	dir := t.TempDir()
	binary := stubCompiler(t, dir, `printf '%%PDF-1.5' > "$PWD/cv.pdf"; exit 0`)

	res, err := Run(context.Background(), okSource(), Options{
		OutputDir:      dir,
		CompilerBinary: binary,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.PDFPath)
}
