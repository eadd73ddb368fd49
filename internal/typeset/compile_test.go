package typeset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeStubCompiler drops an executable shell script into dir and returns
// its path. The script stands in for pdflatex in tests.
func writeStubCompiler(t *testing.T, dir, script string) string {
	t.Helper()
	path := filepath.Join(dir, "fakelatex")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755))
	return path
}

func TestCompile_TwoPassesProducePDF(t *testing.T) {
	dir := t.TempDir()
	// Count invocations and emit the PDF, as pdflatex would.
	binary := writeStubCompiler(t, dir, `
echo run >> "$PWD/passes.txt"
printf '%%PDF-1.5' > "$PWD/cv.pdf"
exit 0
`)

	var passes []int
	c := &Compiler{
		Binary:    binary,
		OutputDir: dir,
		OnPass:    func(pass int) { passes = append(passes, pass) },
	}
	pdfPath, err := c.Compile(context.Background(), `\documentclass{article}`)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "cv.pdf"), pdfPath)
	assert.Equal(t, []int{1, 2}, passes)

	runs, err := os.ReadFile(filepath.Join(dir, "passes.txt"))
	require.NoError(t, err)
	assert.Equal(t, "run\nrun\n", string(runs))

	tex, err := os.ReadFile(filepath.Join(dir, "cv.tex"))
	require.NoError(t, err)
	assert.Equal(t, `\documentclass{article}`, string(tex))
}

func TestCompile_FirstPassFailureAbortsRun(t *testing.T) {
	dir := t.TempDir()
	binary := writeStubCompiler(t, dir, `
echo run >> "$PWD/passes.txt"
echo "! Undefined control sequence." >&2
exit 1
`)

	c := &Compiler{Binary: binary, OutputDir: dir}
	_, err := c.Compile(context.Background(), "broken")
	require.Error(t, err)

	var compileErr *CompileError
	require.True(t, errors.As(err, &compileErr))
	assert.Equal(t, 1, compileErr.Pass)
	assert.Contains(t, compileErr.LogOutput, "Undefined control sequence")

	// The second pass never runs after a failed first.
	runs, readErr := os.ReadFile(filepath.Join(dir, "passes.txt"))
	require.NoError(t, readErr)
	assert.Equal(t, "run\n", string(runs))
}

func TestCompile_SecondPassFailure(t *testing.T) {
	dir := t.TempDir()
	// Succeed on the first invocation, fail on the second.
	binary := writeStubCompiler(t, dir, `
if [ -f "$PWD/first-done" ]; then
  echo "! Missing \begin{document}." >&2
  exit 1
fi
touch "$PWD/first-done"
printf '%%PDF-1.5' > "$PWD/cv.pdf"
exit 0
`)

	c := &Compiler{Binary: binary, OutputDir: dir}
	_, err := c.Compile(context.Background(), "doc")
	require.Error(t, err)

	var compileErr *CompileError
	require.True(t, errors.As(err, &compileErr))
	assert.Equal(t, 2, compileErr.Pass)
	assert.Contains(t, compileErr.LogOutput, "Missing")
}

func TestCompile_ErrorCarriesLogFileWhenPresent(t *testing.T) {
	dir := t.TempDir()
	binary := writeStubCompiler(t, dir, `
echo "detailed log content" > "$PWD/cv.log"
echo "raw stderr" >&2
exit 1
`)

	c := &Compiler{Binary: binary, OutputDir: dir}
	_, err := c.Compile(context.Background(), "broken")

	var compileErr *CompileError
	require.True(t, errors.As(err, &compileErr))
	assert.Contains(t, compileErr.LogOutput, "detailed log content")
	assert.NotContains(t, compileErr.LogOutput, "raw stderr")
}

func TestCompile_StagesStyleAsset(t *testing.T) {
	dir := t.TempDir()
	styleDir := t.TempDir()
	stylePath := filepath.Join(styleDir, "academic-cv.sty")
	require.NoError(t, os.WriteFile(stylePath, []byte(`\ProvidesPackage{academic-cv}`), 0644))

	binary := writeStubCompiler(t, dir, "exit 0")
	c := &Compiler{Binary: binary, OutputDir: dir, StylePath: stylePath}
	_, err := c.Compile(context.Background(), "doc")
	require.NoError(t, err)

	staged, err := os.ReadFile(filepath.Join(dir, "academic-cv.sty"))
	require.NoError(t, err)
	assert.Equal(t, `\ProvidesPackage{academic-cv}`, string(staged))
}

func TestCompile_MissingStyleAssetFails(t *testing.T) {
	dir := t.TempDir()
	binary := writeStubCompiler(t, dir, "exit 0")
	c := &Compiler{
		Binary:    binary,
		OutputDir: dir,
		StylePath: filepath.Join(dir, "no-such.sty"),
	}
	_, err := c.Compile(context.Background(), "doc")
	assert.ErrorContains(t, err, "style asset")
}

func TestCompile_BinaryNotFound(t *testing.T) {
	c := &Compiler{
		Binary:    "definitely-not-a-latex-compiler",
		OutputDir: t.TempDir(),
	}
	_, err := c.Compile(context.Background(), "doc")
	assert.ErrorContains(t, err, "not found in PATH")
}

func TestCleanupArtifacts(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"cv.aux", "cv.log", "cv.out", "cv.pdf", "cv.tex"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	CleanupArtifacts(dir)

	for _, gone := range []string{"cv.aux", "cv.log", "cv.out"} {
		_, err := os.Stat(filepath.Join(dir, gone))
		assert.True(t, os.IsNotExist(err), gone)
	}
	for _, kept := range []string{"cv.pdf", "cv.tex"} {
		_, err := os.Stat(filepath.Join(dir, kept))
		assert.NoError(t, err, kept)
	}

	// A second cleanup over missing files is harmless.
	CleanupArtifacts(dir)
}

func TestCompileErrorMessage(t *testing.T) {
	err := &CompileError{Message: "compiler exited with non-zero status", Pass: 2, Cause: errors.New("exit status 1")}
	assert.Equal(t, "compile error (pass 2): compiler exited with non-zero status: exit status 1", err.Error())
	assert.EqualError(t, err.Unwrap(), "exit status 1")
}
