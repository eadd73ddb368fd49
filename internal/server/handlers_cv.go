package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/hansriess/academic-site/internal/db"
	"github.com/hansriess/academic-site/internal/pipeline"
	"github.com/hansriess/academic-site/internal/typeset"
)

// handleGenerateCV runs the document pipeline synchronously. Concurrent
// requests share a single run via singleflight; every caller gets the
// outcome of that one run. The run is detached from the request context
// so a disconnecting caller cannot abort it for the coalesced waiters.
func (s *Server) handleGenerateCV(w http.ResponseWriter, r *http.Request) {
	v, err, _ := s.generate.Do("cv", func() (any, error) {
		return pipeline.Run(context.WithoutCancel(r.Context()), s.source, pipeline.Options{
			OutputDir:            s.cfg.Compiler.OutputDir,
			StylePath:            s.cfg.Compiler.StylePath,
			CompilerBinary:       s.cfg.Compiler.Binary,
			Store:                s.store,
			CleanFailedArtifacts: s.cfg.Compiler.CleanFailedArtifacts,
		})
	})
	if err != nil {
		s.metrics.RecordGeneration("failure")

		if errors.Is(err, db.ErrNoProfile) {
			s.errorResponse(w, http.StatusConflict, "Cannot generate CV: no profile record exists")
			return
		}
		var compileErr *typeset.CompileError
		if errors.As(err, &compileErr) {
			s.jsonResponse(w, http.StatusUnprocessableEntity, map[string]any{
				"error": compileErr.Message,
				"pass":  compileErr.Pass,
				"log":   compileErr.LogOutput,
			})
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "CV generation failed: "+err.Error())
		return
	}

	s.metrics.RecordGeneration("success")
	result := v.(*pipeline.Result)

	switch {
	case result.PublishedURL != "":
		http.Redirect(w, r, result.PublishedURL, http.StatusFound)
	case s.store == nil:
		http.Redirect(w, r, "/cv", http.StatusSeeOther)
	default:
		// PDF produced but the upload did not yield a URL.
		w.WriteHeader(http.StatusNoContent)
	}
}

// handleGetCV serves the most recently compiled PDF from the output
// directory.
func (s *Server) handleGetCV(w http.ResponseWriter, r *http.Request) {
	pdfPath := filepath.Join(s.cfg.Compiler.OutputDir, "cv.pdf")
	if _, err := os.Stat(pdfPath); err != nil {
		s.errorResponse(w, http.StatusNotFound, "No CV has been generated yet")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="cv.pdf"`)
	http.ServeFile(w, r, pdfPath)
}
