package server

import (
	"net/http"

	"github.com/hansriess/academic-site/internal/db"
)

// handleListReferences lists all publications, optionally filtered by type
func (s *Server) handleListReferences(w http.ResponseWriter, r *http.Request) {
	var (
		references []db.Reference
		err        error
	)
	if typeStr := r.URL.Query().Get("type"); typeStr != "" {
		refType := db.ReferenceType(typeStr)
		if !refType.Valid() {
			s.errorResponse(w, http.StatusBadRequest, "Invalid reference type: "+typeStr)
			return
		}
		references, err = s.db.ListReferencesByType(r.Context(), refType)
	} else {
		references, err = s.db.ListReferences(r.Context())
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"references": references,
		"count":      len(references),
	})
}

// handleCreateReference creates a publication record
func (s *Server) handleCreateReference(w http.ResponseWriter, r *http.Request) {
	var ref db.Reference
	if !s.decodeBody(w, r, &ref) {
		return
	}

	created, err := s.db.CreateReference(r.Context(), &ref)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, created)
}

// handleGetReference retrieves a publication by ID
func (s *Server) handleGetReference(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parsePathID(w, r)
	if !ok {
		return
	}

	ref, err := s.db.GetReference(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if ref == nil {
		s.errorResponse(w, http.StatusNotFound, "Reference not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, ref)
}

// handleUpdateReference updates a publication record
func (s *Server) handleUpdateReference(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parsePathID(w, r)
	if !ok {
		return
	}

	var ref db.Reference
	if !s.decodeBody(w, r, &ref) {
		return
	}
	ref.ID = id

	updated, err := s.db.UpdateReference(r.Context(), &ref)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if updated == nil {
		s.errorResponse(w, http.StatusNotFound, "Reference not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, updated)
}

// handleDeleteReference deletes a publication record
func (s *Server) handleDeleteReference(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parsePathID(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteReference(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
