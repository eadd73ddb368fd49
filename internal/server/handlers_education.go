package server

import (
	"net/http"

	"github.com/hansriess/academic-site/internal/db"
)

// handleListEducation lists all degrees, most recent graduation first
func (s *Server) handleListEducation(w http.ResponseWriter, r *http.Request) {
	entries, err := s.db.ListEducation(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"education": entries,
		"count":     len(entries),
	})
}

// handleCreateEducation creates a degree record
func (s *Server) handleCreateEducation(w http.ResponseWriter, r *http.Request) {
	var e db.Education
	if !s.decodeBody(w, r, &e) {
		return
	}

	created, err := s.db.CreateEducation(r.Context(), &e)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, created)
}

// handleGetEducation retrieves a degree record by ID
func (s *Server) handleGetEducation(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parsePathID(w, r)
	if !ok {
		return
	}

	e, err := s.db.GetEducation(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if e == nil {
		s.errorResponse(w, http.StatusNotFound, "Education entry not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, e)
}

// handleUpdateEducation updates a degree record
func (s *Server) handleUpdateEducation(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parsePathID(w, r)
	if !ok {
		return
	}

	var e db.Education
	if !s.decodeBody(w, r, &e) {
		return
	}
	e.ID = id

	updated, err := s.db.UpdateEducation(r.Context(), &e)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if updated == nil {
		s.errorResponse(w, http.StatusNotFound, "Education entry not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, updated)
}

// handleDeleteEducation deletes a degree record
func (s *Server) handleDeleteEducation(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parsePathID(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteEducation(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
