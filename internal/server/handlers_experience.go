package server

import (
	"net/http"

	"github.com/hansriess/academic-site/internal/db"
)

// handleListExperience lists all appointments, most recent first
func (s *Server) handleListExperience(w http.ResponseWriter, r *http.Request) {
	entries, err := s.db.ListExperience(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"experience": entries,
		"count":      len(entries),
	})
}

// handleCreateExperience creates an appointment record
func (s *Server) handleCreateExperience(w http.ResponseWriter, r *http.Request) {
	var e db.Experience
	if !s.decodeBody(w, r, &e) {
		return
	}

	created, err := s.db.CreateExperience(r.Context(), &e)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, created)
}

// handleGetExperience retrieves an appointment by ID
func (s *Server) handleGetExperience(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parsePathID(w, r)
	if !ok {
		return
	}

	e, err := s.db.GetExperience(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if e == nil {
		s.errorResponse(w, http.StatusNotFound, "Experience entry not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, e)
}

// handleUpdateExperience updates an appointment record
func (s *Server) handleUpdateExperience(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parsePathID(w, r)
	if !ok {
		return
	}

	var e db.Experience
	if !s.decodeBody(w, r, &e) {
		return
	}
	e.ID = id

	updated, err := s.db.UpdateExperience(r.Context(), &e)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if updated == nil {
		s.errorResponse(w, http.StatusNotFound, "Experience entry not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, updated)
}

// handleDeleteExperience deletes an appointment record
func (s *Server) handleDeleteExperience(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parsePathID(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteExperience(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
