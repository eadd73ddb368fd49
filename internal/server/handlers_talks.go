package server

import (
	"net/http"

	"github.com/hansriess/academic-site/internal/db"
)

// handleListTalks lists all talks, most recent first
func (s *Server) handleListTalks(w http.ResponseWriter, r *http.Request) {
	talks, err := s.db.ListTalks(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"talks": talks,
		"count": len(talks),
	})
}

// handleCreateTalk creates a talk record
func (s *Server) handleCreateTalk(w http.ResponseWriter, r *http.Request) {
	var t db.Talk
	if !s.decodeBody(w, r, &t) {
		return
	}

	created, err := s.db.CreateTalk(r.Context(), &t)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, created)
}

// handleGetTalk retrieves a talk by ID
func (s *Server) handleGetTalk(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parsePathID(w, r)
	if !ok {
		return
	}

	t, err := s.db.GetTalk(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if t == nil {
		s.errorResponse(w, http.StatusNotFound, "Talk not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, t)
}

// handleUpdateTalk updates a talk record
func (s *Server) handleUpdateTalk(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parsePathID(w, r)
	if !ok {
		return
	}

	var t db.Talk
	if !s.decodeBody(w, r, &t) {
		return
	}
	t.ID = id

	updated, err := s.db.UpdateTalk(r.Context(), &t)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if updated == nil {
		s.errorResponse(w, http.StatusNotFound, "Talk not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, updated)
}

// handleDeleteTalk deletes a talk record
func (s *Server) handleDeleteTalk(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parsePathID(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteTalk(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
