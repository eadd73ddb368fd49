package server

import (
	"net/http"

	"github.com/hansriess/academic-site/internal/db"
)

// handleListGrants lists all grants, most recent start year first
func (s *Server) handleListGrants(w http.ResponseWriter, r *http.Request) {
	grants, err := s.db.ListGrants(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"grants": grants,
		"count":  len(grants),
	})
}

// handleCreateGrant creates a grant record
func (s *Server) handleCreateGrant(w http.ResponseWriter, r *http.Request) {
	var g db.Grant
	if !s.decodeBody(w, r, &g) {
		return
	}

	created, err := s.db.CreateGrant(r.Context(), &g)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, created)
}

// handleGetGrant retrieves a grant by ID
func (s *Server) handleGetGrant(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parsePathID(w, r)
	if !ok {
		return
	}

	g, err := s.db.GetGrant(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if g == nil {
		s.errorResponse(w, http.StatusNotFound, "Grant not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, g)
}

// handleUpdateGrant updates a grant record
func (s *Server) handleUpdateGrant(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parsePathID(w, r)
	if !ok {
		return
	}

	var g db.Grant
	if !s.decodeBody(w, r, &g) {
		return
	}
	g.ID = id

	updated, err := s.db.UpdateGrant(r.Context(), &g)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if updated == nil {
		s.errorResponse(w, http.StatusNotFound, "Grant not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, updated)
}

// handleDeleteGrant deletes a grant record
func (s *Server) handleDeleteGrant(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parsePathID(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteGrant(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
