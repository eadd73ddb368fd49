package server

import (
	"net/http"

	"github.com/hansriess/academic-site/internal/db"
)

// handleListCollaborators lists all collaborators
func (s *Server) handleListCollaborators(w http.ResponseWriter, r *http.Request) {
	collaborators, err := s.db.ListCollaborators(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"collaborators": collaborators,
		"count":         len(collaborators),
	})
}

// handleCreateCollaborator creates a collaborator
func (s *Server) handleCreateCollaborator(w http.ResponseWriter, r *http.Request) {
	var c db.Collaborator
	if !s.decodeBody(w, r, &c) {
		return
	}

	created, err := s.db.CreateCollaborator(r.Context(), &c)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, created)
}

// handleGetCollaborator retrieves a collaborator by ID
func (s *Server) handleGetCollaborator(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parsePathID(w, r)
	if !ok {
		return
	}

	c, err := s.db.GetCollaborator(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if c == nil {
		s.errorResponse(w, http.StatusNotFound, "Collaborator not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, c)
}

// handleUpdateCollaborator updates a collaborator
func (s *Server) handleUpdateCollaborator(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parsePathID(w, r)
	if !ok {
		return
	}

	var c db.Collaborator
	if !s.decodeBody(w, r, &c) {
		return
	}
	c.ID = id

	updated, err := s.db.UpdateCollaborator(r.Context(), &c)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if updated == nil {
		s.errorResponse(w, http.StatusNotFound, "Collaborator not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, updated)
}

// handleDeleteCollaborator deletes a collaborator
func (s *Server) handleDeleteCollaborator(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parsePathID(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteCollaborator(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
