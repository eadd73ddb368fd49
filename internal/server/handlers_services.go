package server

import (
	"net/http"

	"github.com/hansriess/academic-site/internal/db"
)

// handleListServices lists all professional service entries
func (s *Server) handleListServices(w http.ResponseWriter, r *http.Request) {
	entries, err := s.db.ListServices(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"service": entries,
		"count":   len(entries),
	})
}

// handleCreateService creates a service entry
func (s *Server) handleCreateService(w http.ResponseWriter, r *http.Request) {
	var entry db.Service
	if !s.decodeBody(w, r, &entry) {
		return
	}

	created, err := s.db.CreateService(r.Context(), &entry)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, created)
}

// handleGetService retrieves a service entry by ID
func (s *Server) handleGetService(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parsePathID(w, r)
	if !ok {
		return
	}

	entry, err := s.db.GetService(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if entry == nil {
		s.errorResponse(w, http.StatusNotFound, "Service entry not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, entry)
}

// handleUpdateService updates a service entry
func (s *Server) handleUpdateService(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parsePathID(w, r)
	if !ok {
		return
	}

	var entry db.Service
	if !s.decodeBody(w, r, &entry) {
		return
	}
	entry.ID = id

	updated, err := s.db.UpdateService(r.Context(), &entry)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if updated == nil {
		s.errorResponse(w, http.StatusNotFound, "Service entry not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, updated)
}

// handleDeleteService deletes a service entry
func (s *Server) handleDeleteService(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parsePathID(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteService(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
