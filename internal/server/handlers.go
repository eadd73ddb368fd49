package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/hansriess/academic-site/internal/db"
)

// parsePathID parses the {id} path segment, writing a 400 on failure.
func (s *Server) parsePathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid ID")
		return uuid.Nil, false
	}
	return id, true
}

// decodeBody decodes the JSON request body, writing a 400 on failure.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// handleGetProfile returns the site owner record.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.db.GetProfile(r.Context())
	if err != nil {
		if errors.Is(err, db.ErrNoProfile) {
			s.errorResponse(w, http.StatusNotFound, "No profile exists yet")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, profile)
}

// handleSaveProfile creates or replaces the singleton owner record.
func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	var p db.Profile
	if !s.decodeBody(w, r, &p) {
		return
	}
	if p.Name == "" {
		s.errorResponse(w, http.StatusBadRequest, "Name is required")
		return
	}

	saved, err := s.db.SaveProfile(r.Context(), &p)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, saved)
}

// handlePortfolio returns the aggregated public view that backs the
// homepage: profile plus every record section in display order.
func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	snap, err := s.db.LoadSnapshot(r.Context())
	if err != nil {
		if errors.Is(err, db.ErrNoProfile) {
			s.errorResponse(w, http.StatusNotFound, "No profile exists yet")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, snap)
}
