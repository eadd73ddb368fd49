package server

import (
	"net/http"

	"github.com/hansriess/academic-site/internal/db"
)

// handleListCourses lists all courses taught, most recent term first
func (s *Server) handleListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := s.db.ListCourses(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"courses": courses,
		"count":   len(courses),
	})
}

// handleCreateCourse creates a course record
func (s *Server) handleCreateCourse(w http.ResponseWriter, r *http.Request) {
	var c db.Course
	if !s.decodeBody(w, r, &c) {
		return
	}

	created, err := s.db.CreateCourse(r.Context(), &c)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, created)
}

// handleGetCourse retrieves a course by ID
func (s *Server) handleGetCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parsePathID(w, r)
	if !ok {
		return
	}

	c, err := s.db.GetCourse(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if c == nil {
		s.errorResponse(w, http.StatusNotFound, "Course not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, c)
}

// handleUpdateCourse updates a course record
func (s *Server) handleUpdateCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parsePathID(w, r)
	if !ok {
		return
	}

	var c db.Course
	if !s.decodeBody(w, r, &c) {
		return
	}
	c.ID = id

	updated, err := s.db.UpdateCourse(r.Context(), &c)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if updated == nil {
		s.errorResponse(w, http.StatusNotFound, "Course not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, updated)
}

// handleDeleteCourse deletes a course record
func (s *Server) handleDeleteCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parsePathID(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteCourse(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
