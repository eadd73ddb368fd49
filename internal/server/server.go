// Package server provides the HTTP API for the academic site: record
// management, the public portfolio view and CV generation.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/hansriess/academic-site/internal/config"
	"github.com/hansriess/academic-site/internal/db"
	"github.com/hansriess/academic-site/internal/pipeline"
	"github.com/hansriess/academic-site/internal/server/middleware"
	"github.com/hansriess/academic-site/internal/server/ratelimit"
	"github.com/hansriess/academic-site/internal/storage"
)

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	source      pipeline.Source
	cfg         *config.Config
	store       storage.Storage
	metrics     *Metrics
	rateLimiter *ratelimit.Limiter
	authHandler *AuthHandler
	generate    singleflight.Group
}

// New creates a new server instance. store may be nil when no object store
// is configured.
func New(cfg *config.Config, database *db.DB, store storage.Storage) (*Server, error) {
	s := &Server{
		db:      database,
		source:  database,
		cfg:     cfg,
		store:   store,
		metrics: NewMetrics(),
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.DefaultConfig())

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	jwtService := NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(cfg, jwtService)

	requireAuth := middleware.Auth(jwtService.AsTokenValidator())

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)

	// Public surface
	mux.HandleFunc("GET /portfolio", s.handlePortfolio)
	mux.HandleFunc("GET /cv", s.handleGetCV)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", s.metrics.Handler())

	// Admin surface
	protected := http.NewServeMux()
	protected.HandleFunc("GET /profile", s.handleGetProfile)
	protected.HandleFunc("PUT /profile", s.handleSaveProfile)

	protected.HandleFunc("GET /collaborators", s.handleListCollaborators)
	protected.HandleFunc("POST /collaborators", s.handleCreateCollaborator)
	protected.HandleFunc("GET /collaborators/{id}", s.handleGetCollaborator)
	protected.HandleFunc("PUT /collaborators/{id}", s.handleUpdateCollaborator)
	protected.HandleFunc("DELETE /collaborators/{id}", s.handleDeleteCollaborator)

	protected.HandleFunc("GET /references", s.handleListReferences)
	protected.HandleFunc("POST /references", s.handleCreateReference)
	protected.HandleFunc("GET /references/{id}", s.handleGetReference)
	protected.HandleFunc("PUT /references/{id}", s.handleUpdateReference)
	protected.HandleFunc("DELETE /references/{id}", s.handleDeleteReference)

	protected.HandleFunc("GET /education", s.handleListEducation)
	protected.HandleFunc("POST /education", s.handleCreateEducation)
	protected.HandleFunc("GET /education/{id}", s.handleGetEducation)
	protected.HandleFunc("PUT /education/{id}", s.handleUpdateEducation)
	protected.HandleFunc("DELETE /education/{id}", s.handleDeleteEducation)

	protected.HandleFunc("GET /experience", s.handleListExperience)
	protected.HandleFunc("POST /experience", s.handleCreateExperience)
	protected.HandleFunc("GET /experience/{id}", s.handleGetExperience)
	protected.HandleFunc("PUT /experience/{id}", s.handleUpdateExperience)
	protected.HandleFunc("DELETE /experience/{id}", s.handleDeleteExperience)

	protected.HandleFunc("GET /grants", s.handleListGrants)
	protected.HandleFunc("POST /grants", s.handleCreateGrant)
	protected.HandleFunc("GET /grants/{id}", s.handleGetGrant)
	protected.HandleFunc("PUT /grants/{id}", s.handleUpdateGrant)
	protected.HandleFunc("DELETE /grants/{id}", s.handleDeleteGrant)

	protected.HandleFunc("GET /talks", s.handleListTalks)
	protected.HandleFunc("POST /talks", s.handleCreateTalk)
	protected.HandleFunc("GET /talks/{id}", s.handleGetTalk)
	protected.HandleFunc("PUT /talks/{id}", s.handleUpdateTalk)
	protected.HandleFunc("DELETE /talks/{id}", s.handleDeleteTalk)

	protected.HandleFunc("GET /courses", s.handleListCourses)
	protected.HandleFunc("POST /courses", s.handleCreateCourse)
	protected.HandleFunc("GET /courses/{id}", s.handleGetCourse)
	protected.HandleFunc("PUT /courses/{id}", s.handleUpdateCourse)
	protected.HandleFunc("DELETE /courses/{id}", s.handleDeleteCourse)

	protected.HandleFunc("GET /service", s.handleListServices)
	protected.HandleFunc("POST /service", s.handleCreateService)
	protected.HandleFunc("GET /service/{id}", s.handleGetService)
	protected.HandleFunc("PUT /service/{id}", s.handleUpdateService)
	protected.HandleFunc("DELETE /service/{id}", s.handleDeleteService)

	protected.HandleFunc("POST /cv/generate", s.handleGenerateCV)

	mux.Handle("/", requireAuth(protected))

	s.httpServer = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      s.withMetrics(s.withRateLimit(s.withLogging(s.withCORS(mux)))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // compiler runs are synchronous
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.rateLimiter.Stop()
	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit rejects clients that exceed their per-endpoint budget
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.rateLimiter.Allow(s.extractClientID(r), r.Method, r.URL.Path) {
			s.errorResponse(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// extractClientID returns the client IP from RemoteAddr.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
