// Package api provides the HTTP server for VegiRise.
// It exposes the record, state, settings and achievement endpoints the
// tracker UI consumes, plus health and Prometheus metrics.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vegirise/vegirise/internal/app/tracker"
	"github.com/vegirise/vegirise/internal/health"
)

// Config holds the server's listen address and CORS policy.
type Config struct {
	Host        string
	Port        int
	CORSOrigins []string
}

// Server is the VegiRise HTTP API server.
type Server struct {
	cfg     Config
	tracker *tracker.Tracker
	checker *health.Checker
	http    *http.Server
}

// NewServer creates a new API server over the tracker service.
func NewServer(cfg Config, trk *tracker.Tracker) *Server {
	return &Server{cfg: cfg, tracker: trk}
}

// SetHealthChecker attaches a health checker; /health then reports its
// per-check statuses instead of a bare ok.
func (s *Server) SetHealthChecker(c *health.Checker) { s.checker = c }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(corsMiddleware(s.cfg.CORSOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if s.checker == nil {
			writeJSON(w, http.StatusOK, map[string]string{
				"status": "ok",
			})
			return
		}
		status := http.StatusOK
		if !s.checker.IsHealthy() {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, map[string]interface{}{
			"healthy": s.checker.IsHealthy(),
			"checks":  s.checker.Statuses(),
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/records/vegetable", s.handleAddVegetable)
		r.Post("/records/wakeup", s.handleRecordWakeup)
		r.Delete("/records/vegetable/{id}", s.handleDeleteVegetable)

		r.Get("/state", s.handleState)
		r.Get("/day/{date}", s.handleDay)
		r.Get("/achievements", s.handleAchievements)

		r.Get("/settings", s.handleGetSettings)
		r.Put("/settings", s.handleUpdateSettings)

		r.Post("/reset", s.handleReset)
	})

	// Prometheus metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// ListenAndServe starts the HTTP server and blocks until it exits.
func (s *Server) ListenAndServe() error {
	s.http = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		Handler: s.Handler(),
	}
	return s.http.ListenAndServe()
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// corsMiddleware adds CORS headers for the local UI.
func corsMiddleware(origins []string) func(http.Handler) http.Handler {
	allow := "*"
	if len(origins) == 1 {
		allow = origins[0]
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allow)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
