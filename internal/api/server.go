// Package api exposes the outline pipeline over HTTP: upload a PDF, get
// back its inferred outline.
package api

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tsawler/outliner/internal/config"
	"github.com/tsawler/outliner/model"
)

// ExtractFunc turns an uploaded PDF into a run document. Injected so
// handlers can be tested without real PDF bytes.
type ExtractFunc func(r io.ReaderAt, size int64) (*model.Document, error)

// Server is the HTTP API server
type Server struct {
	router  chi.Router
	extract ExtractFunc
	log     *slog.Logger
	cfg     config.Config
}

// NewServer creates and configures the HTTP server
func NewServer(extract ExtractFunc, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		extract: extract,
		log:     log,
		cfg:     cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey))
		}
		r.Post("/api/outline", s.handleOutline)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
