// Package server provides the HTTP API for Quantaflow.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/quantaflow/quantaflow/internal/config"
	"github.com/quantaflow/quantaflow/internal/results"
	"github.com/quantaflow/quantaflow/internal/simulate"
	"github.com/quantaflow/quantaflow/internal/store"
	"go.uber.org/zap"
)

// Server is the HTTP server for the Quantaflow API.
type Server struct {
	store  store.Store
	sim    *simulate.Simulator
	gen    *results.Generator
	clock  simulate.Clock
	config *config.Config
	logger *zap.Logger
	server *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(
	st store.Store,
	sim *simulate.Simulator,
	gen *results.Generator,
	clock simulate.Clock,
	cfg *config.Config,
	logger *zap.Logger,
) *Server {
	return &Server{
		store:  st,
		sim:    sim,
		gen:    gen,
		clock:  clock,
		config: cfg,
		logger: logger,
	}
}

// Router builds the API routes. Exposed so tests can drive the full mux.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Post("/api/auth/login", s.handleLogin)
	r.Post("/api/files/upload", s.handleUploadFile)
	r.Get("/api/files/{userId}", s.handleListFiles)
	r.Post("/api/query", s.handleQuery)
	r.Get("/api/query/{queryId}/results", s.handleListResults)
	r.Get("/api/queries/{userId}", s.handleListQueries)
	r.Get("/api/quantum/logs", s.handleQuantumLogs)
	r.Get("/api/system/status", s.handleSystemStatus)
	r.Get("/health", s.handleHealth)

	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
