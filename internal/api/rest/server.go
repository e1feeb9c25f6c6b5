package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/nDmitry/rssreader/internal/app"
	"github.com/nDmitry/rssreader/internal/cache"
)

// Server serves the reader page and the export endpoint
type Server struct {
	mux        *http.ServeMux
	server     *http.Server
	logger     *slog.Logger
	cache      cache.Cache
	actions    Actions
	page       Page
	source     StateSource
	generator  Generator
	defaultTTL int
	port       string
}

// Deps are the collaborators the handlers are built from
type Deps struct {
	Cache     cache.Cache
	Actions   Actions
	Page      Page
	Source    StateSource
	Generator Generator
	// Export cache lifetime in minutes when the request sets none.
	ExportCacheTTL int
}

// NewServer creates a new HTTP server
func NewServer(deps Deps, port string) *Server {
	mux := http.NewServeMux()
	logger := app.Logger()

	server := &Server{
		mux:        mux,
		logger:     logger,
		cache:      deps.Cache,
		actions:    deps.Actions,
		page:       deps.Page,
		source:     deps.Source,
		generator:  deps.Generator,
		defaultTTL: deps.ExportCacheTTL,
		port:       port,
		server: &http.Server{
			Addr:              ":" + port,
			Handler:           nil,               // Will be set in Run
			ReadHeaderTimeout: 10 * time.Second,  // Mitigate Slowloris
			ReadTimeout:       30 * time.Second,  // Time to read entire request (including body)
			WriteTimeout:      60 * time.Second,  // Submissions wait for the proxy
			IdleTimeout:       120 * time.Second, // Keep-alive timeout
		},
	}

	server.registerHandlers()

	return server
}

// registerHandlers sets up all routes
func (s *Server) registerHandlers() {
	NewReaderHandler(s.mux, s.actions, s.page)
	NewExportHandler(s.mux, s.cache, s.source, s.generator, s.defaultTTL)
}

// Handler returns the routes wrapped in the middleware
func (s *Server) Handler() http.Handler {
	return Logger(s.mux)
}

// Run starts the server and blocks until the context is canceled
func (s *Server) Run(ctx context.Context) error {
	s.server.Handler = s.Handler()

	// Set BaseContext to pass the parent context
	s.server.BaseContext = func(_ net.Listener) context.Context { return ctx }

	// Register shutdown handler
	s.server.RegisterOnShutdown(func() {
		s.logger.Info("Server is shutting down...")
	})

	// Start server in a goroutine
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server", "port", s.port)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("server error: %w", err)
		}
		close(errCh)
	}()

	// Wait for context cancellation or server error
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	// Create a timeout for shutdown
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.logger.Info("Server exited gracefully")

	return nil
}
