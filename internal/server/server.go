// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server implements the web UI around the page duplicator: one
// uploaded PDF in, one stacked PDF out. Every request is self-contained;
// nothing persists between requests, so concurrent sessions need no locking.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/pdiddy/labelstack/pkg/types"
)

// Server serves the upload form and the stack/inspect endpoints.
type Server struct {
	cfg    types.ServeConfig
	logger zerolog.Logger
}

// New creates a Server with the given configuration and logger.
func New(cfg types.ServeConfig, logger zerolog.Logger) *Server {
	return &Server{cfg: cfg, logger: logger}
}

// Handler builds the chi router with all routes configured.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(s.cfg.RequestTimeout))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"labelstack"}`))
	})

	r.Get("/", s.handleIndex)
	r.Post("/stack", s.handleStack)
	r.Post("/inspect", s.handleInspect)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.Handler(),
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.cfg.Addr).Msg("listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.RequestTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// maxUploadBytes converts the configured megabyte cap to bytes.
func (s *Server) maxUploadBytes() int64 {
	return s.cfg.MaxUploadMB << 20
}
