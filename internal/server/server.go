// SPDX-License-Identifier: MIT

// Package server exposes the solver over HTTP.
//
// Routes:
//
//	POST /v1/solve          solve a matrix, optionally storing it
//	GET  /v1/presets        every example matrix
//	GET  /v1/presets/{n}    the example for size n (4 when n is unknown)
//	GET  /v1/solves         recent stored solves (needs a store)
//	GET  /v1/solves/{id}    one stored solve with its trace (needs a store)
//	GET  /healthz           liveness, and store reachability when present
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/katalvlaran/hungarian/internal/config"
	"github.com/katalvlaran/hungarian/internal/store"
)

// maxBodyBytes bounds request bodies; a 10×10 matrix is far below it.
const maxBodyBytes = 1 << 20

// shutdownGrace is how long in-flight requests get after the context ends.
const shutdownGrace = 5 * time.Second

// Server holds the router and its dependencies.
type Server struct {
	cfg    config.Config
	store  *store.Store
	logger *log.Logger
	router chi.Router
}

// New builds a Server. st may be nil, which disables history routes and
// the "save" flag of solve requests.
func New(cfg config.Config, st *store.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Server{cfg: cfg, store: st, logger: logger}
	s.router = s.routes()

	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/solve", s.handleSolve)
		r.Get("/presets", s.handlePresets)
		r.Get("/presets/{n}", s.handlePreset)
		r.Get("/solves", s.handleListSolves)
		r.Get("/solves/{id}", s.handleGetSolve)
	})

	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		s.logger.Info("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	}
}

// requestLogger logs one line per request at info level.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"elapsed", time.Since(start).Round(time.Microsecond),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
