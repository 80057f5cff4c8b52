// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/language"

	"github.com/katalvlaran/hungarian/hungarian"
	"github.com/katalvlaran/hungarian/internal/input"
	"github.com/katalvlaran/hungarian/internal/render"
	"github.com/katalvlaran/hungarian/internal/store"
	"github.com/katalvlaran/hungarian/presets"
)

// Sentinel errors surfaced to clients.
var (
	ErrTimeout         = errors.New("server: solve timed out")
	ErrHistoryDisabled = errors.New("server: history is disabled")
)

// SolveRequest is the body of POST /v1/solve. Objective and Language
// default to the server configuration.
type SolveRequest struct {
	Matrix    [][]float64 `json:"matrix"`
	Objective string      `json:"objective,omitempty"`
	Language  string      `json:"lang,omitempty"`
	Save      bool        `json:"save,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status  string `json:"status"`
	History bool   `json:"history"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %w", input.ErrFormat, err))
		return
	}
	if req.Save && s.store == nil {
		s.writeError(w, http.StatusBadRequest, ErrHistoryDisabled)
		return
	}

	objective := req.Objective
	if objective == "" {
		objective = s.cfg.Objective
	}
	obj, err := hungarian.ParseObjective(objective)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	warnings, err := input.Validate(req.Matrix)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	opts, err := s.cfg.SolveOptions()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if req.Language != "" {
		tag, err := language.Parse(req.Language)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("language %q: %w", req.Language, err))
			return
		}
		opts = append(opts, hungarian.WithLanguage(tag))
	}
	opts = append(opts, hungarian.WithLogger(s.logger))

	sol, err := s.solve(r.Context(), req.Matrix, obj, opts)
	switch {
	case errors.Is(err, ErrTimeout):
		s.writeError(w, http.StatusServiceUnavailable, err)
		return
	case err != nil:
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := hungarian.Check(sol.Pairs(), len(req.Matrix)); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	report := render.Report{Warnings: warnings, Solution: sol}
	if req.Save {
		entry, err := s.store.Save(r.Context(), req.Matrix, sol)
		if err != nil {
			s.writeError(w, http.StatusInternalServerError, err)
			return
		}
		report.ID = entry.ID
	}

	s.writeJSON(w, http.StatusOK, report)
}

// solve runs the solver against the configured timeout. The solver itself
// is not interruptible; on timeout its result is discarded.
func (s *Server) solve(ctx context.Context, rows [][]float64, obj hungarian.Objective, opts []hungarian.Option) (*hungarian.Solution, error) {
	if s.cfg.SolveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.SolveTimeout)
		defer cancel()
	}

	type result struct {
		sol *hungarian.Solution
		err error
	}
	done := make(chan result, 1)
	go func() {
		sol, err := hungarian.SolveRows(rows, obj, opts...)
		done <- result{sol, err}
	}()

	select {
	case res := <-done:
		return res.sol, res.err
	case <-ctx.Done():
		s.logger.Warn("solve abandoned", "n", len(rows), "err", ctx.Err())
		return nil, fmt.Errorf("%w: %w", ErrTimeout, ctx.Err())
	}
}

func (s *Server) handlePresets(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, presets.All())
}

func (s *Server) handlePreset(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %q", input.ErrSize, chi.URLParam(r, "n")))
		return
	}
	s.writeJSON(w, http.StatusOK, presets.For(n))
}

func (s *Server) handleListSolves(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, http.StatusNotFound, ErrHistoryDisabled)
		return
	}
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		var err error
		if limit, err = strconv.Atoi(v); err != nil || limit < 0 {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("limit %q: must be a non-negative integer", v))
			return
		}
	}
	entries, err := s.store.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleGetSolve(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, http.StatusNotFound, ErrHistoryDisabled)
		return
	}
	entry, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, store.ErrNotFound):
		s.writeError(w, http.StatusNotFound, err)
		return
	case err != nil:
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", History: s.store != nil}
	if s.store != nil {
		if err := s.store.Ping(r.Context()); err != nil {
			s.logger.Error("history unreachable", "err", err)
			resp.Status = "degraded"
			s.writeJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("write response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "status", status, "err", err)
	} else {
		s.logger.Debug("request rejected", "status", status, "err", err)
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}
