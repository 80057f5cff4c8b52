// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/hungarian/hungarian"
)

// DefaultListLimit bounds List when the caller passes limit <= 0.
const DefaultListLimit = 20

// timeLayout is fixed-width so created_at sorts chronologically as text.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// Entry is one stored solve. Solution is only loaded by Get.
type Entry struct {
	ID        string              `json:"id"`
	CreatedAt time.Time           `json:"created_at"`
	Objective hungarian.Objective `json:"objective"`
	Size      int                 `json:"n"`
	TotalCost float64             `json:"total_cost"`
	Fallback  bool                `json:"fallback"`
	Input     [][]float64         `json:"input"`
	Solution  *hungarian.Solution `json:"solution,omitempty"`
}

// Save stores sol (solved from input) under a fresh UUIDv7 and returns the
// entry as stored.
func (s *Store) Save(ctx context.Context, input [][]float64, sol *hungarian.Solution) (Entry, error) {
	if sol == nil {
		return Entry{}, errors.New("store: nil solution")
	}
	id, err := uuid.NewV7()
	if err != nil {
		return Entry{}, fmt.Errorf("store: new id: %w", err)
	}
	inputJSON, err := json.Marshal(input)
	if err != nil {
		return Entry{}, fmt.Errorf("store: encode input: %w", err)
	}
	solJSON, err := json.Marshal(sol)
	if err != nil {
		return Entry{}, fmt.Errorf("store: encode solution: %w", err)
	}

	e := Entry{
		ID:        id.String(),
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
		Objective: sol.Objective,
		Size:      len(input),
		TotalCost: sol.TotalCost,
		Fallback:  sol.Fallback,
		Input:     input,
		Solution:  sol,
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO solves (id, created_at, objective, n, total_cost, fallback, input_json, solution_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.CreatedAt.Format(timeLayout), e.Objective.String(), e.Size, e.TotalCost, e.Fallback,
		string(inputJSON), string(solJSON))
	if err != nil {
		return Entry{}, fmt.Errorf("store: insert solve: %w", err)
	}

	return e, nil
}

// List returns up to limit entries, newest first, without their solutions.
// Returns an empty slice (not nil) when the history is empty.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, objective, n, total_cost, fallback, input_json
		FROM solves
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: query solves: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var (
			e         Entry
			createdAt string
			objective string
			inputJSON string
		)
		if err := rows.Scan(&e.ID, &createdAt, &objective, &e.Size, &e.TotalCost, &e.Fallback, &inputJSON); err != nil {
			return nil, fmt.Errorf("store: scan solve: %w", err)
		}
		if err := e.decode(createdAt, objective, inputJSON); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate solves: %w", err)
	}

	return entries, nil
}

// Get loads one entry including its solution. Unknown ids give ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (Entry, error) {
	var (
		e         Entry
		createdAt string
		objective string
		inputJSON string
		solJSON   string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, objective, n, total_cost, fallback, input_json, solution_json
		FROM solves
		WHERE id = ?
	`, id).Scan(&e.ID, &createdAt, &objective, &e.Size, &e.TotalCost, &e.Fallback, &inputJSON, &solJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("store: get solve %s: %w", id, err)
	}
	if err := e.decode(createdAt, objective, inputJSON); err != nil {
		return Entry{}, err
	}

	var sol hungarian.Solution
	if err := json.Unmarshal([]byte(solJSON), &sol); err != nil {
		return Entry{}, fmt.Errorf("store: decode solution %s: %w", id, err)
	}
	e.Solution = &sol

	return e, nil
}

// decode fills the columns stored as text.
func (e *Entry) decode(createdAt, objective, inputJSON string) error {
	t, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return fmt.Errorf("store: decode created_at of %s: %w", e.ID, err)
	}
	e.CreatedAt = t
	if e.Objective, err = hungarian.ParseObjective(objective); err != nil {
		return fmt.Errorf("store: decode objective of %s: %w", e.ID, err)
	}
	if err := json.Unmarshal([]byte(inputJSON), &e.Input); err != nil {
		return fmt.Errorf("store: decode input of %s: %w", e.ID, err)
	}

	return nil
}
