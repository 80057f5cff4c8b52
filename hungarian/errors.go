// SPDX-License-Identifier: MIT
// Package hungarian: sentinel error set.
// Precondition sentinels alias the matrix package so that callers can match
// either name with errors.Is. Assignment sentinels describe why Check rejects
// a candidate; the solver never returns them, it recovers through the greedy
// completion and records the reason in the trace.

package hungarian

import (
	"errors"

	"github.com/katalvlaran/hungarian/matrix"
)

// Precondition violations (returned by Solve, SolveRows, Normalize).
var (
	// ErrNilMatrix is returned for a nil input matrix.
	ErrNilMatrix = matrix.ErrNilMatrix

	// ErrEmpty is returned for a 0×0 (or 0×k) input.
	ErrEmpty = matrix.ErrInvalidDimensions

	// ErrNonSquare is returned when Rows != Cols or the rows are ragged.
	ErrNonSquare = matrix.ErrNonSquare

	// ErrNaNInf is returned when an entry is NaN/±Inf, or when a maximize
	// conversion would overflow float64.
	ErrNaNInf = matrix.ErrNaNInf

	// ErrUnknownObjective is returned for an Objective outside {Minimize, Maximize}.
	ErrUnknownObjective = errors.New("hungarian: unknown objective")
)

// Assignment violations (returned by Check).
var (
	// ErrIncomplete: the assignment does not hold exactly n pairs.
	ErrIncomplete = errors.New("hungarian: assignment is incomplete")

	// ErrCellOutOfRange: a row or column index lies outside [0, n).
	ErrCellOutOfRange = errors.New("hungarian: assignment index out of range")

	// ErrRowReused: a row (resource) appears more than once.
	ErrRowReused = errors.New("hungarian: row assigned more than once")

	// ErrColReused: a column (task) appears more than once.
	ErrColReused = errors.New("hungarian: column assigned more than once")
)
