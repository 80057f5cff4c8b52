// SPDX-License-Identifier: MIT

// Package hungarian: domain types shared by the solver phases.
package hungarian

import (
	"fmt"
	"strings"
)

// Objective selects the optimization direction.
type Objective int

const (
	// Minimize treats the matrix as costs.
	Minimize Objective = iota
	// Maximize treats the matrix as benefits.
	Maximize
)

const (
	objMinimize = "minimize"
	objMaximize = "maximize"
)

// String returns "minimize" or "maximize" (or a diagnostic for unknown values).
func (o Objective) String() string {
	switch o {
	case Minimize:
		return objMinimize
	case Maximize:
		return objMaximize
	default:
		return fmt.Sprintf("Objective(%d)", int(o))
	}
}

// Valid reports whether o is one of the declared objectives.
func (o Objective) Valid() bool { return o == Minimize || o == Maximize }

// ParseObjective accepts "min", "minimize", "max", "maximize" (case-insensitive).
func ParseObjective(s string) (Objective, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "min", objMinimize:
		return Minimize, nil
	case "max", objMaximize:
		return Maximize, nil
	default:
		return Minimize, fmt.Errorf("%w: %q", ErrUnknownObjective, s)
	}
}

// MarshalText implements encoding.TextMarshaler so JSON/TOML/YAML carry the name.
func (o Objective) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownObjective, int(o))
	}

	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseObjective.
func (o *Objective) UnmarshalText(b []byte) error {
	v, err := ParseObjective(string(b))
	if err != nil {
		return err
	}
	*o = v

	return nil
}

// Cell is a (row, column) position; in an Assignment it pairs a resource
// (row) with a task (column).
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Assignment is a set of (row, column) pairs. A valid assignment over an
// n×n matrix holds exactly n pairs with distinct rows and distinct columns.
type Assignment []Cell

// Record is one reported pair with its cost looked up in the ORIGINAL matrix.
type Record struct {
	Resource int     `json:"resource"`
	Task     int     `json:"task"`
	Cost     float64 `json:"cost"`
}

// CoverSet marks the covering lines: Rows[i] / Cols[j] are true when row i /
// column j is a line. It is derived from an assignment, never stored.
type CoverSet struct {
	Rows []bool `json:"rows"`
	Cols []bool `json:"cols"`
}

// Lines returns the number of covering lines.
func (c CoverSet) Lines() int {
	var k int
	for _, r := range c.Rows {
		if r {
			k++
		}
	}
	for _, col := range c.Cols {
		if col {
			k++
		}
	}

	return k
}

// Covered returns how many lines pass through (i, j): 0, 1 or 2.
func (c CoverSet) Covered(i, j int) int {
	var k int
	if c.Rows[i] {
		k++
	}
	if c.Cols[j] {
		k++
	}

	return k
}

// TraceStep is one append-only log entry: a snapshot of the working matrix,
// what happened to it, the cells worth highlighting and the sub-operations.
type TraceStep struct {
	Matrix      [][]float64 `json:"matrix"`
	Description string      `json:"description"`
	Highlighted []Cell      `json:"highlighted,omitempty"`
	Details     []string    `json:"details,omitempty"`
}

// Solution is the complete result of one solve.
//
//   - Assignments are ordered by resource (row) and costed on the original matrix.
//   - Steps are the natural-language milestones, Trace the matrix snapshots.
//   - Iterations counts SEARCH rounds, Adjustments counts matrix adjustments.
//   - Fallback is true when the greedy completion produced the assignment; the
//     result is then valid but not guaranteed optimal.
type Solution struct {
	Objective   Objective   `json:"objective"`
	Assignments []Record    `json:"assignments"`
	TotalCost   float64     `json:"total_cost"`
	Steps       []string    `json:"steps"`
	Trace       []TraceStep `json:"trace"`
	Iterations  int         `json:"iterations"`
	Adjustments int         `json:"adjustments"`
	Fallback    bool        `json:"fallback"`
}

// Pairs returns the solution's assignment as (row, col) cells in resource order.
func (s *Solution) Pairs() Assignment {
	out := make(Assignment, len(s.Assignments))
	for i, r := range s.Assignments {
		out[i] = Cell{Row: r.Resource, Col: r.Task}
	}

	return out
}
