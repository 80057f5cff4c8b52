// SPDX-License-Identifier: MIT

// Package hungarian: greedy completion.
//
// Last-resort path when the main loop hits its cap, runs out of uncovered
// cells or yields an invalid assignment:
//  1. take non-conflicting zero cells in row-major scan order;
//  2. give every still-free row the free column with the smallest value
//     (first such column on ties).
//
// The result is always a complete one-to-one assignment but is NOT
// guaranteed optimal; the solver flags it with Solution.Fallback.
package hungarian

import (
	"math"

	"github.com/katalvlaran/hungarian/matrix"
)

// greedyCompletion returns a complete assignment in row order together with
// the number of pairs that came from zero cells.
//
// Complexity: O(n²).
func greedyCompletion(w *matrix.Dense, eps float64) (Assignment, int) {
	n := w.Rows()
	colOf := make([]int, n)
	usedCol := make([]bool, n)
	for i := range colOf {
		colOf[i] = unassigned
	}

	var (
		i, j      int
		row       []float64
		fromZeros int
	)

	// Stage 1: zeros. All zero cells share the same value, so sorting them
	// by value leaves the scan order.
	for i = 0; i < n; i++ {
		row = w.Row(i)
		for j = 0; j < n; j++ {
			if colOf[i] == unassigned && !usedCol[j] && math.Abs(row[j]) <= eps {
				colOf[i] = j
				usedCol[j] = true
				fromZeros++
			}
		}
	}

	// Stage 2: cheapest free column per free row.
	for i = 0; i < n; i++ {
		if colOf[i] != unassigned {
			continue
		}
		row = w.Row(i)
		best := unassigned
		for j = 0; j < n; j++ {
			if usedCol[j] {
				continue
			}
			if best == unassigned || row[j] < row[best] {
				best = j
			}
		}
		colOf[i] = best
		usedCol[best] = true
	}

	out := make(Assignment, n)
	for i = 0; i < n; i++ {
		out[i] = Cell{Row: i, Col: colOf[i]}
	}

	return out, fromZeros
}
