// SPDX-License-Identifier: MIT

// Package hungarian: Matrix Adjuster.
//
// Given covering lines, let δ be the minimum uncovered value:
//   - uncovered cells:        v ← v − δ
//   - doubly covered cells:   v ← v + δ
//   - singly covered cells:   unchanged
//
// Because every zero is covered, δ > 0 and no entry turns negative; the
// cell(s) attaining δ become new zeros.
package hungarian

import (
	"github.com/katalvlaran/hungarian/matrix"
)

// Adjust applies one adjustment to w in place and returns δ.
// ok is false, and w untouched, when no cell is uncovered (or when cover
// does not match w's order); the caller must stop iterating.
//
// Complexity: O(n²).
func Adjust(w *matrix.Dense, cover CoverSet) (delta float64, ok bool) {
	delta, _, ok = minUncovered(w, cover)
	if !ok {
		return 0, false
	}
	applyAdjust(w, cover, delta)

	return delta, true
}

// minUncovered scans row-major for the smallest uncovered value and the cells
// attaining it, in scan order.
func minUncovered(w *matrix.Dense, cover CoverSet) (float64, []Cell, bool) {
	n := w.Rows()
	if len(cover.Rows) != n || len(cover.Cols) != n {
		return 0, nil, false
	}

	var (
		best  float64
		cells []Cell
		found bool
		i, j  int
		row   []float64
	)
	for i = 0; i < n; i++ {
		if cover.Rows[i] {
			continue
		}
		row = w.Row(i)
		for j = 0; j < n; j++ {
			if cover.Cols[j] {
				continue
			}
			switch {
			case !found || row[j] < best:
				best = row[j]
				cells = append(cells[:0], Cell{Row: i, Col: j})
				found = true
			case row[j] == best:
				cells = append(cells, Cell{Row: i, Col: j})
			}
		}
	}

	return best, cells, found
}

// applyAdjust subtracts delta from uncovered cells and adds it to doubly
// covered ones.
func applyAdjust(w *matrix.Dense, cover CoverSet, delta float64) {
	n := w.Rows()
	var (
		i, j int
		row  []float64
	)
	for i = 0; i < n; i++ {
		row = w.Row(i)
		for j = 0; j < n; j++ {
			switch cover.Covered(i, j) {
			case 0:
				row[j] -= delta
			case 2:
				row[j] += delta
			}
		}
	}
}
