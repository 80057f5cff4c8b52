// SPDX-License-Identifier: MIT

// Package hungarian: Cover-Line Finder.
//
// Marking procedure (König):
//   - mark every row without an assignment;
//   - mark every column holding a zero in a marked row;
//   - mark every row assigned in a marked column;
//   - repeat until nothing new is marked.
//
// Lines = unmarked rows ∪ marked columns. Every zero is covered: a zero in a
// marked row has its column marked, a zero in an unmarked row is on a line.
// When the assignment is a maximum zero matching the number of lines equals
// its size, which is the minimum possible.
package hungarian

import (
	"math"

	"github.com/katalvlaran/hungarian/matrix"
)

// FindMinimumCover computes covering lines for all zeros of w, starting from
// FindZeroAssignment(w). w is not modified.
//
// Complexity: O(n³).
func FindMinimumCover(w *matrix.Dense) CoverSet {
	return coverFrom(w, FindZeroAssignment(w), DefaultEps)
}

// CoverFrom runs the marking procedure from a caller-supplied zero assignment.
// Pairs outside [0, n) are ignored.
func CoverFrom(w *matrix.Dense, a Assignment) CoverSet {
	return coverFrom(w, a, DefaultEps)
}

func coverFrom(w *matrix.Dense, a Assignment, eps float64) CoverSet {
	n := w.Rows()
	rowAssigned := make([]bool, n)
	markedRows := make([]bool, n)
	markedCols := make([]bool, n)

	for _, c := range a {
		if c.Row >= 0 && c.Row < n {
			rowAssigned[c.Row] = true
		}
	}
	for i := 0; i < n; i++ {
		markedRows[i] = !rowAssigned[i]
	}

	var (
		i, j    int
		row     []float64
		changed = true
	)
	for changed {
		changed = false

		// Columns with a zero in a marked row.
		for i = 0; i < n; i++ {
			if !markedRows[i] {
				continue
			}
			row = w.Row(i)
			for j = 0; j < n; j++ {
				if !markedCols[j] && math.Abs(row[j]) <= eps {
					markedCols[j] = true
					changed = true
				}
			}
		}

		// Rows assigned in a marked column.
		for _, c := range a {
			if c.Row < 0 || c.Row >= n || c.Col < 0 || c.Col >= n {
				continue
			}
			if markedCols[c.Col] && !markedRows[c.Row] {
				markedRows[c.Row] = true
				changed = true
			}
		}
	}

	cover := CoverSet{Rows: make([]bool, n), Cols: markedCols}
	for i = 0; i < n; i++ {
		cover.Rows[i] = !markedRows[i]
	}

	return cover
}
