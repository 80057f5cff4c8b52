// SPDX-License-Identifier: MIT

// Package hungarian: Zero-Assignment Finder.
//
// Extraction runs in up to three stages over the zero cells of the working
// matrix (|v| <= eps):
//  1. Single-zero rules, to a fixed point: a free row with exactly one zero
//     in a free column is assigned; then a free column with exactly one zero
//     in a free row is assigned.
//  2. Sweep: every still-free row takes its first zero in a free column.
//  3. (MatchAugmenting only) Kuhn's augmenting paths extend the result to a
//     maximum zero matching.
//
// Stages 1-2 are the explainable heuristic and may under-assign; stage 3
// guarantees that a complete zero assignment is found whenever one exists.
package hungarian

import (
	"math"

	"github.com/katalvlaran/hungarian/matrix"
)

const unassigned = -1

// zeroMatching is the mutable state of one extraction.
type zeroMatching struct {
	w     *matrix.Dense
	n     int
	eps   float64
	colOf []int // colOf[row] = assigned column or unassigned
	rowOf []int // rowOf[col] = assigned row or unassigned
	seen  []bool
}

// FindZeroAssignment extracts a (possibly partial) one-to-one assignment that
// uses only zero cells of w, with the default tolerance and strategy.
// Pairs are returned in row order. w is not modified.
//
// Complexity: O(n³) for the rules and the augmenting stage.
func FindZeroAssignment(w *matrix.Dense) Assignment {
	return findZeroAssignment(w, DefaultEps, DefaultStrategy)
}

// FindZeroAssignmentWith is FindZeroAssignment with explicit options
// (WithEpsilon, WithStrategy are honored).
func FindZeroAssignmentWith(w *matrix.Dense, opts ...Option) Assignment {
	o := gatherOptions(opts...)

	return findZeroAssignment(w, o.eps, o.strategy)
}

func findZeroAssignment(w *matrix.Dense, eps float64, strategy MatchStrategy) Assignment {
	z := newZeroMatching(w, eps)
	z.singles()
	z.sweep()
	if strategy == MatchAugmenting {
		z.augment()
	}

	return z.assignment()
}

func newZeroMatching(w *matrix.Dense, eps float64) *zeroMatching {
	n := w.Rows()
	z := &zeroMatching{
		w:     w,
		n:     n,
		eps:   eps,
		colOf: make([]int, n),
		rowOf: make([]int, n),
		seen:  make([]bool, n),
	}
	for i := 0; i < n; i++ {
		z.colOf[i] = unassigned
		z.rowOf[i] = unassigned
	}

	return z
}

// isZero applies the tolerance.
func (z *zeroMatching) isZero(i, j int) bool {
	return math.Abs(z.w.Row(i)[j]) <= z.eps
}

func (z *zeroMatching) assign(i, j int) {
	z.colOf[i] = j
	z.rowOf[j] = i
}

// singles applies the row rule then the column rule until a full pass
// assigns nothing.
func (z *zeroMatching) singles() {
	var (
		i, j, hit, count int
		changed          = true
	)
	for changed {
		changed = false

		// Rows with exactly one zero in free columns.
		for i = 0; i < z.n; i++ {
			if z.colOf[i] != unassigned {
				continue
			}
			count, hit = 0, unassigned
			for j = 0; j < z.n; j++ {
				if z.rowOf[j] == unassigned && z.isZero(i, j) {
					count++
					hit = j
				}
			}
			if count == 1 {
				z.assign(i, hit)
				changed = true
			}
		}

		// Columns with exactly one zero in free rows.
		for j = 0; j < z.n; j++ {
			if z.rowOf[j] != unassigned {
				continue
			}
			count, hit = 0, unassigned
			for i = 0; i < z.n; i++ {
				if z.colOf[i] == unassigned && z.isZero(i, j) {
					count++
					hit = i
				}
			}
			if count == 1 {
				z.assign(hit, j)
				changed = true
			}
		}
	}
}

// sweep gives every free row its first zero in a free column, left to right.
func (z *zeroMatching) sweep() {
	var i, j int
	for i = 0; i < z.n; i++ {
		if z.colOf[i] != unassigned {
			continue
		}
		for j = 0; j < z.n; j++ {
			if z.rowOf[j] == unassigned && z.isZero(i, j) {
				z.assign(i, j)
				break
			}
		}
	}
}

// augment grows the matching along augmenting paths until none is left.
// Rows are tried in ascending order, columns in ascending order, so the
// result is deterministic.
func (z *zeroMatching) augment() {
	var i int
	for i = 0; i < z.n; i++ {
		if z.colOf[i] != unassigned {
			continue
		}
		for k := range z.seen {
			z.seen[k] = false
		}
		z.tryRow(i)
	}
}

// tryRow looks for an alternating path from row i to a free column.
// Recursion depth is bounded by n.
func (z *zeroMatching) tryRow(i int) bool {
	var j int
	for j = 0; j < z.n; j++ {
		if z.seen[j] || !z.isZero(i, j) {
			continue
		}
		z.seen[j] = true
		if z.rowOf[j] == unassigned || z.tryRow(z.rowOf[j]) {
			z.assign(i, j)
			return true
		}
	}

	return false
}

// assignment lists the matched pairs in row order.
func (z *zeroMatching) assignment() Assignment {
	out := make(Assignment, 0, z.n)
	for i, j := range z.colOf {
		if j != unassigned {
			out = append(out, Cell{Row: i, Col: j})
		}
	}

	return out
}
