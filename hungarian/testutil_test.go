// SPDX-License-Identifier: MIT

// Package hungarian_test provides helpers shared across *_test.go files:
// fixed scenario matrices, an independent brute-force optimum and a tiny
// Matrix implementation for shapes *matrix.Dense refuses to build.
package hungarian_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hungarian/hungarian"
	"github.com/katalvlaran/hungarian/matrix"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet keeps randomized tests reproducible.
	seedDet = int64(1)

	// epsCost compares float totals built from random float inputs.
	epsCost = 1e-9
)

// Scenario matrices.
var (
	// scenarioA: textbook 3×3, optimum 117 = 69 + 37 + 11.
	scenarioA = [][]float64{
		{82, 83, 69},
		{77, 37, 49},
		{11, 69, 5},
	}

	// scenarioC: unique zero per row and column after reduction (diagonal).
	scenarioC = [][]float64{
		{1, 5, 9},
		{7, 2, 8},
		{9, 9, 3},
	}

	// scenarioD: outer product of 1..4; needs three adjustments, optimum 20.
	scenarioD = [][]float64{
		{1, 2, 3, 4},
		{2, 4, 6, 8},
		{3, 6, 9, 12},
		{4, 8, 12, 16},
	}
)

// mustDense builds a *matrix.Dense or fails the test.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return d
}

// bruteForce returns the best total over all n! permutations.
func bruteForce(rows [][]float64, obj hungarian.Objective) float64 {
	n := len(rows)
	perm := make([]int, n)
	used := make([]bool, n)
	best := math.Inf(1)
	if obj == hungarian.Maximize {
		best = math.Inf(-1)
	}

	var rec func(i int, acc float64)
	rec = func(i int, acc float64) {
		if i == n {
			if (obj == hungarian.Minimize && acc < best) || (obj == hungarian.Maximize && acc > best) {
				best = acc
			}
			return
		}
		for j := 0; j < n; j++ {
			if used[j] {
				continue
			}
			used[j] = true
			perm[i] = j
			rec(i+1, acc+rows[i][j])
			used[j] = false
		}
	}
	rec(0, 0)

	return best
}

// randomRows returns an n×n grid of integers in [0, hi).
func randomRows(rng *rand.Rand, n, hi int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = float64(rng.Intn(hi))
		}
	}

	return rows
}

// requireValid asserts the verifier invariant and cost-from-original.
func requireValid(t *testing.T, rows [][]float64, sol *hungarian.Solution) {
	t.Helper()
	n := len(rows)
	require.Len(t, sol.Assignments, n)
	require.True(t, hungarian.Verify(sol.Pairs(), n))

	var total float64
	for k, r := range sol.Assignments {
		require.Equal(t, k, r.Resource, "assignments are ordered by resource")
		require.Equal(t, rows[r.Resource][r.Task], r.Cost)
		total += rows[r.Resource][r.Task]
	}
	require.InDelta(t, total, sol.TotalCost, epsCost)
}

// -----------------------------------------------------------------------------
// rectMatrix: a minimal matrix.Matrix allowing any shape.
// -----------------------------------------------------------------------------

type rectMatrix struct{ a [][]float64 }

var _ matrix.Matrix = rectMatrix{}

func (m rectMatrix) Rows() int { return len(m.a) }
func (m rectMatrix) Cols() int {
	if len(m.a) == 0 {
		return 0
	}

	return len(m.a[0])
}
func (m rectMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, matrix.ErrOutOfRange
	}

	return m.a[i][j], nil
}
func (m rectMatrix) Set(i, j int, v float64) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return matrix.ErrOutOfRange
	}
	m.a[i][j] = v

	return nil
}
func (m rectMatrix) Clone() matrix.Matrix {
	cp := make([][]float64, len(m.a))
	for i := range m.a {
		cp[i] = append([]float64(nil), m.a[i]...)
	}

	return rectMatrix{a: cp}
}
