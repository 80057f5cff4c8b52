// SPDX-License-Identifier: MIT

package hungarian_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hungarian/hungarian"
)

func TestAdjust_ScenarioD(t *testing.T) {
	w, err := hungarian.Normalize(mustDense(t, scenarioD), hungarian.Minimize)
	require.NoError(t, err)

	delta, ok := hungarian.Adjust(w, hungarian.FindMinimumCover(w))
	require.True(t, ok)
	require.Equal(t, 1.0, delta)
	require.Equal(t, [][]float64{
		{1, 0, 0, 0},
		{0, 0, 1, 2},
		{0, 1, 3, 5},
		{0, 2, 5, 8},
	}, w.ToRows())
}

func TestAdjust_NothingUncovered(t *testing.T) {
	w := mustDense(t, allZerosButCorner)
	before := w.CloneDense()
	cover := hungarian.CoverFrom(w, hungarian.Assignment{{0, 0}, {1, 1}, {2, 2}})

	delta, ok := hungarian.Adjust(w, cover)
	require.False(t, ok)
	require.Zero(t, delta)
	require.True(t, before.Equal(w))
}

func TestAdjust_MismatchedCover(t *testing.T) {
	w := mustDense(t, scenarioA)
	_, ok := hungarian.Adjust(w, hungarian.CoverSet{Rows: []bool{false}, Cols: []bool{false}})
	require.False(t, ok)
}

func TestAdjust_KeepsZerosNonNegative(t *testing.T) {
	w, err := hungarian.Normalize(mustDense(t, scenarioD), hungarian.Minimize)
	require.NoError(t, err)

	for k := 0; k < 3; k++ {
		_, ok := hungarian.Adjust(w, hungarian.FindMinimumCover(w))
		require.True(t, ok)
		w.Do(func(i, j int, v float64) bool {
			require.GreaterOrEqual(t, v, 0.0, "(%d,%d)", i, j)
			return true
		})
	}
	require.True(t, hungarian.Verify(hungarian.FindZeroAssignment(w), 4))
}
