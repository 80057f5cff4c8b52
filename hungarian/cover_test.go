// SPDX-License-Identifier: MIT

package hungarian_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hungarian/hungarian"
)

func TestFindMinimumCover_ScenarioD(t *testing.T) {
	w, err := hungarian.Normalize(mustDense(t, scenarioD), hungarian.Minimize)
	require.NoError(t, err)

	cover := hungarian.FindMinimumCover(w)
	require.Equal(t, []bool{true, false, false, false}, cover.Rows)
	require.Equal(t, []bool{true, false, false, false}, cover.Cols)
	require.Equal(t, 2, cover.Lines())
	require.Equal(t, 2, cover.Covered(0, 0))
	require.Equal(t, 1, cover.Covered(0, 3))
	require.Equal(t, 0, cover.Covered(2, 2))
}

func TestCoverFrom_NonMaximumMatching(t *testing.T) {
	w := mustDense(t, allZerosButCorner)
	cover := hungarian.CoverFrom(w, hungarian.Assignment{{0, 0}, {1, 1}, {2, 2}})
	require.Equal(t, []bool{false, false, false, false}, cover.Rows)
	require.Equal(t, []bool{true, true, true, true}, cover.Cols)
	require.Equal(t, 4, cover.Lines())
}

// Every zero is covered and, from a maximum matching, lines == matching size.
func TestFindMinimumCover_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	var n, i, j int
	for k := 0; k < 200; k++ {
		n = 2 + rng.Intn(7)
		w, err := hungarian.Normalize(mustDense(t, randomRows(rng, n, 6)), hungarian.Minimize)
		require.NoError(t, err)

		cover := hungarian.FindMinimumCover(w)
		require.Equal(t, len(hungarian.FindZeroAssignment(w)), cover.Lines())
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if w.Row(i)[j] == 0 {
					require.Positive(t, cover.Covered(i, j), "zero at (%d,%d) uncovered", i, j)
				}
			}
		}
	}
}
