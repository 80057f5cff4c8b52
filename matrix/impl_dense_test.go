// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hungarian/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // attempt to create with zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // attempt to create with zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // deprecated alias still matches

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetRejectsNonFinite verifies the finite-only numeric policy of Set.
func TestSetRejectsNonFinite(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
	require.NoError(t, m.Set(0, 0, -3.5))
}

// TestNewDenseFromRows covers the happy path and the ragged / non-finite rejections.
func TestNewDenseFromRows(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}}
	d, err := matrix.NewDenseFromRows(src)
	require.NoError(t, err)
	require.Equal(t, 2, d.Rows())
	require.Equal(t, 2, d.Cols())

	// no aliasing with the source rows
	src[0][0] = 99
	v, err := d.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRagged)

	_, err = matrix.NewDenseFromRows([][]float64{{1, math.NaN()}, {3, 4}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 0}, {0, 2}})
	require.NoError(t, err)

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal)

	cloneVal, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cloneVal)
}

// TestRowWritesThrough documents that Row is a no-copy view while ToRows copies.
func TestRowWritesThrough(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	snap := m.ToRows()
	m.Row(1)[0] = 30

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 30.0, v)
	require.Equal(t, 3.0, snap[1][0])
	require.Nil(t, m.Row(2))
}

// TestApplyAndDo exercises the row-major visitors.
func TestApplyAndDo(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	require.NoError(t, m.Apply(func(_, _ int, v float64) float64 { return v * 10 }))

	var seen []float64
	m.Do(func(i, j int, v float64) bool {
		seen = append(seen, v)
		return !(i == 1 && j == 0) // stop after (1,0)
	})
	require.Equal(t, []float64{10, 20, 30}, seen)

	err = m.Apply(func(_, _ int, v float64) float64 { return math.Inf(1) })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestEqualAndString checks structural equality and the diagnostic dump.
func TestEqualAndString(t *testing.T) {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2.5}, {3, 4}})
	b := a.CloneDense()
	require.True(t, a.Equal(b))
	b.Row(0)[1] = 2
	require.False(t, a.Equal(b))
	require.False(t, a.Equal(nil))
	require.Equal(t, "[1, 2.5]\n[3, 4]\n", a.String())
}
