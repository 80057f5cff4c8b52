// SPDX-License-Identifier: MIT

// Package matrix: small public helpers over Matrix / Dense.
// Row and column extrema are the building blocks of the assignment
// reductions; they read the flat buffer directly on *Dense.
package matrix

import "math"

// ToDense returns an independent *Dense copy of any Matrix.
// Non-finite entries are rejected with ErrNaNInf.
// Complexity: O(r*c).
func ToDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d.CloneDense(), nil
	}

	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// MaxValue returns the largest entry of d.
// Complexity: O(r*c).
func MaxValue(d *Dense) float64 {
	best := math.Inf(-1)
	for _, v := range d.data {
		if v > best {
			best = v
		}
	}

	return best
}

// RowMins returns out[i] = min_j d[i,j].
// Complexity: O(r*c).
func RowMins(d *Dense) []float64 {
	out := make([]float64, d.r)
	var i, j int
	var row []float64
	for i = 0; i < d.r; i++ {
		row = d.data[i*d.c : (i+1)*d.c]
		out[i] = row[0]
		for j = 1; j < d.c; j++ {
			if row[j] < out[i] {
				out[i] = row[j]
			}
		}
	}

	return out
}

// ColMins returns out[j] = min_i d[i,j].
// Complexity: O(r*c).
func ColMins(d *Dense) []float64 {
	out := make([]float64, d.c)
	copy(out, d.data[:d.c]) // first row seeds the minima
	var i, j int
	for i = 1; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			if v := d.data[i*d.c+j]; v < out[j] {
				out[j] = v
			}
		}
	}

	return out
}

// Column returns a copy of column j, or nil when j is out of range.
// Complexity: O(r).
func Column(d *Dense, j int) []float64 {
	if j < 0 || j >= d.c {
		return nil
	}
	out := make([]float64, d.r)
	var i int
	for i = 0; i < d.r; i++ {
		out[i] = d.data[i*d.c+j]
	}

	return out
}
