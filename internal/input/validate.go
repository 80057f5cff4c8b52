// SPDX-License-Identifier: MIT

package input

import (
	"fmt"
	"math"
)

const (
	// MinSize and MaxSize bound n for an n×n instance.
	MinSize = 2
	MaxSize = 10

	// LargeValue is the magnitude above which a value draws a warning.
	LargeValue = 1e6

	// SlowSize is the n from which solving is announced as slower.
	SlowSize = 7
)

// Warning is a non-fatal remark about an accepted matrix.
// Row and Col are 1-based; both are 0 for matrix-wide remarks.
type Warning struct {
	Row     int    `json:"row,omitempty"`
	Col     int    `json:"col,omitempty"`
	Message string `json:"message"`
}

func (w Warning) String() string { return w.Message }

// Validate checks rows at the caller boundary before they reach the solver:
// non-empty, square, MinSize ≤ n ≤ MaxSize, every value finite.
// Accepted matrices may still carry warnings (large values, large n).
func Validate(rows [][]float64) ([]Warning, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrEmpty
	}
	for i, r := range rows {
		if len(r) != n {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrNotSquare, i+1, len(r), n)
		}
	}
	if n < MinSize || n > MaxSize {
		return nil, fmt.Errorf("%w: got %dx%d", ErrSize, n, n)
	}

	var warnings []Warning
	for i, r := range rows {
		for j, v := range r {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w at position [%d, %d]: use finite numbers", ErrInvalidValue, i+1, j+1)
			}
			if math.Abs(v) > LargeValue {
				warnings = append(warnings, Warning{
					Row: i + 1, Col: j + 1,
					Message: fmt.Sprintf("very large value at position [%d, %d] (%g); consider smaller values", i+1, j+1, v),
				})
			}
		}
	}
	if n >= SlowSize {
		warnings = append(warnings, Warning{Message: fmt.Sprintf("large matrix (%dx%d) may take longer to process", n, n)})
	}

	return warnings, nil
}
