// SPDX-License-Identifier: MIT

package input

import "errors"

// Boundary validation failures. Positions in wrapped messages are 1-based.
var (
	// ErrEmpty: the matrix has no rows or no columns.
	ErrEmpty = errors.New("input: matrix cannot be empty")

	// ErrNotSquare: some row length differs from the row count.
	ErrNotSquare = errors.New("input: matrix must be square (same number of rows and columns)")

	// ErrSize: n is outside [MinSize, MaxSize].
	ErrSize = errors.New("input: matrix size must be between 2x2 and 10x10")

	// ErrInvalidValue: a cell is not a finite number.
	ErrInvalidValue = errors.New("input: invalid value")

	// ErrFormat: the document could not be decoded.
	ErrFormat = errors.New("input: malformed document")
)
