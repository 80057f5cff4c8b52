// SPDX-License-Identifier: MIT

package hungarian

import "fmt"

// violation describes the first defect Check finds.
type violation struct {
	err      error
	row, col int // offending pair (or row/col index)
	got      int // pair count for ErrIncomplete
}

// inspect is the shared scan behind Verify and Check.
// Order: count → range → row reuse → column reuse, pair by pair.
func inspect(a Assignment, n int) violation {
	if len(a) != n {
		return violation{err: ErrIncomplete, got: len(a)}
	}
	usedRows := make([]bool, n)
	usedCols := make([]bool, n)
	for _, c := range a {
		if c.Row < 0 || c.Row >= n || c.Col < 0 || c.Col >= n {
			return violation{err: ErrCellOutOfRange, row: c.Row, col: c.Col}
		}
		if usedRows[c.Row] {
			return violation{err: ErrRowReused, row: c.Row, col: c.Col}
		}
		if usedCols[c.Col] {
			return violation{err: ErrColReused, row: c.Row, col: c.Col}
		}
		usedRows[c.Row] = true
		usedCols[c.Col] = true
	}

	return violation{}
}

// Verify reports whether a is a complete one-to-one assignment over n rows
// and n columns. Pure; never panics.
func Verify(a Assignment, n int) bool {
	return inspect(a, n).err == nil
}

// Check is Verify with a reason: nil, or an error wrapping ErrIncomplete,
// ErrCellOutOfRange, ErrRowReused or ErrColReused.
func Check(a Assignment, n int) error {
	v := inspect(a, n)
	switch v.err {
	case nil:
		return nil
	case ErrIncomplete:
		return fmt.Errorf("%w: %d/%d pairs", v.err, v.got, n)
	case ErrCellOutOfRange:
		return fmt.Errorf("%w: (%d, %d) with n=%d", v.err, v.row, v.col, n)
	case ErrRowReused:
		return fmt.Errorf("%w: row %d", v.err, v.row)
	default:
		return fmt.Errorf("%w: column %d", v.err, v.col)
	}
}

// reason renders a violation in the recorder's language (1-based indices).
func (v violation) reason(rec *recorder, n int) string {
	switch v.err {
	case ErrIncomplete:
		return rec.text(msgReasonIncomplete, v.got, n)
	case ErrCellOutOfRange:
		return rec.text(msgReasonRange, v.row+1, v.col+1)
	case ErrRowReused:
		return rec.text(msgReasonRow, v.row+1)
	default:
		return rec.text(msgReasonCol, v.col+1)
	}
}
