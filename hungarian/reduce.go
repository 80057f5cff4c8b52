// SPDX-License-Identifier: MIT

// Package hungarian: Matrix Reducer.
//
// Normalization turns any instance into a non-negative minimization matrix
// with at least one zero in every row and every column:
//  1. Maximize → minimize: v ↦ M − v with M the global maximum.
//  2. Row reduction: subtract each row minimum.
//  3. Column reduction: subtract each column minimum.
//
// All three are shifts that keep the optimal cell set unchanged; the cost of
// the final assignment is always re-read from the original matrix.
package hungarian

import (
	"fmt"

	"github.com/katalvlaran/hungarian/matrix"
)

// Normalize validates m, deep-copies it and returns the reduced working
// matrix for objective obj. m is never mutated.
//
// Errors: ErrNilMatrix, ErrEmpty, ErrNonSquare, ErrNaNInf, ErrUnknownObjective.
//
// Complexity: O(n²).
func Normalize(m matrix.Matrix, obj Objective) (*matrix.Dense, error) {
	w, err := prepare(m, obj)
	if err != nil {
		return nil, err
	}
	if err = normalize(w, obj, nil); err != nil {
		return nil, err
	}

	return w, nil
}

// prepare runs the precondition checks and returns an owned copy of m.
func prepare(m matrix.Matrix, obj Objective) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareFinite(m); err != nil {
		return nil, fmt.Errorf("hungarian: %w", err)
	}
	if !obj.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownObjective, int(obj))
	}
	w, err := matrix.ToDense(m)
	if err != nil {
		return nil, fmt.Errorf("hungarian: %w", err)
	}

	return w, nil
}

// normalize applies conversion, row and column reduction to w in place.
func normalize(w *matrix.Dense, obj Objective, rec *recorder) error {
	if err := convert(w, obj, rec); err != nil {
		return err
	}
	reduceRows(w, rec)
	reduceCols(w, rec)

	return nil
}

// convert rewrites a benefit matrix as a cost matrix (M − v).
// Minimize leaves w unchanged and only records the step.
func convert(w *matrix.Dense, obj Objective, rec *recorder) error {
	if obj == Minimize {
		rec.step(msgStepMinimize)
		return nil
	}

	var before [][]float64
	if rec.on() {
		before = w.ToRows()
	}
	maxV := matrix.MaxValue(w)
	if err := w.Apply(func(_, _ int, v float64) float64 { return maxV - v }); err != nil {
		// Only reachable when M − v overflows float64.
		return fmt.Errorf("hungarian: maximize conversion: %w", err)
	}
	if !rec.on() {
		return nil
	}

	n := w.Rows()
	details := make([]string, 0, n)
	for i := 0; i < n; i++ {
		details = append(details, rec.text(msgDetailConvertRow,
			i+1, rec.vec(before[i]), rec.num(maxV), rec.vec(w.Row(i))))
	}
	rec.step(msgStepMaximize, rec.num(maxV))
	rec.snapshot(w, rec.text(msgTraceConverted, rec.num(maxV)), nil, details)

	return nil
}

// reduceRows subtracts each row minimum from its row.
// The first minimum of every row is highlighted.
func reduceRows(w *matrix.Dense, rec *recorder) {
	n := w.Rows()
	mins := matrix.RowMins(w)

	var (
		cells   []Cell
		details []string
	)
	if rec.on() {
		cells = make([]Cell, 0, n)
		details = make([]string, 0, 4*n)
	}

	var orig string
	for i := 0; i < n; i++ {
		row := w.Row(i)
		if rec.on() {
			cells = append(cells, Cell{Row: i, Col: firstIndex(row, mins[i])})
			orig = rec.vec(row)
			details = append(details,
				rec.text(msgDetailRow, i+1, orig),
				rec.text(msgDetailRowMin, i+1, rec.num(mins[i])))
		}
		for j := range row {
			row[j] -= mins[i]
		}
		if rec.on() {
			details = append(details, subtractionDetail(rec, orig, mins[i], row), "")
		}
	}

	rec.step(msgStepRowMins, rec.vec(mins))
	rec.snapshot(w, rec.text(msgTraceRows), cells, details)
}

// reduceCols subtracts each column minimum from its column.
// The first (top-most) minimum of every column is highlighted.
func reduceCols(w *matrix.Dense, rec *recorder) {
	n := w.Cols()
	mins := matrix.ColMins(w)

	var (
		cells   []Cell
		details []string
	)
	if rec.on() {
		cells = make([]Cell, 0, n)
		details = make([]string, 0, 4*n)
		for j := 0; j < n; j++ {
			col := matrix.Column(w, j)
			cells = append(cells, Cell{Row: firstIndex(col, mins[j]), Col: j})
			after := make([]float64, len(col))
			for i, v := range col {
				after[i] = v - mins[j]
			}
			orig := rec.vec(col)
			details = append(details,
				rec.text(msgDetailCol, j+1, orig),
				rec.text(msgDetailColMin, j+1, rec.num(mins[j])))
			details = append(details, subtractionDetail(rec, orig, mins[j], after), "")
		}
	}

	for i := 0; i < w.Rows(); i++ {
		row := w.Row(i)
		for j := range row {
			row[j] -= mins[j]
		}
	}

	rec.step(msgStepColMins, rec.vec(mins))
	rec.snapshot(w, rec.text(msgTraceCols), cells, details)
}

// subtractionDetail explains "orig - min = after", or that nothing changes.
// after must already hold the reduced values.
func subtractionDetail(rec *recorder, orig string, minV float64, after []float64) string {
	if minV == 0 {
		return rec.text(msgDetailNothing, rec.num(minV))
	}

	return rec.text(msgDetailOperation, orig, rec.operand(minV), rec.vec(after))
}

// firstIndex returns the first position holding exactly v, or -1.
func firstIndex(vs []float64, v float64) int {
	for i, x := range vs {
		if x == v {
			return i
		}
	}

	return -1
}
