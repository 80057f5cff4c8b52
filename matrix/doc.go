// Package matrix provides the dense float64 matrix used by the assignment
// solver.
//
// The matrix package provides:
//
//   - Matrix, a minimal interface (Rows, Cols, At, Set, Clone) so callers can
//     hand in their own storage.
//   - Dense, a row-major implementation with bounds-checked accessors and a
//     finite-only numeric policy: Set and Apply reject NaN/±Inf.
//   - Validators (ValidateNotNil, ValidateSquare, ValidateFinite) returning
//     the sentinels from errors.go.
//   - Row/column extrema (RowMins, ColMins, MaxValue) used by reductions.
//
// Quick example:
//
//	d, _ := matrix.NewDenseFromRows([][]float64{{4, 1}, {2, 3}})
//	fmt.Println(matrix.RowMins(d)) // [1 2]
//
// All functions are deterministic and iterate in row-major order.
package matrix
