// SPDX-License-Identifier: MIT

// Package hungarian solves the balanced linear assignment problem with the
// Hungarian method and explains every step it takes.
//
// Given an n×n cost (or benefit) matrix, Solve returns a one-to-one mapping
// of rows (resources) to columns (tasks) with minimum (or maximum) total, plus
// a trace: natural-language Steps and matrix snapshots (TraceStep) with the
// cells and sub-operations worth showing.
//
// Pipeline:
//
//	Normalize       maximize → M − v, row reduction, column reduction
//	FindZeroAssignment   single-zero rules, left-to-right sweep, augmenting paths
//	FindMinimumCover     König marking: unmarked rows + marked columns
//	Adjust          − δ on uncovered cells, + δ on doubly covered cells
//	Verify / Check  n pairs, distinct rows, distinct columns
//
// The phases are exported for teaching and testing; Solve wires them into
// a bounded loop (IterationCap) with a greedy completion as last resort,
// reported through Solution.Fallback.
//
// Guarantees:
//   - The caller's matrix is never mutated; each solve owns a deep copy.
//   - Costs are always read from the original matrix, never from the
//     reduced one.
//   - Arithmetic is exact float64; rounding (WithPrecision) only affects
//     trace text. Zero tests use |v| <= eps (WithEpsilon).
//   - No global state, no goroutines, no I/O. A solve is deterministic.
//
// Trace text is English by default; WithLanguage(language.Spanish) switches
// to the Spanish catalog.
//
// Complexity: O(n³) per iteration, at most IterationCap(n) iterations.
// Intended sizes are 2×2 to 10×10.
package hungarian
