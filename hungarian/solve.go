// SPDX-License-Identifier: MIT

// Package hungarian: Solver Orchestrator.
//
// State machine:
//
//	REDUCE → SEARCH → (COMPLETE | COVER → ADJUST → SEARCH) → VERIFY → (DONE | FALLBACK → DONE)
//
// Stages:
//   - REDUCE runs once (Normalize).
//   - SEARCH extracts a zero assignment; n pairs ⇒ VERIFY.
//   - COVER derives the covering lines; when they number n the assignment is
//     extracted again with augmenting paths before adjusting.
//   - ADJUST creates new zeros; no uncovered cell ⇒ leave the loop.
//   - The SEARCH↔ADJUST cycle is bounded by Options.iterationCap(n); hitting
//     the bound is not an error, it routes to FALLBACK.
//   - VERIFY rejects incomplete or conflicting assignments ⇒ FALLBACK.
//   - DONE re-reads every cost from the ORIGINAL matrix.
//
// Determinism: no randomness, no map iteration; identical input and options
// always produce identical Solutions, traces included.
package hungarian

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/hungarian/matrix"
)

// solver is the state of one solve. It exclusively owns work.
type solver struct {
	orig *matrix.Dense // untouched copy of the input, for costs
	work *matrix.Dense // reduced and adjusted in place
	n    int
	obj  Objective
	opts Options
	rec  *recorder
	log  *log.Logger

	iterations  int
	adjustments int
	fallback    bool
}

// Solve finds an optimal assignment of rows (resources) to columns (tasks)
// of the square matrix m for objective obj and explains how it got there.
// m is deep-copied; the caller's matrix is never mutated.
//
// Errors (precondition violations only): ErrNilMatrix, ErrEmpty,
// ErrNonSquare, ErrNaNInf, ErrUnknownObjective. Non-convergence and invalid
// intermediate assignments are recovered internally and show up in
// Solution.Steps and Solution.Fallback.
//
// Complexity: O(n⁴) worst case with the derived iteration cap; n ≤ 10 in
// practice.
func Solve(m matrix.Matrix, obj Objective, opts ...Option) (*Solution, error) {
	work, err := prepare(m, obj)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	s := &solver{
		orig: work.CloneDense(),
		work: work,
		n:    work.Rows(),
		obj:  obj,
		opts: o,
		rec:  newRecorder(o),
		log:  o.logger,
	}

	return s.run()
}

// SolveRows is Solve over a [][]float64 grid. Ragged rows are reported as
// ErrNonSquare.
func SolveRows(rows [][]float64, obj Objective, opts ...Option) (*Solution, error) {
	if rows == nil {
		return nil, fmt.Errorf("hungarian: %w", ErrNilMatrix)
	}
	d, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		if errors.Is(err, matrix.ErrRagged) {
			return nil, fmt.Errorf("hungarian: %w: %w", ErrNonSquare, err)
		}

		return nil, fmt.Errorf("hungarian: %w", err)
	}

	return Solve(d, obj, opts...)
}

// run drives the state machine to DONE.
func (s *solver) run() (*Solution, error) {
	s.rec.snapshot(s.work, s.rec.text(msgTraceOriginal), nil, nil)

	if err := normalize(s.work, s.obj, s.rec); err != nil {
		return nil, err
	}
	s.debug("normalized", "n", s.n, "objective", s.obj)

	a := s.search()

	if v := inspect(a, s.n); v.err != nil {
		s.rec.step(msgStepInvalid, v.reason(s.rec, s.n))
		s.debug("assignment rejected", "err", v.err, "pairs", len(a))
		a = s.complete()
	}

	return s.finish(a), nil
}

// search runs the SEARCH → COVER → ADJUST cycle and returns the best
// assignment it reached (complete on convergence, partial otherwise).
func (s *solver) search() Assignment {
	var (
		limit = s.opts.iterationCap(s.n)
		eps   = s.opts.eps
		a     Assignment
		it    int
	)
	for {
		s.iterations++
		it = s.iterations

		a = findZeroAssignment(s.work, eps, s.opts.strategy)
		if len(a) == s.n {
			s.rec.step(msgStepComplete, it, it)
			s.rec.snapshot(s.work, s.rec.text(msgTraceOptimal, it), a, nil)
			return a
		}
		s.rec.step(msgStepIncomplete, it, len(a), s.n)

		if it >= limit {
			s.rec.step(msgStepCapReached, limit)
			s.debug("iteration cap reached", "limit", limit)
			return a
		}

		cover := coverFrom(s.work, a, eps)
		if lines := cover.Lines(); lines == s.n {
			// n lines: a complete zero matching exists, only the heuristic
			// missed it.
			if again := findZeroAssignment(s.work, eps, MatchAugmenting); len(again) == s.n {
				s.rec.step(msgStepCoverExtract, it, lines)
				s.rec.snapshot(s.work, s.rec.text(msgTraceOptimalLines, it, lines), again, nil)
				return again
			}
		}

		delta, cells, ok := minUncovered(s.work, cover)
		if !ok {
			s.rec.step(msgStepNoUncovered, it)
			s.debug("no uncovered cell", "iteration", it)
			return a
		}

		s.rec.snapshot(s.work, s.rec.text(msgTraceBeforeAdjust, it, s.rec.num(delta)), cells, s.adjustDetails(cover, delta))
		applyAdjust(s.work, cover, delta)
		s.adjustments++
		s.rec.snapshot(s.work, s.rec.text(msgTraceAfterAdjust, it), nil, nil)
		s.debug("adjusted", "iteration", it, "delta", delta, "lines", cover.Lines())
	}
}

// adjustDetails explains one adjustment.
func (s *solver) adjustDetails(cover CoverSet, delta float64) []string {
	d := s.rec.num(delta)

	return []string{
		s.rec.text(msgDetailLines, indices(cover.Rows), indices(cover.Cols)),
		s.rec.text(msgDetailMinUncovered, d),
		"",
		s.rec.text(msgDetailOperations),
		s.rec.text(msgDetailSubtract, d),
		s.rec.text(msgDetailAdd, d),
		s.rec.text(msgDetailKeep),
	}
}

// complete runs the greedy completion on the current working matrix.
func (s *solver) complete() Assignment {
	a, fromZeros := greedyCompletion(s.work, s.opts.eps)
	s.fallback = true
	s.rec.step(msgStepFallback, fromZeros, s.n-fromZeros)
	s.rec.snapshot(s.work, s.rec.text(msgTraceFallback), a, nil)
	if s.log != nil {
		s.log.Warn("greedy completion used, result may be suboptimal", "n", s.n, "from_zeros", fromZeros)
	}

	return a
}

// finish costs a on the original matrix and assembles the Solution.
// a is in row order (both the finder and the completion emit it that way).
func (s *solver) finish(a Assignment) *Solution {
	records := make([]Record, len(a))
	var total float64
	for k, c := range a {
		cost := s.orig.Row(c.Row)[c.Col]
		records[k] = Record{Resource: c.Row, Task: c.Col, Cost: cost}
		total += cost
	}

	s.rec.step(msgStepTotal, s.rec.num(total))
	if Verify(a, s.n) {
		s.rec.step(msgStepVerified)
	}
	s.debug("solved", "total", total, "iterations", s.iterations, "adjustments", s.adjustments, "fallback", s.fallback)

	return &Solution{
		Objective:   s.obj,
		Assignments: records,
		TotalCost:   total,
		Steps:       s.rec.steps,
		Trace:       s.rec.trace,
		Iterations:  s.iterations,
		Adjustments: s.adjustments,
		Fallback:    s.fallback,
	}
}

func (s *solver) debug(msg string, keyvals ...any) {
	if s.log != nil {
		s.log.Debug(msg, keyvals...)
	}
}
