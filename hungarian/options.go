// SPDX-License-Identifier: MIT

// Package hungarian: functional configuration of the solver.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package hungarian

import (
	"math"

	"github.com/charmbracelet/log"
	"golang.org/x/text/language"
)

// MatchStrategy selects how the zero-assignment search extracts pairs.
type MatchStrategy int

const (
	// MatchAugmenting runs the single-zero rules and the left-to-right sweep,
	// then extends the result with augmenting paths (Kuhn) to a maximum zero
	// matching. The cover derived from it is minimal, so the main loop always
	// converges and the greedy completion is never needed.
	MatchAugmenting MatchStrategy = iota

	// MatchGreedy stops after the rules and the sweep. It can under-assign
	// when a complete zero matching exists, which may end in the greedy
	// completion (Solution.Fallback).
	MatchGreedy
)

// String returns "augmenting" or "greedy".
func (s MatchStrategy) String() string {
	if s == MatchGreedy {
		return "greedy"
	}

	return "augmenting"
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEps is the zero tolerance: |v| <= eps counts as a zero cell.
	DefaultEps = 1e-9

	// DefaultMinIterations is the floor of the derived iteration cap.
	DefaultMinIterations = 10

	// DefaultPrecision is the number of decimals shown in trace text.
	// Computation never rounds.
	DefaultPrecision = 2

	// DefaultStrategy is the zero-assignment strategy.
	DefaultStrategy = MatchAugmenting
)

// DefaultLanguage is the language of trace text.
var DefaultLanguage = language.English

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsInvalid       = "hungarian: WithEpsilon: eps must be finite, non-negative"
	panicMaxIterInvalid   = "hungarian: WithMaxIterations: limit must be >= 0"
	panicPrecisionInvalid = "hungarian: WithPrecision: digits must be in [0, 12]"
	panicStrategyInvalid  = "hungarian: WithStrategy: unknown strategy"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps       float64       // >= 0; DefaultEps
	maxIter   int           // 0 ⇒ derived from n (IterationCap)
	strategy  MatchStrategy // DefaultStrategy
	lang      language.Tag  // DefaultLanguage
	precision int           // DefaultPrecision
	logger    *log.Logger   // nil ⇒ silent
}

// WithEpsilon sets the zero tolerance.
// Panics when eps is negative, NaN or Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxIterations overrides the SEARCH↔ADJUST cap. 0 restores the derived
// cap max(DefaultMinIterations, n*n+1). Panics on negative limits.
func WithMaxIterations(limit int) Option {
	if limit < 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = limit }
}

// WithStrategy selects the zero-assignment strategy.
func WithStrategy(s MatchStrategy) Option {
	if s != MatchAugmenting && s != MatchGreedy {
		panic(panicStrategyInvalid)
	}

	return func(o *Options) { o.strategy = s }
}

// WithLanguage selects the language of Steps, trace descriptions and details.
// English and Spanish are built in; other tags fall back to English text.
func WithLanguage(tag language.Tag) Option {
	return func(o *Options) { o.lang = tag }
}

// WithPrecision sets how many decimals trace text shows (display only).
func WithPrecision(digits int) Option {
	if digits < 0 || digits > 12 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = digits }
}

// WithLogger attaches a logger that receives phase transitions at debug level.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// gatherOptions applies user-provided setters on top of defaults.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:       DefaultEps,
		strategy:  DefaultStrategy,
		lang:      DefaultLanguage,
		precision: DefaultPrecision,
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// IterationCap returns the derived SEARCH↔ADJUST bound for an n×n problem.
// With a maximum zero matching, every adjustment either grows the matching or
// marks at least one more column, so n*n+1 rounds always suffice.
func IterationCap(n int) int {
	c := n*n + 1
	if c < DefaultMinIterations {
		return DefaultMinIterations
	}

	return c
}

// iterationCap resolves the effective bound for this solve.
func (o Options) iterationCap(n int) int {
	if o.maxIter > 0 {
		return o.maxIter
	}

	return IterationCap(n)
}
