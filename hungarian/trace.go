// SPDX-License-Identifier: MIT

// Package hungarian: trace assembly.
//
// The recorder is owned by exactly one solve. It only appends: Steps and
// Trace entries are never rewritten, and snapshots deep-copy the working
// matrix so later mutations cannot leak into earlier entries.
//
// A nil *recorder is valid and records nothing; the exported phase functions
// (Normalize, Adjust, ...) run with a nil recorder.
package hungarian

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/message"

	"github.com/katalvlaran/hungarian/matrix"
)

const (
	_vecOpen  = "["
	_vecClose = "]"
	_vecSep   = ", "
)

// recorder accumulates Steps and Trace for one solve.
type recorder struct {
	p         *message.Printer
	precision int
	steps     []string
	trace     []TraceStep
}

// newRecorder builds a recorder for the configured language and precision.
func newRecorder(o Options) *recorder {
	return &recorder{
		p:         message.NewPrinter(o.lang),
		precision: o.precision,
	}
}

// on reports whether text should be produced at all.
func (r *recorder) on() bool { return r != nil }

// text formats a catalog key in the recorder's language.
// A nil recorder yields "" so call sites can build arguments unconditionally.
func (r *recorder) text(key string, args ...any) string {
	if r == nil {
		return ""
	}

	return r.p.Sprintf(key, args...)
}

// step appends one natural-language milestone.
func (r *recorder) step(key string, args ...any) {
	if r == nil {
		return
	}
	r.steps = append(r.steps, r.text(key, args...))
}

// snapshot appends a trace entry with a deep copy of w.
func (r *recorder) snapshot(w *matrix.Dense, desc string, cells []Cell, details []string) {
	if r == nil {
		return
	}
	var hl []Cell
	if len(cells) > 0 {
		hl = append([]Cell(nil), cells...) // callers may reuse their slices
	}
	r.trace = append(r.trace, TraceStep{
		Matrix:      w.ToRows(),
		Description: desc,
		Highlighted: hl,
		Details:     details,
	})
}

// num renders v rounded to the display precision, trailing zeros trimmed.
// Rounding is display-only; the working matrix is never rounded.
func (r *recorder) num(v float64) string {
	if r == nil {
		return ""
	}
	scale := math.Pow(10, float64(r.precision))
	if scaled := v * scale; !math.IsInf(scaled, 0) {
		v = math.Round(scaled) / scale
	}
	if v == 0 {
		v = 0 // fold -0
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

// operand renders v for use on the right of a minus sign: negatives get
// parentheses so "x - (-3)" reads unambiguously.
func (r *recorder) operand(v float64) string {
	s := r.num(v)
	if strings.HasPrefix(s, "-") {
		return "(" + s + ")"
	}

	return s
}

// vec renders "[a, b, c]".
func (r *recorder) vec(vs []float64) string {
	var b strings.Builder
	b.WriteString(_vecOpen)
	for i, v := range vs {
		if i > 0 {
			b.WriteString(_vecSep)
		}
		b.WriteString(r.num(v))
	}
	b.WriteString(_vecClose)

	return b.String()
}

// indices renders 1-based positions of the true entries, e.g. "[1, 3]".
func indices(flags []bool) string {
	var b strings.Builder
	b.WriteString(_vecOpen)
	first := true
	for i, f := range flags {
		if !f {
			continue
		}
		if !first {
			b.WriteString(_vecSep)
		}
		b.WriteString(strconv.Itoa(i + 1))
		first = false
	}
	b.WriteString(_vecClose)

	return b.String()
}
