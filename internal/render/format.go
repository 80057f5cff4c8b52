// SPDX-License-Identifier: MIT

// Package render turns a hungarian.Solution into something people read:
// plain text (stable, golden-tested), styled terminal output (lipgloss) and
// JSON for machines.
package render

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/hungarian/hungarian"
	"github.com/katalvlaran/hungarian/internal/input"
)

// Options tunes the human-readable renderers.
type Options struct {
	// Precision is the number of decimals shown (display only).
	Precision int
	// Trace adds the step list and every matrix snapshot.
	Trace bool
}

// DefaultOptions shows the full trace at the solver's default precision.
func DefaultOptions() Options {
	return Options{Precision: hungarian.DefaultPrecision, Trace: true}
}

// Report is the machine-readable envelope shared by the CLI and the API.
type Report struct {
	ID       string          `json:"id,omitempty"`
	Warnings []input.Warning `json:"warnings,omitempty"`
	*hungarian.Solution
}

// formatNumber rounds v to precision decimals and trims trailing zeros.
func formatNumber(v float64, precision int) string {
	scale := math.Pow(10, float64(precision))
	if scaled := v * scale; !math.IsInf(scaled, 0) {
		v = math.Round(scaled) / scale
	}
	if v == 0 {
		v = 0
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

// totalLabel names the objective's total.
func totalLabel(obj hungarian.Objective) string {
	if obj == hungarian.Maximize {
		return "Total benefit"
	}

	return "Total cost"
}

func rowLabel(i int) string  { return "R" + strconv.Itoa(i+1) }
func taskLabel(j int) string { return "T" + strconv.Itoa(j+1) }

// cellSet indexes highlighted cells.
func cellSet(cells []hungarian.Cell) map[hungarian.Cell]bool {
	set := make(map[hungarian.Cell]bool, len(cells))
	for _, c := range cells {
		set[c] = true
	}

	return set
}

// trimTrailingEmpty drops empty separator lines at the end of details.
func trimTrailingEmpty(lines []string) []string {
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// errWriter remembers the first write error so callers can print freely.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
