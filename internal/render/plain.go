// SPDX-License-Identifier: MIT

package render

import (
	"io"

	"github.com/katalvlaran/hungarian/hungarian"
)

// Plain writes sol as ANSI-free text. Highlighted cells are bracketed.
func Plain(w io.Writer, sol *hungarian.Solution, o Options) error {
	ew := &errWriter{w: w}

	ew.printf("Objective: %s\n", sol.Objective)
	ew.printf("%s: %s\n", totalLabel(sol.Objective), formatNumber(sol.TotalCost, o.Precision))
	if sol.Fallback {
		ew.printf("Warning: greedy completion used, the result may not be optimal\n")
	}

	ew.printf("\nAssignments:\n")
	for _, r := range sol.Assignments {
		ew.printf("  %s -> %s  %s\n", rowLabel(r.Resource), taskLabel(r.Task), formatNumber(r.Cost, o.Precision))
	}

	if !o.Trace {
		return ew.err
	}

	ew.printf("\nSteps:\n")
	for i, s := range sol.Steps {
		ew.printf("  %d. %s\n", i+1, s)
	}

	for k, st := range sol.Trace {
		ew.printf("\n[%d] %s\n", k+1, st.Description)
		writeGrid(ew, st.Matrix, st.Highlighted, o.Precision)
		for _, d := range trimTrailingEmpty(st.Details) {
			if d == "" {
				ew.printf("\n")
				continue
			}
			ew.printf("    %s\n", d)
		}
	}

	return ew.err
}

// writeGrid prints m with R/T headers, right-aligned in equal-width columns.
func writeGrid(ew *errWriter, m [][]float64, highlighted []hungarian.Cell, precision int) {
	if len(m) == 0 {
		return
	}
	marked := cellSet(highlighted)
	cols := len(m[0])

	cells := make([][]string, len(m))
	width := len(taskLabel(cols - 1))
	for i, row := range m {
		cells[i] = make([]string, len(row))
		for j, v := range row {
			s := formatNumber(v, precision)
			if marked[hungarian.Cell{Row: i, Col: j}] {
				s = "[" + s + "]"
			}
			cells[i][j] = s
			if len(s) > width {
				width = len(s)
			}
		}
	}
	labelWidth := len(rowLabel(len(m) - 1))

	ew.printf("  %*s", labelWidth, "")
	for j := 0; j < cols; j++ {
		ew.printf("  %*s", width, taskLabel(j))
	}
	ew.printf("\n")
	for i, row := range cells {
		ew.printf("  %*s", labelWidth, rowLabel(i))
		for _, s := range row {
			ew.printf("  %*s", width, s)
		}
		ew.printf("\n")
	}
}
