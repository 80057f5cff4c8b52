// SPDX-License-Identifier: MIT

package render

import (
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/hungarian/hungarian"
)

// Styled writes sol for a terminal: summary, assignment table, the original
// matrix with assigned cells marked and, with o.Trace, every step.
func Styled(w io.Writer, sol *hungarian.Solution, o Options) error {
	var b strings.Builder

	if sol.Fallback {
		b.WriteString(StyleWarning.Render(iconWarning+" Assignment completed greedily; it may not be optimal") + "\n")
	} else {
		b.WriteString(StyleSuccess.Render(iconSuccess) + " " + StyleTitle.Render("Optimal assignment found") + "\n")
	}
	b.WriteString(totalLabel(sol.Objective) + ": " + StyleNumber.Render(formatNumber(sol.TotalCost, o.Precision)) + "\n\n")

	b.WriteString(AssignmentTable(sol, o.Precision) + "\n")

	if len(sol.Trace) > 0 {
		b.WriteString("\n" + StyleTitle.Render("Final table") + "\n")
		b.WriteString(MatrixTable(sol.Trace[0].Matrix, nil, sol.Pairs(), o.Precision) + "\n")
	}

	if o.Trace {
		b.WriteString("\n" + StyleTitle.Render("Steps") + "\n")
		for _, s := range sol.Steps {
			b.WriteString(StyleDim.Render(iconArrow) + " " + s + "\n")
		}
		for _, st := range sol.Trace {
			b.WriteString("\n" + TraceStep(st, o.Precision))
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// TraceStep renders one snapshot: description, matrix, details.
func TraceStep(st hungarian.TraceStep, precision int) string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(st.Description) + "\n")
	b.WriteString(MatrixTable(st.Matrix, st.Highlighted, nil, precision) + "\n")
	for _, d := range trimTrailingEmpty(st.Details) {
		b.WriteString("  " + StyleDim.Render(d) + "\n")
	}

	return b.String()
}

// AssignmentTable lists the pairs ordered by task, as a results table reads.
func AssignmentTable(sol *hungarian.Solution, precision int) string {
	records := append([]hungarian.Record(nil), sol.Assignments...)
	sort.SliceStable(records, func(a, b int) bool { return records[a].Task < records[b].Task })

	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{taskLabel(r.Task), rowLabel(r.Resource), formatNumber(r.Cost, precision)}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("Task", "Resource", "Cost").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if col == 2 {
				return styleCell
			}
			return styleCell.Align(lipgloss.Left)
		}).
		Render()
}

// MatrixTable draws m with R/T headers. highlighted cells use the accent
// color, assigned cells the success color (assigned wins).
func MatrixTable(m [][]float64, highlighted, assigned []hungarian.Cell, precision int) string {
	hl := cellSet(highlighted)
	as := cellSet(assigned)

	headers := []string{""}
	if len(m) > 0 {
		for j := range m[0] {
			headers = append(headers, taskLabel(j))
		}
	}
	rows := make([][]string, len(m))
	for i, r := range m {
		rows[i] = make([]string, 0, len(r)+1)
		rows[i] = append(rows[i], rowLabel(i))
		for _, v := range r {
			rows[i] = append(rows[i], formatNumber(v, precision))
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || col == 0 {
				return styleHeader
			}
			c := hungarian.Cell{Row: row, Col: col - 1}
			switch {
			case as[c]:
				return styleAssigned
			case hl[c]:
				return styleHighlighted
			default:
				return styleCell
			}
		}).
		Render()
}
