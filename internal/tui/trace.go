// SPDX-License-Identifier: MIT

// Package tui pages through a solve's trace in the terminal.
package tui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/hungarian/hungarian"
	"github.com/katalvlaran/hungarian/internal/render"
)

var (
	helpStyle    = render.StyleDim
	counterStyle = lipgloss.NewStyle().Bold(true)
	activeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
)

// TraceModel is the bubbletea model for the trace viewer. Step indexes
// Solution.Trace; the step list view shows Solution.Steps instead.
type TraceModel struct {
	Solution  *hungarian.Solution
	Precision int
	Step      int
	ShowSteps bool
}

// NewTraceModel starts on the first snapshot.
func NewTraceModel(sol *hungarian.Solution, precision int) TraceModel {
	return TraceModel{Solution: sol, Precision: precision}
}

func (m TraceModel) Init() tea.Cmd {
	return nil
}

func (m TraceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	last := len(m.Solution.Trace) - 1

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "n", " ":
			if m.Step < last {
				m.Step++
			}
		case "left", "h", "p":
			if m.Step > 0 {
				m.Step--
			}
		case "home", "g":
			m.Step = 0
		case "end", "G":
			if last >= 0 {
				m.Step = last
			}
		case "s", "tab":
			m.ShowSteps = !m.ShowSteps
		}
	}

	return m, nil
}

func (m TraceModel) View() string {
	var b strings.Builder

	total := len(m.Solution.Trace)
	b.WriteString(render.StyleTitle.Render("Hungarian method"))
	b.WriteString("  ")
	if total > 0 {
		b.WriteString(counterStyle.Render(fmt.Sprintf("%d/%d", m.Step+1, total)))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("←/→ step  g/G first/last  s steps  q quit"))
	b.WriteString("\n\n")

	switch {
	case m.ShowSteps:
		b.WriteString(m.stepList())
	case total == 0:
		b.WriteString(helpStyle.Render("No trace recorded."))
		b.WriteString("\n")
	default:
		b.WriteString(render.TraceStep(m.Solution.Trace[m.Step], m.Precision))
	}

	b.WriteString("\n")
	b.WriteString(render.AssignmentTable(m.Solution, m.Precision))
	b.WriteString("\n")

	return b.String()
}

// stepList numbers every step and marks the ones belonging to the current
// snapshot's phase.
func (m TraceModel) stepList() string {
	var (
		b      strings.Builder
		prefix string
	)
	if len(m.Solution.Trace) > 0 {
		prefix = phasePrefix(m.Solution.Trace[m.Step].Description)
	}
	for i, s := range m.Solution.Steps {
		line := fmt.Sprintf("%2d. %s", i+1, s)
		if prefix != "" && strings.HasPrefix(s, prefix) {
			line = activeStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// phasePrefix is the "Step 4.2" part of a description, or "".
func phasePrefix(desc string) string {
	if i := strings.Index(desc, ":"); i > 0 {
		return desc[:i]
	}

	return ""
}

// Run shows sol interactively until the user quits.
func Run(sol *hungarian.Solution, precision int, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(NewTraceModel(sol, precision), tea.WithInput(in), tea.WithOutput(out))
	_, err := p.Run()

	return err
}
