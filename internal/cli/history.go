// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hungarian/internal/render"
	"github.com/katalvlaran/hungarian/internal/store"
)

func (c *CLI) historyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List and show stored solves",
		Long:  `Solves run with --save (or posted with "save": true to the API) are kept in a local SQLite database.`,
	}

	cmd.AddCommand(c.historyListCommand())
	cmd.AddCommand(c.historyShowCommand())

	return cmd
}

func (c *CLI) historyListCommand() *cobra.Command {
	var (
		limit  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent solves, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := c.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			entries, err := st.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}
			if len(entries) == 0 {
				printInfo(out, "no stored solves in %s", c.cfg.HistoryPath)
				return nil
			}
			fmt.Fprintln(out, historyTable(entries, c.cfg.Precision))

			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", store.DefaultListLimit, "maximum number of entries")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return cmd
}

func (c *CLI) historyShowCommand() *cobra.Command {
	var (
		format  string
		summary bool
	)

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show a stored solve with its steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			entry, err := st.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			ro := render.Options{Precision: c.cfg.Precision, Trace: !summary}
			switch format {
			case formatJSON:
				return render.JSON(out, render.Report{ID: entry.ID, Solution: entry.Solution})
			case formatPlain:
				return render.Plain(out, entry.Solution, ro)
			case formatText:
				printDetail(out, "%s  %s", entry.ID, entry.CreatedAt.Local().Format(time.DateTime))
				return render.Styled(out, entry.Solution, ro)
			default:
				return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output: text, plain or json")
	cmd.Flags().BoolVar(&summary, "summary", false, "print only the result, without steps")

	return cmd
}

// historyTable renders entries as a table.
func historyTable(entries []store.Entry, precision int) string {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		flag := ""
		if e.Fallback {
			flag = iconWarning
		}
		rows[i] = []string{
			e.ID,
			e.CreatedAt.Local().Format(time.DateTime),
			e.Objective.String(),
			fmt.Sprintf("%dx%d", e.Size, e.Size),
			render.StyleNumber.Render(fmt.Sprintf("%.*f", precision, e.TotalCost)),
			flag,
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(render.StyleDim).
		Headers("ID", "Created", "Objective", "Size", "Total", "").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Render()
}
