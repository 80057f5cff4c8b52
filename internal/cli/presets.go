// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hungarian/internal/render"
	"github.com/katalvlaran/hungarian/presets"
)

func (c *CLI) presetsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "presets [N]",
		Short: "Show the built-in example matrices",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list := presets.All()
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("preset size %q: %w", args[0], err)
				}
				list = []presets.Preset{presets.For(n)}
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(list)
			}

			for i, p := range list {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "%s  %s\n", render.StyleTitle.Render(fmt.Sprintf("%dx%d", p.Size, p.Size)), p.Description)
				fmt.Fprintln(out, render.MatrixTable(p.Rows, nil, nil, c.cfg.Precision))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return cmd
}
