// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// configCommand prints the effective configuration as TOML, ready to be
// saved as a config file.
func (c *CLI) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(c.cfg)
		},
	}
}
