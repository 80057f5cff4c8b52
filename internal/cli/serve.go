// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hungarian/internal/server"
	"github.com/katalvlaran/hungarian/internal/store"
)

func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		noHistory bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP",
		Long: `Serve exposes POST /v1/solve, GET /v1/presets/{n}, the stored solves under
/v1/solves and GET /healthz. It stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = c.cfg.ListenAddr
			}

			var st *store.Store
			if !noHistory {
				var err error
				if st, err = c.openStore(); err != nil {
					return err
				}
				defer st.Close()
			}

			logger := loggerFromContext(cmd.Context())
			logger.Debug("serving", "addr", addr, "history", !noHistory, "solve_timeout", c.cfg.SolveTimeout)

			return server.New(c.cfg, st, logger).ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, "+`":8080"`+")")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "do not open the history database")

	return cmd
}
