// SPDX-License-Identifier: MIT

// Package cli implements the hungarian command-line interface.
//
// # Commands
//
//   - solve: solve a matrix from a file, stdin, an inline string or a preset
//   - presets: show the built-in example matrices
//   - history: list and show stored solves
//   - serve: run the HTTP API
//   - config: print the effective configuration
//   - version: print build information
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// surfaces the solver's phase transitions. Loggers travel in the command
// context.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hungarian/internal/buildinfo"
	"github.com/katalvlaran/hungarian/internal/config"
	"github.com/katalvlaran/hungarian/internal/store"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        config.Config
}

// New creates a CLI whose logger writes to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root command with every subcommand registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "hungarian",
		Short: "Solve assignment problems with the Hungarian method",
		Long: `hungarian assigns n resources to n tasks at minimum total cost (or maximum
total benefit) and explains every step of the Hungarian method on the way.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.loadConfig,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default "+config.DefaultPath()+")")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.presetsCommand())
	root.AddCommand(c.historyCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.versionCommand())

	return root
}

// loadConfig reads the config file and attaches the logger to the context.
func (c *CLI) loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	c.Logger.Debug("config loaded", "path", c.configPath, "history", cfg.HistoryPath)

	return nil
}

// openStore opens the history database, creating its directory on demand.
func (c *CLI) openStore() (*store.Store, error) {
	path := c.cfg.HistoryPath
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("history directory: %w", err)
		}
	}

	return store.Open(path)
}

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
			return err
		},
	}
}
