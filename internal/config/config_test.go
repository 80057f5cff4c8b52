// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hungarian/hungarian"
	"github.com/katalvlaran/hungarian/internal/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, "min", cfg.Objective)
	require.Equal(t, hungarian.DefaultEps, cfg.Epsilon)
	require.Equal(t, config.DefaultSolveTimeout, cfg.SolveTimeout)

	opts, err := cfg.SolveOptions()
	require.NoError(t, err)
	require.Len(t, opts, 5)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
objective      = "max"
eps            = 1e-6
max_iterations = 40
strategy       = "greedy"
language       = "es"
precision      = 3
listen_addr    = "127.0.0.1:9999"
solve_timeout  = "250ms"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "max", cfg.Objective)
	require.Equal(t, 1e-6, cfg.Epsilon)
	require.Equal(t, 40, cfg.MaxIterations)
	require.Equal(t, "greedy", cfg.Strategy)
	require.Equal(t, "es", cfg.Language)
	require.Equal(t, 3, cfg.Precision)
	require.Equal(t, "127.0.0.1:9999", cfg.ListenAddr)
	require.Equal(t, 250*time.Millisecond, cfg.SolveTimeout)

	obj, err := cfg.ObjectiveValue()
	require.NoError(t, err)
	require.Equal(t, hungarian.Maximize, obj)

	// Unset keys keep their defaults.
	require.Equal(t, config.Default().HistoryPath, cfg.HistoryPath)
}

func TestLoad_OptionsReachTheSolver(t *testing.T) {
	cfg, err := config.Load(writeFile(t, `language = "es"`))
	require.NoError(t, err)
	opts, err := cfg.SolveOptions()
	require.NoError(t, err)

	sol, err := hungarian.SolveRows([][]float64{{1, 2}, {2, 1}}, hungarian.Minimize, opts...)
	require.NoError(t, err)
	require.Equal(t, "Matriz Original", sol.Trace[0].Description)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	_, err = config.Load(writeFile(t, `objective = [`))
	require.Error(t, err)

	cases := map[string]string{
		"objective": `objective = "median"`,
		"eps":       `eps = -1.0`,
		"iter":      `max_iterations = -3`,
		"strategy":  `strategy = "random"`,
		"language":  `language = "???"`,
		"precision": `precision = 20`,
		"timeout":   `solve_timeout = "-1s"`,
		"unknown":   `colour = "blue"`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, body))
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestParseStrategy(t *testing.T) {
	s, err := config.ParseStrategy("")
	require.NoError(t, err)
	require.Equal(t, hungarian.MatchAugmenting, s)

	s, err = config.ParseStrategy("greedy")
	require.NoError(t, err)
	require.Equal(t, hungarian.MatchGreedy, s)

	_, err = config.ParseStrategy("kuhn")
	require.ErrorIs(t, err, config.ErrInvalid)
}
