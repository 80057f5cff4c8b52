// SPDX-License-Identifier: MIT

// Package config loads the application settings shared by the CLI and the
// HTTP server from a TOML file.
//
// Resolution order: built-in defaults, then the file, then command-line
// flags (applied by the caller). A missing file at the default location is
// not an error; a missing file named explicitly is.
//
// Example config.toml:
//
//	objective      = "min"
//	eps            = 1e-9
//	max_iterations = 0        # 0 derives the bound from n
//	strategy       = "augmenting"
//	language       = "en"
//	precision      = 2
//	history_path   = "/home/me/.local/share/hungarian/history.db"
//	listen_addr    = ":8080"
//	solve_timeout  = "5s"
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"github.com/katalvlaran/hungarian/hungarian"
)

const (
	appName        = "hungarian"
	configFileName = "config.toml"
	historyFile    = "history.db"

	// DefaultListenAddr is where `serve` listens unless configured.
	DefaultListenAddr = ":8080"

	// DefaultSolveTimeout bounds one HTTP solve.
	DefaultSolveTimeout = 5 * time.Second
)

// ErrInvalid reports a setting outside its domain.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds every tunable of the application.
type Config struct {
	Objective     string        `toml:"objective"`
	Epsilon       float64       `toml:"eps"`
	MaxIterations int           `toml:"max_iterations"`
	Strategy      string        `toml:"strategy"`
	Language      string        `toml:"language"`
	Precision     int           `toml:"precision"`
	HistoryPath   string        `toml:"history_path"`
	ListenAddr    string        `toml:"listen_addr"`
	SolveTimeout  time.Duration `toml:"solve_timeout"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Objective:    "min",
		Epsilon:      hungarian.DefaultEps,
		Strategy:     hungarian.DefaultStrategy.String(),
		Language:     "en",
		Precision:    hungarian.DefaultPrecision,
		HistoryPath:  defaultHistoryPath(),
		ListenAddr:   DefaultListenAddr,
		SolveTimeout: DefaultSolveTimeout,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/hungarian/config.toml (or the OS
// equivalent). Empty when no config directory can be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, appName, configFileName)
}

// Load reads path over the defaults. An empty path means DefaultPath(),
// which may be absent.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("config: load %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("%w: unknown key %q in %s", ErrInvalid, undecoded[0].String(), path)
	}

	return cfg, cfg.Validate()
}

// Validate checks every field; the returned error wraps ErrInvalid.
func (c Config) Validate() error {
	if _, err := hungarian.ParseObjective(c.Objective); err != nil {
		return fmt.Errorf("%w: objective %q", ErrInvalid, c.Objective)
	}
	if c.Epsilon < 0 || math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) {
		return fmt.Errorf("%w: eps must be finite and >= 0, got %g", ErrInvalid, c.Epsilon)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("%w: max_iterations must be >= 0, got %d", ErrInvalid, c.MaxIterations)
	}
	if _, err := ParseStrategy(c.Strategy); err != nil {
		return err
	}
	if _, err := language.Parse(c.Language); err != nil {
		return fmt.Errorf("%w: language %q", ErrInvalid, c.Language)
	}
	if c.Precision < 0 || c.Precision > 12 {
		return fmt.Errorf("%w: precision must be in [0, 12], got %d", ErrInvalid, c.Precision)
	}
	if c.SolveTimeout < 0 {
		return fmt.Errorf("%w: solve_timeout must be >= 0, got %s", ErrInvalid, c.SolveTimeout)
	}

	return nil
}

// ParseStrategy maps "augmenting" / "greedy" to a hungarian.MatchStrategy.
func ParseStrategy(s string) (hungarian.MatchStrategy, error) {
	switch s {
	case "", hungarian.MatchAugmenting.String():
		return hungarian.MatchAugmenting, nil
	case hungarian.MatchGreedy.String():
		return hungarian.MatchGreedy, nil
	default:
		return hungarian.MatchAugmenting, fmt.Errorf("%w: strategy %q", ErrInvalid, s)
	}
}

// ObjectiveValue returns the parsed objective.
func (c Config) ObjectiveValue() (hungarian.Objective, error) {
	return hungarian.ParseObjective(c.Objective)
}

// SolveOptions converts the solver settings to hungarian options.
// Call Validate first; invalid values are reported, never panicked on.
func (c Config) SolveOptions() ([]hungarian.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	strategy, _ := ParseStrategy(c.Strategy)
	tag, _ := language.Parse(c.Language)

	return []hungarian.Option{
		hungarian.WithEpsilon(c.Epsilon),
		hungarian.WithMaxIterations(c.MaxIterations),
		hungarian.WithStrategy(strategy),
		hungarian.WithLanguage(tag),
		hungarian.WithPrecision(c.Precision),
	}, nil
}

// defaultHistoryPath is <user config dir>/hungarian/history.db.
func defaultHistoryPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return historyFile
	}

	return filepath.Join(dir, appName, historyFile)
}
