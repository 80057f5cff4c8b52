// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/katalvlaran/hungarian/hungarian"
	"github.com/katalvlaran/hungarian/internal/input"
	"github.com/katalvlaran/hungarian/internal/render"
	"github.com/katalvlaran/hungarian/internal/tui"
	"github.com/katalvlaran/hungarian/presets"
)

// Output formats of solve and history show.
const (
	formatText  = "text"
	formatPlain = "plain"
	formatJSON  = "json"
)

// Errors reported before the solver runs.
var (
	ErrNoMatrix      = errors.New("no matrix given: pass FILE, --matrix or --preset")
	ErrManySources   = errors.New("give only one of FILE, --matrix or --preset")
	ErrUnknownFormat = errors.New("unknown output format (want text, plain or json)")
	ErrBadResult     = errors.New("solver returned an invalid assignment")
)

type solveOptions struct {
	matrix      string
	preset      int
	objective   string
	format      string
	inputFormat string
	lang        string
	precision   int
	summary     bool
	interactive bool
	save        bool
}

func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOptions

	cmd := &cobra.Command{
		Use:   "solve [FILE|-]",
		Short: "Solve an assignment problem and explain the steps",
		Long: `Solve reads an n×n matrix (2 ≤ n ≤ 10) and prints the optimal assignment of
resources (rows) to tasks (columns) together with every step of the
Hungarian method.

The matrix comes from exactly one of:
  FILE        JSON, YAML, TOML or CSV ("-" reads standard input)
  --matrix    inline rows, e.g. "82,83,69;77,37,49;11,69,5"
  --preset    a built-in example of size N (3, 4 or 5)`,
		Example: `  hungarian solve --preset 3
  hungarian solve costs.yaml --objective max --format plain
  echo '[[1,2],[3,4]]' | hungarian solve - --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.matrix, "matrix", "m", "", "inline matrix, rows separated by ';'")
	cmd.Flags().IntVarP(&opts.preset, "preset", "p", presets.DefaultSize, "use the built-in example of this size")
	cmd.Flags().StringVarP(&opts.objective, "objective", "o", "", "min or max (default from file or config)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "output: text, plain or json")
	cmd.Flags().StringVar(&opts.inputFormat, "input-format", "auto", "input: auto, json, yaml, toml or csv")
	cmd.Flags().StringVar(&opts.lang, "lang", "", "language of the explanation, e.g. en or es")
	cmd.Flags().IntVar(&opts.precision, "precision", hungarian.DefaultPrecision, "decimals shown")
	cmd.Flags().BoolVar(&opts.summary, "summary", false, "print only the result, without steps")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "page through the steps in the terminal")
	cmd.Flags().BoolVar(&opts.save, "save", false, "store the solve in the history")

	return cmd
}

func (c *CLI) runSolve(cmd *cobra.Command, args []string, opts solveOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	errOut := cmd.ErrOrStderr()

	switch opts.format {
	case formatText, formatPlain, formatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.format)
	}

	doc, err := c.readMatrix(cmd, args, opts)
	if err != nil {
		return err
	}

	objective := c.cfg.Objective
	switch {
	case cmd.Flags().Changed("objective"):
		objective = opts.objective
	case doc.Objective != "":
		objective = doc.Objective
	}
	obj, err := hungarian.ParseObjective(objective)
	if err != nil {
		return err
	}

	warnings, err := input.Validate(doc.Matrix)
	if err != nil {
		return err
	}

	solveOpts, err := c.solveOptions(cmd, opts)
	if err != nil {
		return err
	}
	precision := c.precision(cmd, opts)

	p := newProgress(logger)
	sol, err := hungarian.SolveRows(doc.Matrix, obj, solveOpts...)
	if err != nil {
		return err
	}
	p.done("solved", "n", len(doc.Matrix), "iterations", sol.Iterations, "adjustments", sol.Adjustments)

	// The result must pair every resource.
	if err := hungarian.Check(sol.Pairs(), len(doc.Matrix)); err != nil {
		return fmt.Errorf("%w: %w", ErrBadResult, err)
	}

	report := render.Report{Warnings: warnings, Solution: sol}
	if opts.save {
		st, err := c.openStore()
		if err != nil {
			return err
		}
		defer st.Close()
		entry, err := st.Save(ctx, doc.Matrix, sol)
		if err != nil {
			return err
		}
		report.ID = entry.ID
		logger.Debug("solve stored", "id", entry.ID)
	}

	if opts.format != formatJSON {
		for _, w := range warnings {
			printWarning(errOut, "%s", w)
		}
	}

	out := cmd.OutOrStdout()
	ro := render.Options{Precision: precision, Trace: !opts.summary}
	switch {
	case opts.interactive:
		err = tui.Run(sol, precision, cmd.InOrStdin(), out)
	case opts.format == formatJSON:
		err = render.JSON(out, report)
	case opts.format == formatPlain:
		err = render.Plain(out, sol, ro)
	default:
		err = render.Styled(out, sol, ro)
	}
	if err != nil {
		return err
	}

	if report.ID != "" && opts.format != formatJSON {
		printInfo(errOut, "saved as %s", report.ID)
	}

	return nil
}

// readMatrix loads the matrix from the single source the user named.
func (c *CLI) readMatrix(cmd *cobra.Command, args []string, opts solveOptions) (input.Document, error) {
	fromPreset := cmd.Flags().Changed("preset")
	sources := 0
	for _, given := range []bool{len(args) > 0, opts.matrix != "", fromPreset} {
		if given {
			sources++
		}
	}
	switch {
	case sources == 0:
		return input.Document{}, ErrNoMatrix
	case sources > 1:
		return input.Document{}, ErrManySources
	}

	switch {
	case opts.matrix != "":
		rows, err := input.ParseInline(opts.matrix)
		return input.Document{Matrix: rows}, err

	case fromPreset:
		p := presets.For(opts.preset)
		if p.Size != opts.preset {
			printWarning(cmd.ErrOrStderr(), "no preset of size %d, using the %dx%d example", opts.preset, p.Size, p.Size)
		}
		loggerFromContext(cmd.Context()).Debug("preset", "size", p.Size, "description", p.Description)
		return input.Document{Matrix: p.Rows}, nil
	}

	format, err := input.ParseFormat(opts.inputFormat)
	if err != nil {
		return input.Document{}, err
	}
	path := args[0]
	if path == "-" {
		return input.Parse(cmd.InOrStdin(), format)
	}
	if format == input.FormatAuto {
		return input.ReadFile(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return input.Document{}, err
	}
	defer f.Close()
	doc, err := input.Parse(f, format)
	if err != nil {
		return input.Document{}, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// solveOptions turns config plus flag overrides into solver options.
func (c *CLI) solveOptions(cmd *cobra.Command, opts solveOptions) ([]hungarian.Option, error) {
	cfg := c.cfg
	if cmd.Flags().Changed("lang") {
		if _, err := language.Parse(opts.lang); err != nil {
			return nil, fmt.Errorf("--lang %q: %w", opts.lang, err)
		}
		cfg.Language = opts.lang
	}
	cfg.Precision = c.precision(cmd, opts)

	out, err := cfg.SolveOptions()
	if err != nil {
		return nil, err
	}

	return append(out, hungarian.WithLogger(loggerFromContext(cmd.Context()))), nil
}

// precision is --precision when given, the configured value otherwise.
func (c *CLI) precision(cmd *cobra.Command, opts solveOptions) int {
	if cmd.Flags().Changed("precision") {
		return opts.precision
	}

	return c.cfg.Precision
}
