// Package hungarian is the root of the hungarian module: a balanced
// assignment solver (Hungarian method) that explains every step it takes.
//
// What is inside?
//
//	hungarian/      the solver: reduction, zero assignment, König cover,
//	                matrix adjustment, verification and greedy completion,
//	                with a localized step-by-step trace (English, Spanish)
//	matrix/         dense row-major float64 storage, validators, row and
//	                column extrema
//	presets/        ready-made example instances (3×3, 4×4, 5×5)
//	cmd/hungarian/  CLI: solve, presets, history, serve, config, version
//
// Internal packages back the CLI: input parsing (JSON, YAML, TOML, CSV,
// inline rows), TOML configuration, plain/styled/JSON rendering, a SQLite
// solve history, a chi HTTP API and a bubbletea trace viewer.
//
// Quick example:
//
//	sol, err := hungarian.SolveRows([][]float64{
//		{82, 83, 69},
//		{77, 37, 49},
//		{11, 69, 5},
//	}, hungarian.Minimize)
//	// sol.TotalCost == 117; sol.Steps and sol.Trace explain why.
//
//	go install github.com/katalvlaran/hungarian/cmd/hungarian@latest
package hungarian
