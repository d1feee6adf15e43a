// Package gridbench compares uninformed search strategies on random obstacle
// grids: breadth-first, depth-first and iterative-deepening search, each
// measured on the same grid, trial after trial.
//
// What is in the module?
//
//	gridgraph/     Grid, Cell and Coord types, the connectivity-guaranteeing
//	               random generator, components and ASCII rendering
//	search/        BFS, DFS and IDS with one instrumentation contract
//	               (nodes expanded, max frontier, path, IDS iterations)
//	metrics/       append-only per-algorithm history with averages and JSON export
//	trial/         the orchestrator: generate, search ×3, record, select
//	config/        YAML / TOML session configuration
//	cmd/gridbench  CLI with run, show, explore and config commands
//
// Quick ASCII example of a 4×6 trial, BFS path overlaid:
//
//	S*##..
//	#*****
//	##.#.*
//	...#.G
//
// Run it:
//
//	go run ./cmd/gridbench run -n 20 -p 0.35
//	go run ./cmd/gridbench explore
package gridbench
