// Package config loads gridbench session settings from YAML or TOML.
//
// A file has three sections:
//
//	grid:
//	  rows: 20
//	  cols: 20
//	  start: {row: 0, col: 0}
//	  goal: {row: 19, col: 19}   # omitted: bottom-right corner
//	  wall_probability: 0.3
//	  max_walk_steps: 0          # 0: generator default (8·rows·cols)
//	  max_attempts: 0            # 0: generator default
//	run:
//	  trials: 10
//	  seed: 0                    # 0: seeded from the clock
//	  algorithm: bfs             # bfs | dfs | ids, display selection
//	log:
//	  level: info
//
// Missing keys keep the values of Default. Unknown keys are an error.
package config
