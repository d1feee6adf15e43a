package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridbench/config"
	"github.com/katalvlaran/gridbench/gridgraph"
	"github.com/katalvlaran/gridbench/search"
	"github.com/katalvlaran/gridbench/trial"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	tc := cfg.Trial()
	assert.Equal(t, gridgraph.Coord{}, tc.Start)
	assert.Equal(t, gridgraph.Coord{Row: 19, Col: 19}, tc.Goal)
	assert.Equal(t, search.BreadthFirst, tc.Selected)
	assert.Equal(t, log.InfoLevel, cfg.LogLevel())
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "bench.yaml", `
grid:
  rows: 12
  cols: 15
  start: {row: 1, col: 2}
  goal: {row: 10, col: 3}
  wall_probability: 0.45
  max_attempts: 4
run:
  trials: 25
  seed: 99
  algorithm: ids
log:
  level: debug
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Grid.Rows)
	assert.Equal(t, 15, cfg.Grid.Cols)
	assert.InDelta(t, 0.45, cfg.Grid.WallProbability, 1e-12)
	assert.Equal(t, 25, cfg.Run.Trials)
	assert.Equal(t, int64(99), cfg.Run.Seed)
	assert.Equal(t, search.IterativeDeepening, cfg.Run.Algorithm)
	assert.Equal(t, log.DebugLevel, cfg.LogLevel())

	assert.Equal(t, trial.Config{
		Rows:        12,
		Cols:        15,
		Start:       gridgraph.Coord{Row: 1, Col: 2},
		Goal:        gridgraph.Coord{Row: 10, Col: 3},
		MaxAttempts: 4,
		Selected:    search.IterativeDeepening,
	}, cfg.Trial())
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "bench.toml", `
[grid]
rows = 6
cols = 9
wall_probability = 0.1

[run]
algorithm = "depth-first"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Grid.Rows)
	assert.Equal(t, 9, cfg.Grid.Cols)
	assert.Equal(t, search.DepthFirst, cfg.Run.Algorithm)
	// Unset keys keep defaults; the goal follows the grid shape.
	assert.Equal(t, 10, cfg.Run.Trials)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, gridgraph.Coord{Row: 5, Col: 8}, cfg.Grid.GoalCoord())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
		want error
	}{
		{"extension", "bench.json", `{}`, config.ErrUnsupportedFormat},
		{"probability", "p.yaml", "grid:\n  wall_probability: 1.5\n", gridgraph.ErrInvalidProbability},
		{"probability wrapped", "p.toml", "[grid]\nwall_probability = -0.2\n", config.ErrInvalid},
		{"shape", "s.yaml", "grid:\n  rows: 0\n", trial.ErrInvalidConfig},
		{"goal outside", "g.yaml", "grid:\n  rows: 4\n  cols: 4\n  goal: {row: 4, col: 0}\n", config.ErrInvalid},
		{"trials", "t.toml", "[run]\ntrials = 0\n", config.ErrInvalid},
		{"algorithm", "a.yaml", "run:\n  algorithm: astar\n", search.ErrUnknownAlgorithm},
		{"level", "l.yaml", "log:\n  level: loud\n", config.ErrInvalid},
		{"unknown toml key", "u.toml", "[grid]\ncolumns = 3\n", config.ErrUnknownKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, tt.file, tt.body))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Parse([]byte("grid:\n  colums: 3\n"), config.YAML)
	assert.Error(t, err, "unknown yaml keys are rejected")
}

func TestParse_EmptyYAMLIsDefault(t *testing.T) {
	cfg, err := config.Parse(nil, config.YAML)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestEncode(t *testing.T) {
	cfg := config.Default()
	cfg.Run.Algorithm = search.IterativeDeepening
	cfg.Grid.Goal = &config.Point{Row: 3, Col: 4}

	for _, f := range []config.Format{config.YAML, config.TOML} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, cfg.Encode(&buf, f))
			assert.Contains(t, buf.String(), "IDS")

			back, err := config.Parse(buf.Bytes(), f)
			require.NoError(t, err)
			assert.Equal(t, cfg, back)
		})
	}

	var buf bytes.Buffer
	assert.ErrorIs(t, cfg.Encode(&buf, config.Format("ini")), config.ErrUnsupportedFormat)
}

func TestFormatOf(t *testing.T) {
	f, err := config.FormatOf("a/b/C.YML")
	require.NoError(t, err)
	assert.Equal(t, config.YAML, f)

	f, err = config.FormatOf("x.toml")
	require.NoError(t, err)
	assert.Equal(t, config.TOML, f)

	_, err = config.FormatOf("x")
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)
}
