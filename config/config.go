package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridbench/gridgraph"
	"github.com/katalvlaran/gridbench/search"
	"github.com/katalvlaran/gridbench/trial"
)

var (
	// ErrUnsupportedFormat is returned for file extensions other than .yaml, .yml and .toml.
	ErrUnsupportedFormat = errors.New("config: unsupported format")
	// ErrUnknownKey is returned when a TOML file sets keys Config does not define.
	ErrUnknownKey = errors.New("config: unknown key")
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("config: invalid")
)

// Format selects the file syntax.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

// FormatOf infers the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Config is the full session configuration.
type Config struct {
	Grid Grid `yaml:"grid" toml:"grid"`
	Run  Run  `yaml:"run" toml:"run"`
	Log  Log  `yaml:"log" toml:"log"`
}

// Point is a grid coordinate in file form.
type Point struct {
	Row int `yaml:"row" toml:"row"`
	Col int `yaml:"col" toml:"col"`
}

// Coord converts p to a gridgraph.Coord.
func (p Point) Coord() gridgraph.Coord {
	return gridgraph.Coord{Row: p.Row, Col: p.Col}
}

// Grid configures the generated maps.
type Grid struct {
	Rows            int     `yaml:"rows" toml:"rows"`
	Cols            int     `yaml:"cols" toml:"cols"`
	Start           Point   `yaml:"start" toml:"start"`
	Goal            *Point  `yaml:"goal,omitempty" toml:"goal,omitempty"`
	WallProbability float64 `yaml:"wall_probability" toml:"wall_probability"`
	MaxWalkSteps    int     `yaml:"max_walk_steps" toml:"max_walk_steps"`
	MaxAttempts     int     `yaml:"max_attempts" toml:"max_attempts"`
}

// GoalCoord returns the configured goal, or the bottom-right corner.
func (g Grid) GoalCoord() gridgraph.Coord {
	if g.Goal == nil {
		return gridgraph.Coord{Row: g.Rows - 1, Col: g.Cols - 1}
	}
	return g.Goal.Coord()
}

// Run configures the trial loop.
type Run struct {
	Trials    int              `yaml:"trials" toml:"trials"`
	Seed      int64            `yaml:"seed" toml:"seed"`
	Algorithm search.Algorithm `yaml:"algorithm" toml:"algorithm"`
}

// Log configures the logger.
type Log struct {
	Level string `yaml:"level" toml:"level"`
}

// Default returns the built-in configuration: a 20×20 grid, corner to
// corner, 30% walls, ten trials.
func Default() Config {
	return Config{
		Grid: Grid{
			Rows:            20,
			Cols:            20,
			WallProbability: 0.3,
		},
		Run: Run{
			Trials:    10,
			Algorithm: search.BreadthFirst,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads and validates the file at path, starting from Default.
func Load(path string) (Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data over Default and validates the result.
func Parse(data []byte, format Format) (Config, error) {
	cfg := Default()
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, err
		}
	case TOML:
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Config{}, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("%w: %v", ErrUnknownKey, undecoded)
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode writes cfg to w in the given format.
func (c Config) Encode(w io.Writer, format Format) error {
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return err
		}
		return enc.Close()
	case TOML:
		return toml.NewEncoder(w).Encode(c)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := gridgraph.ValidateProbability(c.Grid.WallProbability); err != nil {
		return fmt.Errorf("%w: grid.wall_probability: %w", ErrInvalid, err)
	}
	if err := c.Trial().Validate(); err != nil {
		return fmt.Errorf("%w: grid: %w", ErrInvalid, err)
	}
	if c.Run.Trials < 1 {
		return fmt.Errorf("%w: run.trials must be positive, got %d", ErrInvalid, c.Run.Trials)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	return nil
}

// Trial converts the grid section and algorithm selection into a trial.Config.
func (c Config) Trial() trial.Config {
	return trial.Config{
		Rows:         c.Grid.Rows,
		Cols:         c.Grid.Cols,
		Start:        c.Grid.Start.Coord(),
		Goal:         c.Grid.GoalCoord(),
		MaxWalkSteps: c.Grid.MaxWalkSteps,
		MaxAttempts:  c.Grid.MaxAttempts,
		Selected:     c.Run.Algorithm,
	}
}

// LogLevel returns the parsed log level, falling back to Info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
