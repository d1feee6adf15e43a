package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridbench/config"
	"github.com/katalvlaran/gridbench/metrics"
	"github.com/katalvlaran/gridbench/search"
	"github.com/katalvlaran/gridbench/trial"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// version is overridden at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out        io.Writer
	configPath string
}

// New creates a CLI printing results to out and logging to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		out:    out,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "gridbench",
		Short: "gridbench compares BFS, DFS and IDS on random obstacle grids",
		Long: `gridbench generates random obstacle grids with a guaranteed start-to-goal
connection, runs breadth-first, depth-first and iterative-deepening search on
each one and reports nodes expanded, frontier size, path length and time.`,
		Version:      version,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "configuration file (.yaml, .yml or .toml)")

	root.AddCommand(c.runCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.configCommand())

	return root
}

// =============================================================================
// Session setup
// =============================================================================

// sessionFlags are the configuration overrides shared by every command.
type sessionFlags struct {
	rows        int
	cols        int
	probability float64
	trials      int
	seed        int64
	algorithm   string
}

func (f *sessionFlags) register(cmd *cobra.Command, withTrials bool) {
	def := config.Default()
	cmd.Flags().IntVar(&f.rows, "rows", def.Grid.Rows, "grid rows")
	cmd.Flags().IntVar(&f.cols, "cols", def.Grid.Cols, "grid columns")
	cmd.Flags().Float64VarP(&f.probability, "probability", "p", def.Grid.WallProbability, "wall probability in [0,1]")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed (0: seeded from the clock)")
	cmd.Flags().StringVarP(&f.algorithm, "algorithm", "a", def.Run.Algorithm.String(), "selected algorithm: bfs, dfs, ids")
	if withTrials {
		cmd.Flags().IntVarP(&f.trials, "trials", "n", def.Run.Trials, "number of trials")
	}
}

// session loads the configuration file, applies explicitly set flags and
// validates the result.
func (c *CLI) session(cmd *cobra.Command, f *sessionFlags) (config.Config, error) {
	cfg := config.Default()
	if c.configPath != "" {
		loaded, err := config.Load(c.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("rows") {
		cfg.Grid.Rows = f.rows
	}
	if flags.Changed("cols") {
		cfg.Grid.Cols = f.cols
	}
	if flags.Changed("probability") {
		cfg.Grid.WallProbability = f.probability
	}
	if flags.Changed("seed") {
		cfg.Run.Seed = f.seed
	}
	if flags.Changed("trials") {
		cfg.Run.Trials = f.trials
	}
	if flags.Changed("algorithm") {
		alg, err := search.ParseAlgorithm(f.algorithm)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Run.Algorithm = alg
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	// --verbose wins over a quieter configured level.
	if lvl := cfg.LogLevel(); lvl < c.Logger.GetLevel() {
		c.Logger.SetLevel(lvl)
	}
	c.Logger.Debug("configuration loaded",
		"rows", cfg.Grid.Rows,
		"cols", cfg.Grid.Cols,
		"p", cfg.Grid.WallProbability,
		"seed", cfg.Run.Seed,
		"algorithm", cfg.Run.Algorithm,
	)
	return cfg, nil
}

// newOrchestrator builds a trial orchestrator for cfg writing into store.
func (c *CLI) newOrchestrator(cfg config.Config, store *metrics.Store) (*trial.Orchestrator, error) {
	opts := []trial.Option{trial.WithLogger(c.Logger)}
	if cfg.Run.Seed != 0 {
		opts = append(opts, trial.WithSeed(cfg.Run.Seed))
	}
	o, err := trial.New(cfg.Trial(), store, opts...)
	if err != nil {
		return nil, fmt.Errorf("initialize trials: %w", err)
	}
	return o, nil
}
