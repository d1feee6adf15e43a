package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridbench/config"
	"github.com/katalvlaran/gridbench/metrics"
)

// runCommand creates the run command for batch trials.
func (c *CLI) runCommand() *cobra.Command {
	var (
		flags    sessionFlags
		jsonPath string
		field    string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run N trials and report per-algorithm metrics",
		Long: `Run N trials. Each trial generates a fresh grid and runs BFS, DFS and IDS
on it. The report shows per-algorithm averages and one row per trial.

Use --json to write the full metrics snapshot (labels, histories and averages)
for external charting; "--json -" writes it to stdout instead of the tables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.session(cmd, &flags)
			if err != nil {
				return err
			}
			f, err := metrics.ParseField(field)
			if err != nil {
				return err
			}
			return c.runTrials(cmd.Context(), cfg, f, jsonPath)
		},
	}

	flags.register(cmd, true)
	cmd.Flags().StringVar(&jsonPath, "json", "", `write metrics snapshot as JSON to file ("-" for stdout)`)
	cmd.Flags().StringVarP(&field, "field", "f", metrics.FieldNodes.String(), "per-trial column: time, nodes, frontier, path, iterations")

	return cmd
}

// runTrials executes the configured trials and prints or exports the metrics.
func (c *CLI) runTrials(ctx context.Context, cfg config.Config, f metrics.Field, jsonPath string) error {
	store := metrics.NewStore()
	orch, err := c.newOrchestrator(cfg, store)
	if err != nil {
		return err
	}

	p := newProgress(c.Logger)
	outs, err := orch.RunTrials(ctx, cfg.Run.Trials, cfg.Grid.WallProbability)
	if err != nil {
		return fmt.Errorf("after %d trials: %w", len(outs), err)
	}
	p.done(fmt.Sprintf("Completed %d trials", len(outs)))

	if jsonPath == "-" {
		return store.WriteJSON(c.out)
	}
	if jsonPath != "" {
		if err := writeJSONFile(jsonPath, store); err != nil {
			return err
		}
	}

	c.printBlock(StyleTitle.Render(fmt.Sprintf("%d trials on %dx%d, p=%.2f",
		len(outs), cfg.Grid.Rows, cfg.Grid.Cols, cfg.Grid.WallProbability)))
	c.printBlock(summaryTable(store))
	c.printNewline()
	c.printBlock(StyleTitle.Render("Per trial: " + f.String()))
	c.printBlock(runsTable(store, f))
	if jsonPath != "" {
		c.printSuccess("Metrics written to %s", jsonPath)
	}
	return nil
}

func writeJSONFile(path string, store *metrics.Store) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	return store.WriteJSON(file)
}
