package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridbench/config"
	"github.com/katalvlaran/gridbench/metrics"
	"github.com/katalvlaran/gridbench/search"
)

// showCommand creates the show command that draws a single trial.
func (c *CLI) showCommand() *cobra.Command {
	var (
		flags sessionFlags
		plain bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Run one trial and draw the grid with the selected path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.session(cmd, &flags)
			if err != nil {
				return err
			}
			return c.showTrial(cmd.Context(), cfg, plain)
		},
	}

	flags.register(cmd, false)
	cmd.Flags().BoolVar(&plain, "plain", false, "draw the grid without colours, one character per cell")

	return cmd
}

func (c *CLI) showTrial(ctx context.Context, cfg config.Config, plain bool) error {
	orch, err := c.newOrchestrator(cfg, metrics.NewStore())
	if err != nil {
		return err
	}
	out, err := orch.RunTrial(ctx, cfg.Grid.WallProbability)
	if err != nil {
		return err
	}

	tc := orch.Config()
	if plain {
		c.printBlock(renderGridPlain(out.Grid, out.SelectedPath, tc.Start, tc.Goal))
	} else {
		c.printBlock(renderGrid(out.Grid, out.SelectedPath, tc.Start, tc.Goal))
		c.printBlock(legend())
	}
	c.printNewline()

	c.printKeyValue("session", orch.Session().String())
	c.printKeyValue("walls", fmt.Sprintf("%d (%.1f%%)", out.Grid.WallCount(), 100*out.Grid.Density()))
	c.printKeyValue("regions", fmt.Sprintf("%d open, start-goal connected: %t",
		len(out.Grid.ConnectedComponents()), out.Grid.Connected(tc.Start, tc.Goal)))
	c.printKeyValue("selected", out.Selected.String())
	for _, alg := range search.Algorithms {
		res := out.Results[alg]
		line := fmt.Sprintf("path %d  nodes %d  frontier %d  %s",
			res.PathLength(), res.NodesExpanded, res.MaxFrontier, out.Elapsed[alg])
		if alg == search.IterativeDeepening {
			line += fmt.Sprintf("  iterations %d", res.Iterations)
		}
		c.printKeyValue(alg.String(), line)
	}
	if len(out.SelectedPath) == 0 {
		c.printWarning("%s found no path", out.Selected)
	}
	return nil
}
