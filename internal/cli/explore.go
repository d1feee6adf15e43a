package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridbench/metrics"
)

// exploreCommand creates the interactive explorer.
func (c *CLI) exploreCommand() *cobra.Command {
	var flags sessionFlags

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Interactively regenerate grids and compare the three searches",
		Long: `Open an interactive session. Every regeneration runs BFS, DFS and IDS on a
fresh grid and adds one record per algorithm to the running averages.

Keys: r regenerate, b/d/i select BFS/DFS/IDS, +/- change wall probability,
x reset metrics, q quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.session(cmd, &flags)
			if err != nil {
				return err
			}
			store := metrics.NewStore()
			orch, err := c.newOrchestrator(cfg, store)
			if err != nil {
				return err
			}

			// Trial logs would tear the alternate screen.
			level := c.Logger.GetLevel()
			c.Logger.SetLevel(log.WarnLevel)
			defer c.Logger.SetLevel(level)

			m := NewExploreModel(cmd.Context(), orch, cfg.Grid.WallProbability)
			p := tea.NewProgram(m, tea.WithContext(cmd.Context()), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return err
			}
			c.printInfo("Session %s: %d trials", orch.Session(), store.Runs())
			if store.Runs() > 0 {
				c.printBlock(summaryTable(store))
			}
			return nil
		},
	}

	flags.register(cmd, false)

	return cmd
}
