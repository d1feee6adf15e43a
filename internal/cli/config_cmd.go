package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridbench/config"
)

// configCommand prints the effective configuration.
func (c *CLI) configCommand() *cobra.Command {
	var (
		flags  sessionFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration (defaults, file and flags merged)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.session(cmd, &flags)
			if err != nil {
				return err
			}
			return cfg.Encode(c.out, config.Format(format))
		},
	}

	flags.register(cmd, true)
	cmd.Flags().StringVar(&format, "format", string(config.YAML), "output format: yaml, toml")

	return cmd
}
