package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newPresetsCommand lists the presets available with the current config.
func newPresetsCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			gens, err := cfg.Generators()
			if err != nil {
				return err
			}
			for i, g := range gens {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s\n", i, g.Name())
			}
			return nil
		},
	}
}
