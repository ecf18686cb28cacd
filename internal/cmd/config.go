package cmd

import (
	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage plating configuration",
		Long: `Manage the plating CLI configuration.

The configuration file lives at ~/.plating/config.yaml by default; the
--config flag and the PLATING_CONFIG environment variable override it.`,
	}

	cmd.AddCommand(NewConfigInitCmd())
	cmd.AddCommand(NewConfigVetCmd())

	return cmd
}
