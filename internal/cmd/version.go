package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/provide-io/plating/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version and build information for the plating CLI.`,
		RunE:  runVersion,
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.GetInfo()
	fmt.Fprintln(cmd.OutOrStdout(), info.String())
	return nil
}
