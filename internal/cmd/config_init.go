package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/provide-io/plating/internal/config"
	oerrors "github.com/provide-io/plating/internal/errors"
	"github.com/provide-io/plating/internal/output"
)

var configInitForce bool

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the plating CLI configuration.

Creates ~/.plating/config.yaml with commented defaults for the provider
identity, package search sites, and output directories.

Examples:
  # Initialize configuration
  plating config init

  # Overwrite existing configuration
  plating config init --force`,
		RunE: runConfigInit,
	}

	cmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	paths, err := config.DefaultPaths()
	if err != nil {
		return oerrors.Wrap(oerrors.ErrFileSystem, "could not determine home directory")
	}

	if _, err := os.Stat(paths.ConfigFile); err == nil && !configInitForce {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: paths.ConfigFile,
			Hint:     "Use --force to overwrite existing configuration.",
		}
	}

	if err := config.EnsureHomeDir(); err != nil {
		return oerrors.NewIOError("mkdir", paths.HomeDir, err)
	}

	if err := os.WriteFile(paths.ConfigFile, []byte(config.DefaultConfigTemplate), 0o600); err != nil {
		return oerrors.NewIOError("write", paths.ConfigFile, err)
	}

	output.Println("Configuration initialized at " + paths.ConfigFile)
	output.Println("")
	output.Println("Next: set provider.name and provider.source, then run 'plating config vet'")

	return nil
}
