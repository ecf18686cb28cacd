package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/provide-io/plating/internal/config"
	oerrors "github.com/provide-io/plating/internal/errors"
	"github.com/provide-io/plating/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the plating CLI configuration file.

Checks performed:
  1. Config file exists at the resolved path
  2. Config file is syntactically valid YAML
  3. Sites and directories it names exist

The config path is resolved using precedence:
  --config flag > PLATING_CONFIG env > ~/.plating/config.yaml

Examples:
  # Validate default configuration
  plating config vet

  # Validate a custom config path
  plating config vet --config /path/to/config.yaml`,
		RunE: runConfigVet,
	}
}

func runConfigVet(cmd *cobra.Command, args []string) error {
	configPath := GetConfigPath()
	if configPath == "" {
		var err error
		configPath, err = config.GetConfigFile()
		if err != nil {
			return oerrors.Wrap(oerrors.ErrFileSystem, "could not resolve config path")
		}
	}

	output.Debug("validating config", "path", configPath)

	exists, err := config.ConfigFileExists(configPath)
	if err != nil {
		return err
	}
	if !exists {
		return &oerrors.DetailError{
			Type:     "not found",
			Message:  "configuration file not found",
			Location: configPath,
			Hint:     "Run 'plating config init' to create default configuration",
		}
	}

	cfg, err := config.NewLoader().Load(configPath)
	if err != nil {
		return err
	}

	// Referenced paths must exist when set; a typo here surfaces as an
	// empty documentation run otherwise.
	for _, site := range cfg.Sites {
		expanded, expandErr := config.ExpandPath(site)
		if expandErr != nil {
			return expandErr
		}
		if _, statErr := os.Stat(expanded); statErr != nil {
			return &oerrors.DetailError{
				Type:     "validation failed",
				Message:  "configured site does not exist",
				Location: expanded,
				Hint:     "Fix the sites list in " + configPath,
			}
		}
	}
	for _, dir := range []string{cfg.GlobalPartialsDir, cfg.SchemaDir} {
		if dir == "" {
			continue
		}
		expanded, expandErr := config.ExpandPath(dir)
		if expandErr != nil {
			return expandErr
		}
		if _, statErr := os.Stat(expanded); statErr != nil {
			return &oerrors.DetailError{
				Type:     "validation failed",
				Message:  "configured directory does not exist",
				Location: expanded,
				Hint:     "Fix the directory paths in " + configPath,
			}
		}
	}

	output.Println("Configuration is valid: " + configPath)
	return nil
}
