// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/provide-io/plating/internal/config"
	"github.com/provide-io/plating/internal/examples"
	"github.com/provide-io/plating/internal/output"
	"github.com/provide-io/plating/internal/plate"
	"github.com/provide-io/plating/internal/schema"
)

var (
	// Global flags
	configFlag          string
	verboseFlag         bool
	packageFlag         string
	siteFlags           []string
	docsDirFlag         string
	examplesDirFlag     string
	providerNameFlag    string
	providerSourceFlag  string
	providerVersionFlag string
	globalPartialsFlag  string
	schemaDirFlag       string
	terraformFlag       string

	// Resolved configuration (loaded during PersistentPreRunE)
	resolvedConfig *config.Resolved
)

// NewRootCmd creates the root command for the plating CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "plating",
		Short: "Documentation and example compiler for provider components",
		Long: `plating compiles provider component documentation bundles.

It discovers .plating bundles shipped alongside provider components and:
  - Renders their templates into registry-ready documentation
  - Compiles their examples into runnable project folders
  - Validates compiled examples with the provisioning tool`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "path to config file (env: PLATING_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "increase output verbosity")
	rootCmd.PersistentFlags().StringVarP(&packageFlag, "package", "p", "", "limit discovery to one package root")
	rootCmd.PersistentFlags().StringSliceVar(&siteFlags, "site", nil, "search root for installed packages (repeatable; env: PLATING_SITES)")
	rootCmd.PersistentFlags().StringVar(&docsDirFlag, "docs-dir", "", "output directory for rendered documentation (env: PLATING_DOCS_DIR)")
	rootCmd.PersistentFlags().StringVar(&examplesDirFlag, "examples-dir", "", "output directory for compiled examples (env: PLATING_EXAMPLES_DIR)")
	rootCmd.PersistentFlags().StringVar(&providerNameFlag, "provider-name", "", "provider registry name (env: PLATING_PROVIDER_NAME)")
	rootCmd.PersistentFlags().StringVar(&providerSourceFlag, "provider-source", "", "provider source address (env: PLATING_PROVIDER_SOURCE)")
	rootCmd.PersistentFlags().StringVar(&providerVersionFlag, "provider-version", "", "provider version constraint (env: PLATING_PROVIDER_VERSION)")
	rootCmd.PersistentFlags().StringVar(&globalPartialsFlag, "global-partials", "", "directory of shared header/footer partials (env: PLATING_GLOBAL_PARTIALS_DIR)")
	rootCmd.PersistentFlags().StringVar(&schemaDirFlag, "schema-dir", "", "directory of pre-rendered schema fragments (env: PLATING_SCHEMA_DIR)")
	rootCmd.PersistentFlags().StringVar(&terraformFlag, "terraform", "", "provisioning binary for validate (env: PLATING_TERRAFORM_BINARY)")

	rootCmd.AddCommand(NewPlateCmd())
	rootCmd.AddCommand(NewAdornCmd())
	rootCmd.AddCommand(NewValidateCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	output.SetupLogging(verboseFlag)

	resolved, err := config.Resolve(config.ResolveOptions{
		ConfigFlag:          configFlag,
		ProviderNameFlag:    providerNameFlag,
		ProviderVersionFlag: providerVersionFlag,
		DocsDirFlag:         docsDirFlag,
		ExamplesDirFlag:     examplesDirFlag,
		SiteFlags:           siteFlags,
	})
	if err != nil {
		return err
	}
	resolvedConfig = resolved

	if verboseFlag {
		output.Debug("initializing CLI",
			"config", resolvedConfig.ConfigPath,
			"provider", resolvedConfig.Config.Provider.Name,
			"docsDir", resolvedConfig.Config.DocsDir,
			"examplesDir", resolvedConfig.Config.ExamplesDir,
			"sites", resolvedConfig.Config.Sites,
		)
	}

	return nil
}

// GetResolvedConfig returns the resolved configuration.
func GetResolvedConfig() *config.Resolved {
	return resolvedConfig
}

// GetConfigPath returns the resolved config file path.
func GetConfigPath() string {
	if resolvedConfig != nil {
		return resolvedConfig.ConfigPath
	}
	return configFlag
}

// pipelineOptions translates the resolved configuration into orchestrator
// options. Flags not covered by the resolver apply here.
func pipelineOptions() plate.Options {
	cfg := resolvedConfig.Config

	source := cfg.Provider.Source
	if providerSourceFlag != "" {
		source = providerSourceFlag
	}
	globalPartials := cfg.GlobalPartialsDir
	if globalPartialsFlag != "" {
		globalPartials = globalPartialsFlag
	}
	schemaDir := cfg.SchemaDir
	if schemaDirFlag != "" {
		schemaDir = schemaDirFlag
	}
	terraform := cfg.TerraformBinary
	if terraformFlag != "" {
		terraform = terraformFlag
	}

	opts := plate.Options{
		Package:     packageFlag,
		Sites:       cfg.Sites,
		DocsDir:     cfg.DocsDir,
		ExamplesDir: cfg.ExamplesDir,
		Provider: examples.ProviderSpec{
			Name:    cfg.Provider.Name,
			Source:  source,
			Version: cfg.Provider.Version,
		},
		GlobalPartialsDir: globalPartials,
		Terraform:         terraform,
	}
	if schemaDir != "" {
		opts.Schema = schema.NewDirRenderer(schemaDir)
	}
	return opts
}
