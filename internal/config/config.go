// Package config provides configuration loading and management.
package config

// ProviderConfig identifies the provider whose components are documented.
type ProviderConfig struct {
	// Name is the provider's registry name (e.g. "pyvider").
	// Env: PLATING_PROVIDER_NAME
	Name string `mapstructure:"name"`

	// Source is the registry source address used in generated provider
	// blocks (e.g. "registry.terraform.io/provide-io/pyvider").
	// Env: PLATING_PROVIDER_SOURCE
	Source string `mapstructure:"source"`

	// Version is the version constraint used in generated provider blocks.
	// Env: PLATING_PROVIDER_VERSION
	Version string `mapstructure:"version"`
}

// Config represents the plating CLI configuration.
// Loaded from ~/.plating/config.yaml; PLATING_* env vars take precedence.
type Config struct {
	// Provider identifies the documented provider.
	Provider ProviderConfig `mapstructure:"provider"`

	// Sites are the search roots containing installed component packages.
	// Env: PLATING_SITES (comma-separated)
	Sites []string `mapstructure:"sites"`

	// DocsDir is the output directory for rendered documentation.
	// Default: "docs"
	DocsDir string `mapstructure:"docsDir"`

	// ExamplesDir is the output directory for compiled examples.
	// Default: "examples-out"
	ExamplesDir string `mapstructure:"examplesDir"`

	// GlobalPartialsDir holds shared header/footer partials injected into
	// every rendered document unless a document opts out.
	GlobalPartialsDir string `mapstructure:"globalPartialsDir"`

	// SchemaDir holds pre-rendered schema markdown fragments, one file per
	// component, produced by the schema extraction tool.
	SchemaDir string `mapstructure:"schemaDir"`

	// TerraformBinary is the provisioning tool invoked by `plating validate`.
	// Default: "terraform" (resolved via PATH).
	TerraformBinary string `mapstructure:"terraformBinary"`
}

// DefaultConfigTemplate is the initial config file written by
// `plating config init`.
const DefaultConfigTemplate = `# plating configuration
# Values here are overridden by PLATING_* environment variables and flags.

provider:
  # Registry name of the documented provider, e.g. "pyvider".
  name: ""
  # Registry source address used in generated provider blocks.
  source: ""
  # Version constraint used in generated provider blocks.
  version: ">= 0.1.0"

# Search roots containing installed component packages.
sites: []

# Output directory for rendered documentation.
docsDir: docs

# Output directory for compiled examples.
examplesDir: examples-out

# Directory of shared header/footer partials (optional).
globalPartialsDir: ""

# Directory of pre-rendered schema markdown fragments (optional).
schemaDir: ""

# Provisioning tool invoked by 'plating validate'.
terraformBinary: terraform
`

// DefaultConfig returns a Config with all default values populated.
// Used by `plating config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderConfig{
			Version: ">= 0.1.0",
		},
		DocsDir:         "docs",
		ExamplesDir:     "examples-out",
		TerraformBinary: "terraform",
	}
}

// WithDefaults fills unset fields with default values.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.Provider.Version == "" {
		out.Provider.Version = ">= 0.1.0"
	}
	if out.DocsDir == "" {
		out.DocsDir = "docs"
	}
	if out.ExamplesDir == "" {
		out.ExamplesDir = "examples-out"
	}
	if out.TerraformBinary == "" {
		out.TerraformBinary = "terraform"
	}
	return &out
}
