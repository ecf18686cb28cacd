package config

import "os"

// ResolveOptions carries the raw flag values that participate in resolution.
type ResolveOptions struct {
	ConfigFlag          string
	ProviderNameFlag    string
	ProviderVersionFlag string
	DocsDirFlag         string
	ExamplesDirFlag     string
	SiteFlags           []string
}

// Resolved holds the final configuration after applying the
// flag > env > config file > default precedence.
type Resolved struct {
	Config *Config

	// ConfigPath is the config file that was loaded (or would have been).
	ConfigPath string
}

// Resolve loads the config file and applies flag and env precedence on top.
// Flags always win; env vars are already merged by the loader.
func Resolve(opts ResolveOptions) (*Resolved, error) {
	configPath := opts.ConfigFlag
	if configPath == "" {
		configPath = os.Getenv("PLATING_CONFIG")
	}

	cfg, err := NewLoader().LoadWithDefaults(configPath)
	if err != nil {
		return nil, err
	}

	if opts.ProviderNameFlag != "" {
		cfg.Provider.Name = opts.ProviderNameFlag
	}
	if opts.ProviderVersionFlag != "" {
		cfg.Provider.Version = opts.ProviderVersionFlag
	}
	if opts.DocsDirFlag != "" {
		cfg.DocsDir = opts.DocsDirFlag
	}
	if opts.ExamplesDirFlag != "" {
		cfg.ExamplesDir = opts.ExamplesDirFlag
	}
	if len(opts.SiteFlags) > 0 {
		cfg.Sites = opts.SiteFlags
	}

	if configPath == "" {
		configPath, _ = GetConfigFile()
	}

	return &Resolved{Config: cfg, ConfigPath: configPath}, nil
}
