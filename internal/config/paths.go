package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Paths contains standard filesystem paths for plating.
type Paths struct {
	// ConfigFile is the path to the config file (~/.plating/config.yaml).
	ConfigFile string

	// HomeDir is the plating home directory (~/.plating).
	HomeDir string
}

// DefaultPaths returns the default paths for plating.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	platingHome := filepath.Join(homeDir, ".plating")

	return &Paths{
		ConfigFile: filepath.Join(platingHome, "config.yaml"),
		HomeDir:    platingHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If PLATING_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("PLATING_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// EnsureHomeDir creates the plating home directory if it doesn't exist.
func EnsureHomeDir() error {
	paths, err := DefaultPaths()
	if err != nil {
		return err
	}
	return os.MkdirAll(paths.HomeDir, 0o755)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
