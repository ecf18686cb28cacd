package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("reads values from file", func(t *testing.T) {
		path := writeConfig(t, `
provider:
  name: pyvider
  source: provide-io/pyvider
  version: ">= 1.0.0"
sites:
  - /opt/packages
docsDir: output/docs
`)

		cfg, err := NewLoader().Load(path)
		require.NoError(t, err)
		assert.Equal(t, "pyvider", cfg.Provider.Name)
		assert.Equal(t, "provide-io/pyvider", cfg.Provider.Source)
		assert.Equal(t, ">= 1.0.0", cfg.Provider.Version)
		assert.Equal(t, []string{"/opt/packages"}, cfg.Sites)
		assert.Equal(t, "output/docs", cfg.DocsDir)
	})

	t.Run("missing file yields zero config", func(t *testing.T) {
		cfg, err := NewLoader().Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Empty(t, cfg.Provider.Name)
	})

	t.Run("env vars override file values", func(t *testing.T) {
		path := writeConfig(t, "provider:\n  name: fromfile\n")
		t.Setenv("PLATING_PROVIDER_NAME", "fromenv")

		cfg, err := NewLoader().Load(path)
		require.NoError(t, err)
		assert.Equal(t, "fromenv", cfg.Provider.Name)
	})

	t.Run("PLATING_SITES is comma separated", func(t *testing.T) {
		path := writeConfig(t, "sites:\n  - /from/file\n")
		t.Setenv("PLATING_SITES", "/a, /b ,,/c")

		cfg, err := NewLoader().Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"/a", "/b", "/c"}, cfg.Sites)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := writeConfig(t, "provider: [unclosed\n")
		_, err := NewLoader().Load(path)
		assert.Error(t, err)
	})
}

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := NewLoader().LoadWithDefaults(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "docs", cfg.DocsDir)
	assert.Equal(t, "examples-out", cfg.ExamplesDir)
	assert.Equal(t, "terraform", cfg.TerraformBinary)
	assert.Equal(t, ">= 0.1.0", cfg.Provider.Version)
}

func TestResolve(t *testing.T) {
	t.Run("flags win over file", func(t *testing.T) {
		path := writeConfig(t, "docsDir: from-file\nprovider:\n  name: fromfile\n")

		resolved, err := Resolve(ResolveOptions{
			ConfigFlag:       path,
			DocsDirFlag:      "from-flag",
			ProviderNameFlag: "fromflag",
			SiteFlags:        []string{"/flag/site"},
		})
		require.NoError(t, err)
		assert.Equal(t, "from-flag", resolved.Config.DocsDir)
		assert.Equal(t, "fromflag", resolved.Config.Provider.Name)
		assert.Equal(t, []string{"/flag/site"}, resolved.Config.Sites)
		assert.Equal(t, path, resolved.ConfigPath)
	})

	t.Run("PLATING_CONFIG selects the file", func(t *testing.T) {
		path := writeConfig(t, "docsDir: from-env-file\n")
		t.Setenv("PLATING_CONFIG", path)

		resolved, err := Resolve(ResolveOptions{})
		require.NoError(t, err)
		assert.Equal(t, "from-env-file", resolved.Config.DocsDir)
	})
}

func TestConfigFileExists(t *testing.T) {
	path := writeConfig(t, "docsDir: x\n")

	exists, err := ConfigFileExists(path)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = ConfigFileExists(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	expanded, err := ExpandPath("~/x/y")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "x", "y"), expanded)

	plain, err := ExpandPath("/abs/path")
	require.NoError(t, err)
	assert.Equal(t, "/abs/path", plain)
}
