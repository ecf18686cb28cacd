package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigInitCmd(t *testing.T) {
	cmd := NewConfigInitCmd()

	assert.Equal(t, "init", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	// Check flag exists
	assert.NotNil(t, cmd.Flags().Lookup("force"))
}

func TestConfigInit_CreatesFile(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	cmd := NewConfigInitCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())

	configFile := filepath.Join(tmpHome, ".plating", "config.yaml")
	assert.FileExists(t, configFile)

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "provider:")
	assert.Contains(t, string(data), "docsDir: docs")
}

func TestConfigInit_SecurePermissions(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	cmd := NewConfigInitCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())

	configFile := filepath.Join(tmpHome, ".plating", "config.yaml")
	fileInfo, err := os.Stat(configFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fileInfo.Mode().Perm())
}

func TestConfigInit_ExistingConfig(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	platingDir := filepath.Join(tmpHome, ".plating")
	require.NoError(t, os.MkdirAll(platingDir, 0o700))
	configFile := filepath.Join(platingDir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("docsDir: custom\n"), 0o600))

	cmd := NewConfigInitCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	// Without --force the existing file must survive
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.Equal(t, "docsDir: custom\n", string(data))
}

func TestConfigInit_Force(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	platingDir := filepath.Join(tmpHome, ".plating")
	require.NoError(t, os.MkdirAll(platingDir, 0o700))
	configFile := filepath.Join(platingDir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("docsDir: custom\n"), 0o600))

	cmd := NewConfigInitCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--force"})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "docsDir: docs")
}
