package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWritesDefaultFile(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "config.yaml"))
	assert.NoError(t, err, "default config.yaml created on first run")

	assert.Equal(t, filepath.Join(dir, "handla.db"), cfg.Database)
	assert.Equal(t, filepath.Join(dir, "suggestions.txt"), cfg.Suggestions)
	assert.Equal(t, filepath.Join(dir, "handla.log"), cfg.LogFile)
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "user: anna@example.com\ndatabase: /tmp/other.db\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "anna@example.com", cfg.User)
	assert.Equal(t, "/tmp/other.db", cfg.Database)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("user: anna@example.com\n"), 0o600))
	t.Setenv("HANDLA_USER", "bo@example.com")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "bo@example.com", cfg.User)
}

func TestValidate(t *testing.T) {
	t.Setenv("HANDLA_USER", "") // ignore any ambient override
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Error(t, cfg.Validate(), "empty user rejected")

	cfg.User = "not-an-email"
	assert.Error(t, cfg.Validate())

	cfg.User = "anna@example.com"
	assert.NoError(t, cfg.Validate())
}

func TestDirEnvOverride(t *testing.T) {
	t.Setenv("HANDLA_DIR", "/tmp/handla-test")
	dir, err := Dir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/handla-test", dir)
}
