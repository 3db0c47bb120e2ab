package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "xrizer", "xrizer") // telemetry service name is fixed in internal/telemetry
	assert.Equal(t, 10*time.Second, cfg.Manifest.FetchTimeout)
	assert.Equal(t, "127.0.0.1:37337", cfg.Diagnostics.BindAddr)
	assert.False(t, cfg.Diagnostics.Enabled)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := `
logging:
  level: "DEBUG"
  format: "json"

diagnostics:
  enabled: true
  bind_addr: "0.0.0.0:9000"

manifest:
  search_paths:
    - "/opt/app/actions"
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "DEBUG", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Diagnostics.Enabled)
	assert.Equal(t, "0.0.0.0:9000", cfg.Diagnostics.BindAddr)
	assert.Equal(t, []string{"/opt/app/actions"}, cfg.Manifest.SearchPaths)
	// Untouched sections still get their defaults applied.
	assert.Equal(t, 10*time.Second, cfg.Manifest.FetchTimeout)
}

func TestLoad_InvalidLevelFailsValidation(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := `
logging:
  level: "VERBOSE"
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	_, err := Load(configPath)
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, Validate(cfg))
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("XRIZER_LOGGING_LEVEL", "WARN")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "WARN", cfg.Logging.Level)
}
