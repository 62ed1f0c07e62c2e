package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, DefaultBaseURL, cfg.ZeptoMail.BaseURL)
	assert.Equal(t, 30, cfg.ZeptoMail.TimeoutSeconds)
	assert.Empty(t, cfg.ZeptoMail.APIKey)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
server:
  port: 9999
  host: 0.0.0.0
zeptomail:
  api_key: file-key
  base_url: https://zepto.example.com/v1.1/email
  timeout_seconds: 5
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "file-key", cfg.ZeptoMail.APIKey)
	assert.Equal(t, "https://zepto.example.com/v1.1/email", cfg.ZeptoMail.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.ZeptoMail.Timeout())
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not: a: map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("ZEPTO_API_KEY", "env-key")
	t.Setenv("ZEPTO_API_URL", "https://override.example.com/email")
	t.Setenv("PORT", "9090")

	cfg, err := LoadFromEnv(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.ZeptoMail.APIKey)
	assert.Equal(t, "https://override.example.com/email", cfg.ZeptoMail.BaseURL)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestGetHostEnvOverride(t *testing.T) {
	t.Setenv("SERVER_HOST", "10.0.0.5")

	cfg := ServerConfig{Host: "localhost"}
	assert.Equal(t, "10.0.0.5", cfg.GetHost())
}
