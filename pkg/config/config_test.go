package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
smartystreets:
  auth_id: file-id
  auth_token: file-token
  proxy: http://proxy.local:3128
  include_invalid: true
  timeout: 5s
log:
  level: DEBUG
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "file-id", cfg.SmartyStreets.AuthID)
	assert.Equal(t, "https://api.smartystreets.com", cfg.SmartyStreets.Host)
	assert.Equal(t, 5*time.Second, cfg.SmartyStreets.Timeout)
	assert.True(t, cfg.SmartyStreets.IncludeInvalid)
	assert.Equal(t, "DEBUG", cfg.Log.Level)
	assert.Equal(t, "development", cfg.Env)

	client, err := cfg.NewClient()
	require.NoError(t, err)
	assert.Equal(t, "http://proxy.local:3128", client.Proxy())
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
smartystreets:
  auth_id: file-id
  auth_token: file-token
`)
	t.Setenv("SMARTY_AUTH_ID", "env-id")
	t.Setenv("SMARTY_HOST", "https://api.example.test")
	t.Setenv("SERVER_PORT", "7000")
	t.Setenv("SMARTY_TIMEOUT", "2s")
	t.Setenv("ENV", "production")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "env-id", cfg.SmartyStreets.AuthID)
	assert.Equal(t, "file-token", cfg.SmartyStreets.AuthToken)
	assert.Equal(t, "https://api.example.test", cfg.SmartyStreets.Host)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, 2*time.Second, cfg.SmartyStreets.Timeout)
	assert.True(t, cfg.IsProduction())
}

func TestLoadConfigMissingFileUsesEnvironment(t *testing.T) {
	t.Setenv("SMARTY_AUTH_ID", "env-id")
	t.Setenv("SMARTY_AUTH_TOKEN", "env-token")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "INFO", cfg.Log.Level)
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
	}{
		{name: "missing credentials", body: "server:\n  port: 8080\n", env: map[string]string{"SMARTY_AUTH_ID": "", "SMARTY_AUTH_TOKEN": ""}},
		{name: "bad port", body: "smartystreets:\n  auth_id: a\n  auth_token: b\n", env: map[string]string{"SERVER_PORT": "70000"}},
		{name: "unparseable port", body: "smartystreets:\n  auth_id: a\n  auth_token: b\n", env: map[string]string{"SERVER_PORT": "http"}},
		{name: "bad proxy", body: "smartystreets:\n  auth_id: a\n  auth_token: b\n  proxy: nope\n"},
		{name: "bad log level", body: "smartystreets:\n  auth_id: a\n  auth_token: b\nlog:\n  level: TRACE\n"},
		{name: "bad yaml", body: "smartystreets: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
