package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDescriptor = `
addr:
  host: "127.0.0.1"
  port: 9000

log:
  log_level: "DEBUG"

datasource:
  hostname: "db.internal"
  port: 5432
  name: "analytics"
  username: "${TEST_EAS_DB_USER}"
  password: "secret"
  sslmode: "disable"

security:
  jwt_secret: "jwt"
  api_key_secret: "keys"
`

func writeDescriptor(t *testing.T, content string) string {
	t.Helper()
	home := t.TempDir()
	confDir := filepath.Join(home, "repository", "conf")
	require.NoError(t, os.MkdirAll(confDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(confDir, "deployment.yaml"), []byte(content), 0o644))
	return home
}

func TestLoadConfigExpandsEnvironment(t *testing.T) {
	t.Setenv("TEST_EAS_DB_USER", "eas_user")
	home := writeDescriptor(t, testDescriptor)

	cfg, err := LoadConfig(home, "/repository/conf/deployment.yaml")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Addr.Host)
	assert.Equal(t, 9000, cfg.Addr.Port)
	assert.Equal(t, "DEBUG", cfg.Log.LogLevel)
	assert.Equal(t, "eas_user", cfg.DataSource.Username)
	assert.Equal(t, "jwt", cfg.Security.JWTSecret)
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	home := writeDescriptor(t, testDescriptor)

	cfg, err := LoadConfig(home, "/repository/conf/deployment.yaml")
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Security.BcryptCost)
	assert.Equal(t, 168, cfg.Security.TokenLifetimeHr)
	assert.Equal(t, 3600, cfg.Cache.TTLSeconds)
	assert.Equal(t, 1000, cfg.RateLimit.IngestPerMinute)
	assert.Equal(t, 100, cfg.RateLimit.AnalyticsPerMinute)
	assert.Equal(t, 10, cfg.RateLimit.AuthPerWindow)
	assert.Equal(t, 15, cfg.RateLimit.AuthWindowMinutes)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(t.TempDir(), "/repository/conf/deployment.yaml")
	assert.Error(t, err)
}
