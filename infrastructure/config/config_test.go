package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 60, cfg.GenerateRateLimit)
	assert.Equal(t, 20, cfg.NotifyRateLimit)
	assert.Equal(t, 10, cfg.LoginRateLimit)
	assert.True(t, cfg.EnableMetrics)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("NB_GENERATE_RATE_LIMIT", "5")
	t.Setenv("NB_SESSION_TTL", "1h")
	t.Setenv("NB_CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.Equal(t, 5, cfg.GenerateRateLimit)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
}

func TestLoadConfig_FileOverlayWinsOverEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server_address: \":7070\"\nnotify_rate_limit: 3\n"), 0o600))

	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("NB_CONFIG_FILE", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.ServerAddress)
	assert.Equal(t, 3, cfg.NotifyRateLimit)
	// Fields the overlay leaves zero keep their env-derived values.
	assert.Equal(t, 60, cfg.GenerateRateLimit)
}

func TestLoadConfig_ProductionRequiresSecrets(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	_, err := LoadConfig()
	require.Error(t, err)

	t.Setenv("NB_SESSION_SECRET", "s3cret")
	t.Setenv("NB_PORTAL_PASSWORD", "hunter2")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestLoadConfig_RejectsNonPositiveLimits(t *testing.T) {
	t.Setenv("NB_LOGIN_RATE_LIMIT", "-1")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestStore_ReplacePublishesNewSnapshot(t *testing.T) {
	boot := &Config{GenerateRateLimit: 60, NotifyToken: "old"}
	store := NewStore(boot)

	assert.Same(t, boot, store.Current())

	next := &Config{GenerateRateLimit: 5, NotifyToken: "new"}
	store.Replace(next)

	assert.Same(t, next, store.Current())
	assert.Equal(t, 5, store.Current().GenerateRateLimit)
	assert.Equal(t, "new", store.Current().NotifyToken)
}
