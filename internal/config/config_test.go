package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
	assert.Equal(t, "coinpulse", cfg.Psql.Addr.Path[1:])
	assert.True(t, cfg.Jobs.StatusSyncEnabled)
	assert.Equal(t, int64(5), cfg.Moderation.SpamThreshold)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PSQL_SEED", "true")
	t.Setenv("JOBS_STATUS_SYNC_SPEC", "*/30 * * * * *")
	t.Setenv("MODERATION_SPAM_THRESHOLD", "0")
	t.Setenv("STORAGE_PUBLIC_URL", "https://cdn.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.True(t, cfg.Psql.Seed)
	assert.Equal(t, "*/30 * * * * *", cfg.Jobs.StatusSyncSpec)
	assert.Zero(t, cfg.Moderation.SpamThreshold)
	assert.Equal(t, "https://cdn.example.com", cfg.Storage.PublicURL)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}
