package config

import (
	"log/slog"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVICE_NAME", "")
	t.Setenv("POSTGRES_DSN", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("AUTO_MIGRATE", "")
	t.Setenv("SEED_DEMO", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "arena", cfg.ServiceName)
	assert.Empty(t, cfg.PostgresDSN)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.True(t, cfg.AutoMigrate)
	assert.True(t, cfg.SeedDemo)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVICE_NAME", "arena-test")
	t.Setenv("POSTGRES_DSN", " postgres://arena@localhost/arena ")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("AUTO_MIGRATE", "off")
	t.Setenv("SEED_DEMO", "no")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "arena-test", cfg.ServiceName)
	assert.Equal(t, "postgres://arena@localhost/arena", cfg.PostgresDSN)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.False(t, cfg.AutoMigrate)
	assert.False(t, cfg.SeedDemo)
}

func TestLoadFromExplicitValuesOverrideEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	v := viper.New()
	v.Set(KeyLogLevel, "warn")

	cfg, err := LoadFrom(v)
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
}

func TestLoadRejectsUnknownLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	_, err := Load()
	require.Error(t, err)
}

func TestParseBoolFallsBackOnGarbage(t *testing.T) {
	assert.True(t, parseBool("maybe", true))
	assert.False(t, parseBool("maybe", false))
	assert.True(t, parseBool(" YES ", false))
}
