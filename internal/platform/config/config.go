package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

const (
	KeyServiceName = "service_name"
	KeyPostgresDSN = "postgres_dsn"
	KeyLogLevel    = "log_level"
	KeyAutoMigrate = "auto_migrate"
	KeySeedDemo    = "seed_demo"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	PostgresDSN string
	LogLevel    slog.Level
	AutoMigrate bool
	SeedDemo    bool
}

// Load reads configuration from the environment only.
func Load() (Config, error) {
	return LoadFrom(viper.New())
}

// LoadFrom reads configuration from v, which may already have flags bound.
// Environment variables use the upper-case key names (POSTGRES_DSN, ...).
func LoadFrom(v *viper.Viper) (Config, error) {
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(KeyServiceName, "arena")
	v.SetDefault(KeyLogLevel, "info")

	service := strings.TrimSpace(v.GetString(KeyServiceName))
	if service == "" {
		service = "arena"
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(v.GetString(KeyLogLevel)))); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", KeyLogLevel, err)
	}

	return Config{
		ServiceName: service,
		PostgresDSN: strings.TrimSpace(v.GetString(KeyPostgresDSN)),
		LogLevel:    level,
		AutoMigrate: parseBool(v.GetString(KeyAutoMigrate), true),
		SeedDemo:    parseBool(v.GetString(KeySeedDemo), true),
	}, nil
}

func parseBool(raw string, fallback bool) bool {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
