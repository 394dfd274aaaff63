package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	DataDir  string         `mapstructure:"data_dir"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Session  SessionConfig  `mapstructure:"session"`
	Log      LogConfig      `mapstructure:"log"`
	Sentry   SentryConfig   `mapstructure:"sentry"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // "sqlite" or "postgres"
	DSN    string `mapstructure:"dsn"`    // Connection string (postgres only; sqlite lives in data_dir)
}

// AuthConfig holds token issuance configuration
type AuthConfig struct {
	TokenSecret string        `mapstructure:"token_secret"` // Secret for signing session credentials
	TokenTTL    time.Duration `mapstructure:"token_ttl"`    // Session credential lifetime
}

// SessionConfig holds credential storage configuration
type SessionConfig struct {
	Backend string `mapstructure:"backend"` // "file" or "keyring"
}

// LogConfig holds logging configuration
type LogConfig struct {
	Format string `mapstructure:"format"` // "json" or "text"
	Level  string `mapstructure:"level"`  // "debug", "info", "warn", "error"
}

// SentryConfig holds error monitoring configuration. Disabled when
// the DSN is empty.
type SentryConfig struct {
	DSN string `mapstructure:"dsn"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("data_dir", "")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "")
	v.SetDefault("auth.token_secret", "change-me-in-production")
	v.SetDefault("auth.token_ttl", "1h")
	v.SetDefault("session.backend", "file")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.level", "warn")
	v.SetDefault("sentry.dsn", "")

	// Read from config file if exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/epicrm/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, using defaults
	}

	// Environment variables override
	v.SetEnvPrefix("EPICRM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if cfg.Auth.TokenTTL <= 0 {
		return nil, fmt.Errorf("auth.token_ttl must be positive")
	}

	return &cfg, nil
}
