// Package config loads ls-cosmos settings from defaults, an optional YAML
// file, a .env file and COSMOS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, so server.address
// becomes COSMOS_SERVER_ADDRESS.
const EnvPrefix = "COSMOS"

// Config is the root configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Ephemeris EphemerisConfig `mapstructure:"ephemeris"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig configures the HTTP adapter.
type ServerConfig struct {
	Address      string          `mapstructure:"address" validate:"required"`
	ReadTimeout  time.Duration   `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout time.Duration   `mapstructure:"write_timeout" validate:"gt=0"`
	RateLimit    RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig is a token bucket: Requests per second, up to Burst at once.
type RateLimitConfig struct {
	Requests float64 `mapstructure:"requests" validate:"gt=0"`
	Burst    int     `mapstructure:"burst" validate:"min=1"`
}

// EphemerisConfig selects and tunes the ephemeris oracle.
type EphemerisConfig struct {
	Mode        string        `mapstructure:"mode" validate:"required,oneof=meeus horizons auto"`
	HorizonsURL string        `mapstructure:"horizons_url" validate:"required,url"`
	Timeout     time.Duration `mapstructure:"timeout" validate:"gt=0"`
	CacheTTL    time.Duration `mapstructure:"cache_ttl" validate:"min=0"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Log level: debug, info, warn, error
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// Load reads configuration with priority, highest first:
//  1. Environment variables (COSMOS_ prefix, also from .env)
//  2. Config file (path, or config.yaml in ., ./configs, /etc/ls-cosmos)
//  3. Defaults
func Load(path string) (*Config, error) {
	// A missing .env is fine.
	_ = godotenv.Load()

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/ls-cosmos")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	registerDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	SetDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	cfg := &Config{}
	SetDefaults(cfg)
	return cfg
}
