package config

import (
	"time"

	"github.com/spf13/viper"
)

// Defaults for every setting.
const (
	DefaultAddress      = ":5000"
	DefaultReadTimeout  = 10 * time.Second
	DefaultWriteTimeout = 10 * time.Second
	DefaultRateRequests = 20
	DefaultRateBurst    = 40

	DefaultEphemerisMode = "meeus"
	DefaultHorizonsURL   = "https://ssd.jpl.nasa.gov/api/horizons.api"
	DefaultHorizonsWait  = 30 * time.Second
	DefaultCacheTTL      = 10 * time.Minute

	DefaultLogLevel = "info"
)

// registerDefaults makes every key known to viper so AutomaticEnv can
// override it during Unmarshal.
func registerDefaults(v *viper.Viper) {
	v.SetDefault("server.address", DefaultAddress)
	v.SetDefault("server.read_timeout", DefaultReadTimeout)
	v.SetDefault("server.write_timeout", DefaultWriteTimeout)
	v.SetDefault("server.rate_limit.requests", DefaultRateRequests)
	v.SetDefault("server.rate_limit.burst", DefaultRateBurst)
	v.SetDefault("ephemeris.mode", DefaultEphemerisMode)
	v.SetDefault("ephemeris.horizons_url", DefaultHorizonsURL)
	v.SetDefault("ephemeris.timeout", DefaultHorizonsWait)
	v.SetDefault("ephemeris.cache_ttl", DefaultCacheTTL)
	v.SetDefault("logging.level", DefaultLogLevel)
}

// SetDefaults fills zero-valued fields.
func SetDefaults(cfg *Config) {
	if cfg.Server.Address == "" {
		cfg.Server.Address = DefaultAddress
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Server.RateLimit.Requests == 0 {
		cfg.Server.RateLimit.Requests = DefaultRateRequests
	}
	if cfg.Server.RateLimit.Burst == 0 {
		cfg.Server.RateLimit.Burst = DefaultRateBurst
	}

	if cfg.Ephemeris.Mode == "" {
		cfg.Ephemeris.Mode = DefaultEphemerisMode
	}
	if cfg.Ephemeris.HorizonsURL == "" {
		cfg.Ephemeris.HorizonsURL = DefaultHorizonsURL
	}
	if cfg.Ephemeris.Timeout == 0 {
		cfg.Ephemeris.Timeout = DefaultHorizonsWait
	}
	if cfg.Ephemeris.CacheTTL == 0 {
		cfg.Ephemeris.CacheTTL = DefaultCacheTTL
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
}
