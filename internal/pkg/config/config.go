package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	GoogleMaps GoogleMapsConfig `mapstructure:"googlemaps"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Session    SessionConfig    `mapstructure:"session"`
	Telemetry  TelemetryConfig  `mapstructure:"telemetry"`
}

type ServerConfig struct {
	Port         int `mapstructure:"port"`
	ReadTimeout  int `mapstructure:"read_timeout"`
	WriteTimeout int `mapstructure:"write_timeout"`
}

type GoogleMapsConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"` // seconds
}

// CacheConfig carries per-cache TTLs and the shared sweep interval,
// all in seconds.
type CacheConfig struct {
	SearchTTL     int `mapstructure:"search_ttl"`
	DetailsTTL    int `mapstructure:"details_ttl"`
	GeocodeTTL    int `mapstructure:"geocode_ttl"`
	SweepInterval int `mapstructure:"sweep_interval"`
}

// SessionConfig carries the session lifetime and sweep interval in seconds.
type SessionConfig struct {
	Expiry        int `mapstructure:"expiry"`
	SweepInterval int `mapstructure:"sweep_interval"`
}

type TelemetryConfig struct {
	ServiceName string `mapstructure:"service_name"`
	OTLPAddr    string `mapstructure:"otlp_addr"`
	Enabled     bool   `mapstructure:"enabled"`
}

func (c CacheConfig) SearchTTLDuration() time.Duration  { return time.Duration(c.SearchTTL) * time.Second }
func (c CacheConfig) DetailsTTLDuration() time.Duration { return time.Duration(c.DetailsTTL) * time.Second }
func (c CacheConfig) GeocodeTTLDuration() time.Duration { return time.Duration(c.GeocodeTTL) * time.Second }
func (c CacheConfig) SweepIntervalDuration() time.Duration {
	return time.Duration(c.SweepInterval) * time.Second
}

func (c SessionConfig) ExpiryDuration() time.Duration { return time.Duration(c.Expiry) * time.Second }
func (c SessionConfig) SweepIntervalDuration() time.Duration {
	return time.Duration(c.SweepInterval) * time.Second
}

// Load reads configuration from file and environment variables.
func Load(service string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("googlemaps.api_key", "")
	v.SetDefault("googlemaps.base_url", "https://maps.googleapis.com/maps/api")
	v.SetDefault("googlemaps.timeout", 10)
	v.SetDefault("cache.search_ttl", 300)    // 5 min
	v.SetDefault("cache.details_ttl", 300)   // 5 min
	v.SetDefault("cache.geocode_ttl", 600)   // 10 min, addresses rarely move
	v.SetDefault("cache.sweep_interval", 300)
	v.SetDefault("session.expiry", 1800)        // 30 min
	v.SetDefault("session.sweep_interval", 300) // 5 min
	v.SetDefault("telemetry.service_name", service)
	v.SetDefault("telemetry.otlp_addr", "tempo:4317")
	v.SetDefault("telemetry.enabled", false)

	// Config file (optional)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	_ = v.ReadInConfig() // OK if missing

	// Environment variables: LOCALHUB_GOOGLEMAPS_API_KEY → googlemaps.api_key
	v.SetEnvPrefix("LOCALHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that required configuration fields are present and sane.
func (c *Config) Validate() error {
	var errs []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port must be 1-65535, got %d", c.Server.Port))
	}
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, "server.read_timeout must be positive")
	}
	if c.Server.WriteTimeout <= 0 {
		errs = append(errs, "server.write_timeout must be positive")
	}
	if c.GoogleMaps.BaseURL == "" {
		errs = append(errs, "googlemaps.base_url is required")
	}
	if c.GoogleMaps.Timeout <= 0 {
		errs = append(errs, "googlemaps.timeout must be positive")
	}
	if c.Cache.SearchTTL <= 0 || c.Cache.DetailsTTL <= 0 || c.Cache.GeocodeTTL <= 0 {
		errs = append(errs, "cache TTLs must be positive")
	}
	if c.Cache.SweepInterval <= 0 {
		errs = append(errs, "cache.sweep_interval must be positive")
	}
	if c.Session.Expiry <= 0 {
		errs = append(errs, "session.expiry must be positive")
	}
	if c.Session.SweepInterval <= 0 {
		errs = append(errs, "session.sweep_interval must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
