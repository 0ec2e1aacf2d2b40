// Package config loads runtime settings from environment variables.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

const defaultAPIBaseURL = "https://api.proxybase.xyz"

// Config captures the small set of knobs the bridge needs: where the
// ProxyBase API lives, how chatty logging is, and how long a backend call
// may take.
type Config struct {
	APIBaseURL  string        `env:"PROXYBASE_API_URL" envDefault:"https://api.proxybase.xyz"`
	LogLevel    string        `env:"PROXYBASE_LOG_LEVEL" envDefault:"info"`
	HTTPTimeout time.Duration `env:"PROXYBASE_HTTP_TIMEOUT" envDefault:"30s"`
}

// Load reads configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	cfg.APIBaseURL = strings.TrimSpace(cfg.APIBaseURL)
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = defaultAPIBaseURL
	}

	parsed, err := url.Parse(cfg.APIBaseURL)
	if err != nil {
		return Config{}, fmt.Errorf("invalid PROXYBASE_API_URL: %w", err)
	}
	if !parsed.IsAbs() {
		return Config{}, fmt.Errorf("PROXYBASE_API_URL must be absolute (scheme://host): %q", cfg.APIBaseURL)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("invalid PROXYBASE_LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	if cfg.HTTPTimeout <= 0 {
		return Config{}, fmt.Errorf("PROXYBASE_HTTP_TIMEOUT must be positive, got %s", cfg.HTTPTimeout)
	}

	return cfg, nil
}
