package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	// Interest
	CompoundingFrequency int `env:"COMPOUNDING_FREQUENCY" envDefault:"12"`

	// Metrics
	MetricsNamespace string `env:"METRICS_NAMESPACE" envDefault:"gobank"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.CompoundingFrequency <= 0 {
		return nil, fmt.Errorf("COMPOUNDING_FREQUENCY must be positive, got %d", cfg.CompoundingFrequency)
	}

	return cfg, nil
}
