package main

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/igzzr/unix-sytle-utils/pkg/ust"
)

// Config holds the CLI configuration, read from UST_* environment
// variables.
type Config struct {
	LogLevel  string `envconfig:"LOG_LEVEL" default:"warn"`
	CmpBuffer int    `envconfig:"CMP_BUFFER" default:"4096"`
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("ust", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadConfigOrDefault loads configuration from environment or returns the
// defaults.
func LoadConfigOrDefault() *Config {
	cfg, err := LoadConfig()
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "warn",
		CmpBuffer: ust.DefaultCmpBuffer,
	}
}
