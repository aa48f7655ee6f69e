// Package config loads the bridge configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

type Config struct {
	// PublicKey is the gateway credential every charge runs under.
	PublicKey string `validate:"required"`

	// LogLevel selects the zap logger level; empty keeps logging off.
	LogLevel string `validate:"omitempty,oneof=debug info warn error"`

	// Timeout bounds a submitted charge when > 0.
	Timeout time.Duration

	EnableMetrics bool
}

// Load reads a .env file when present, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from PAYSTACK_* environment variables.
func FromEnv() (*Config, error) {
	cfg := &Config{
		PublicKey: os.Getenv("PAYSTACK_PUBLIC_KEY"),
		LogLevel:  os.Getenv("PAYSTACK_LOG_LEVEL"),
	}

	if v := os.Getenv("PAYSTACK_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PAYSTACK_TIMEOUT: %w", err)
		}
		cfg.Timeout = d
	}

	if v := os.Getenv("PAYSTACK_ENABLE_METRICS"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PAYSTACK_ENABLE_METRICS: %w", err)
		}
		cfg.EnableMetrics = enabled
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
