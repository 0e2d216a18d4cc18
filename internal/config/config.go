// Package config loads host configuration for the contestctl CLI from an
// optional YAML file with environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/contestlet/contestlet/internal/timezone"
)

// Config holds the CLI host settings.
type Config struct {
	// Timezone is the admin display zone used when a payload or flag does
	// not supply one. Must be in the supported set.
	Timezone string `yaml:"timezone"`
	// DefaultDurationDays is the campaign length assumed by the date
	// reconciler when an import omits it.
	DefaultDurationDays int    `yaml:"default_duration_days"`
	LogLevel            string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Timezone:            string(timezone.UTC),
		DefaultDurationDays: 7,
		LogLevel:            "info",
	}
}

// Load reads the optional YAML file at path, applies environment overrides
// (CONTESTLET_TIMEZONE, CONTESTLET_DEFAULT_DURATION_DAYS,
// CONTESTLET_LOG_LEVEL) and validates the timezone against the supported
// set. An empty path skips the file and uses defaults plus environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.Timezone = getEnv("CONTESTLET_TIMEZONE", cfg.Timezone)
	cfg.DefaultDurationDays = getEnvAsInt("CONTESTLET_DEFAULT_DURATION_DAYS", cfg.DefaultDurationDays)
	cfg.LogLevel = getEnv("CONTESTLET_LOG_LEVEL", cfg.LogLevel)

	if _, err := timezone.Lookup(timezone.ID(cfg.Timezone)); err != nil {
		return Config{}, err
	}
	if cfg.DefaultDurationDays < 1 {
		return Config{}, fmt.Errorf("default_duration_days must be at least 1, got %d", cfg.DefaultDurationDays)
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
