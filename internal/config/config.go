package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"normtest/domain/normality"
	"normtest/internal/errors"

	"gopkg.in/yaml.v3"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig        `yaml:"database"`
	Server   ServerConfig          `yaml:"server"`
	Defaults normality.TestContext `yaml:"defaults"`
	Battery  BatteryConfig         `yaml:"battery"`
	LogLevel string                `yaml:"log_level"`
}

// DatabaseConfig holds database connection settings. An empty URL keeps
// results in memory.
type DatabaseConfig struct {
	URL          string `yaml:"url"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

// BatteryConfig bounds EvaluateAll
type BatteryConfig struct {
	Concurrency   int `yaml:"concurrency"`
	MaxSampleSize int `yaml:"max_sample_size"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			MaxOpenConns: 10,
			MaxIdleConns: 5,
		},
		Server: ServerConfig{
			Port:    "8080",
			GinMode: "debug",
		},
		Defaults: normality.DefaultTestContext(),
		Battery: BatteryConfig{
			Concurrency:   len(normality.Tests()),
			MaxSampleSize: 100000,
		},
		LogLevel: "INFO",
	}
}

// Load builds the configuration from defaults, the optional YAML file named
// by NORMTEST_CONFIG, then environment variables, and validates it
func Load() (*Config, error) {
	config := Default()

	if path := os.Getenv("NORMTEST_CONFIG"); path != "" {
		if err := config.loadFile(path); err != nil {
			return nil, errors.Wrapf(err, "failed to load config file %s", path)
		}
	}

	config.applyEnv()

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.WithCode(errors.CodeConfigInvalid, fmt.Errorf("failed to parse config: %w", err))
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Database.URL = getEnvOrDefault("DATABASE_URL", c.Database.URL)
	c.Database.MaxOpenConns = getEnvIntOrDefault("DB_MAX_OPEN_CONNS", c.Database.MaxOpenConns)
	c.Database.MaxIdleConns = getEnvIntOrDefault("DB_MAX_IDLE_CONNS", c.Database.MaxIdleConns)

	c.Server.Port = getEnvOrDefault("PORT", c.Server.Port)
	c.Server.GinMode = getEnvOrDefault("GIN_MODE", c.Server.GinMode)

	c.Defaults.Alpha = getEnvFloatOrDefault("NORMTEST_ALPHA", c.Defaults.Alpha)
	c.Defaults.Language = getEnvOrDefault("NORMTEST_LANGUAGE", c.Defaults.Language)
	c.Defaults.Digits = getEnvIntOrDefault("NORMTEST_DIGITS", c.Defaults.Digits)

	c.Battery.Concurrency = getEnvIntOrDefault("NORMTEST_BATTERY_CONCURRENCY", c.Battery.Concurrency)
	c.Battery.MaxSampleSize = getEnvIntOrDefault("NORMTEST_MAX_SAMPLE_SIZE", c.Battery.MaxSampleSize)

	c.LogLevel = strings.ToUpper(getEnvOrDefault("LOG_LEVEL", c.LogLevel))
}

// UsesDatabase reports whether results go to PostgreSQL
func (c *Config) UsesDatabase() bool {
	return c.Database.URL != ""
}

func validateConfig(config *Config) error {
	if err := config.Defaults.Validate(); err != nil {
		return errors.WithCode(errors.CodeConfigInvalid, err)
	}
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Battery.Concurrency < 1 {
		return errors.ConfigInvalid("battery concurrency must be at least 1")
	}
	if config.Battery.MaxSampleSize < 1 {
		return errors.ConfigInvalid("max sample size must be at least 1")
	}
	switch config.LogLevel {
	case "ERROR", "WARN", "INFO", "DEBUG", "TRACE":
	default:
		return errors.ConfigInvalid(fmt.Sprintf("unknown log level %q", config.LogLevel))
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
