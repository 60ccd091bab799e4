// Package config handles application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultHTTPTimeout applies when HTTP_TIMEOUT_SECONDS is unset.
const DefaultHTTPTimeout = 10 * time.Second

// Config holds all application configuration.
type Config struct {
	Port        string
	Env         string
	HTTPTimeout time.Duration
	StrictParse bool
	LogLevel    string
	LogFile     string
}

// Load reads configuration from environment variables with sensible defaults.
// Values from a .env file in the working directory are applied first; real
// environment variables take precedence over them.
func Load() *Config {
	// A missing .env is the normal case in production.
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "3000"),
		Env:         getEnv("ENV", "development"),
		HTTPTimeout: getDurationEnv("HTTP_TIMEOUT_SECONDS", DefaultHTTPTimeout),
		StrictParse: getBoolEnv("PARSE_STRICT", false),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFile:     getEnv("LOG_FILE", ""),
	}
}

// LoadFile reads configuration like Load, but takes the .env values from the
// named files instead of ./.env.
func LoadFile(filenames ...string) (*Config, error) {
	if err := godotenv.Load(filenames...); err != nil {
		return nil, fmt.Errorf("loading env file: %w", err)
	}
	return Load(), nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	var errs []error
	if port, err := strconv.Atoi(c.Port); err != nil || port <= 0 || port > 65535 {
		errs = append(errs, fmt.Errorf("invalid PORT %q", c.Port))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid LOG_LEVEL %q", c.LogLevel))
	}
	if c.HTTPTimeout <= 0 {
		errs = append(errs, errors.New("HTTP_TIMEOUT_SECONDS must be positive"))
	}
	return errors.Join(errs...)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
