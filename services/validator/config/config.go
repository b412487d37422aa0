package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/clearcheck/qualgate/services/validator/models"
)

// Config holds all configuration for the validator service.
type Config struct {
	Port        string        `json:"port"`
	ValidatorID string        `json:"validator_id"`
	LogLevel    string        `json:"log_level"`
	RateLimit   int           `json:"rate_limit"`
	RateWindow  time.Duration `json:"rate_window"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	config := &Config{
		Port:        getEnv("PORT", "8080"),
		ValidatorID: getEnv("VALIDATOR_ID", "qualgate-validator-1"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	limitStr := getEnv("RATE_LIMIT", "100")
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit: %v", err)
	}
	config.RateLimit = limit

	windowStr := getEnv("RATE_WINDOW_MINUTES", "15")
	windowMinutes, err := strconv.Atoi(windowStr)
	if err != nil {
		return nil, fmt.Errorf("invalid rate window: %v", err)
	}
	config.RateWindow = time.Duration(windowMinutes) * time.Minute

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.ValidatorID == "" {
		return fmt.Errorf("VALIDATOR_ID is required")
	}

	if c.RateLimit <= 0 {
		return fmt.Errorf("rate limit must be positive, got: %d", c.RateLimit)
	}

	if c.RateWindow <= 0 {
		return fmt.Errorf("rate window must be positive, got: %s", c.RateWindow)
	}

	return nil
}

// ScoringPolicy returns the scoring policy for the service. The policy is
// a fixed contract, not an environment knob; it lives here so the service
// has one place to source it from.
func (c *Config) ScoringPolicy() models.ScoringPolicy {
	return models.DefaultPolicy()
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
