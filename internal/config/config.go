// Package config manages application configuration
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Runtime settings
	Environment string // "development" or "production"

	// Security
	SecretKey string // For signing session tokens

	// Authentication policy
	MaxPINAttempts  int
	LockoutDuration time.Duration
	SessionDuration time.Duration
}

// Load reads configuration from environment variables with sensible defaults
func Load() *Config {
	return &Config{
		Environment:     getEnv("ATM_ENV", "development"),
		SecretKey:       getEnv("ATM_SECRET_KEY", "dev-secret-key-change-in-production"),
		MaxPINAttempts:  getIntEnv("ATM_MAX_PIN_ATTEMPTS", 3),
		LockoutDuration: getDurationEnv("ATM_LOCKOUT_DURATION", 30*time.Second),
		SessionDuration: getDurationEnv("ATM_SESSION_DURATION", 15*time.Minute),
	}
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
