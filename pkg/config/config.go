// Package config holds the environment-driven configuration for the
// HTTP/WS transport. Grounded on the teacher's pkg/config.Config
// (env-var driven, getEnv fallback helper); the JWT/puzzle-file fields
// are dropped (no persistence, no auth in scope) and replaced with the
// transport fields the expanded spec's driver needs.
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port           string
	LogLevel       string
	WSPingInterval time.Duration
}

// Load reads configuration from environment variables, falling back to
// sane local-dev defaults (matching the teacher's getEnv pattern).
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		WSPingInterval: getEnvDuration("WS_PING_INTERVAL", 30*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	if seconds, err := strconv.Atoi(val); err == nil {
		return time.Duration(seconds) * time.Second
	}
	return fallback
}
