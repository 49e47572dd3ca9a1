// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// KVBackend selects the durable key-value store backing the record
	// store. Valid values: memory, redis, postgres. Defaults to "memory".
	KVBackend string

	// RedisAddr is the Redis host:port, used when KVBackend is "redis".
	// Defaults to "localhost:6379".
	RedisAddr string

	// DatabaseURL is the Postgres connection string.
	// Required only when KVBackend is "postgres".
	DatabaseURL string

	// GenerateTimeout bounds how long a plan request waits for the
	// generative backend before falling back to the offline generator.
	// Set GENERATE_TIMEOUT_MS to override. Defaults to 8 seconds.
	GenerateTimeout time.Duration

	// ReconcileSchedule is the cron spec for the background mutation-log
	// replay. Defaults to "@every 1m".
	ReconcileSchedule string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error for invalid or missing values.
func Load() (Config, error) {
	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		CORSOrigins:       splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		KVBackend:         getEnv("KV_BACKEND", "memory"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		ReconcileSchedule: getEnv("RECONCILE_SCHEDULE", "@every 1m"),
	}

	switch cfg.KVBackend {
	case "memory", "redis", "postgres":
	default:
		return Config{}, fmt.Errorf("invalid KV_BACKEND %q: must be memory, redis, or postgres", cfg.KVBackend)
	}

	if cfg.KVBackend == "postgres" && cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("required environment variables not set: DATABASE_URL")
	}

	ms, err := strconv.Atoi(getEnv("GENERATE_TIMEOUT_MS", "8000"))
	if err != nil || ms <= 0 {
		return Config{}, fmt.Errorf("invalid GENERATE_TIMEOUT_MS %q: must be a positive integer", os.Getenv("GENERATE_TIMEOUT_MS"))
	}
	cfg.GenerateTimeout = time.Duration(ms) * time.Millisecond

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
