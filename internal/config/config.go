// Package config holds the fixed domain constants of the ledger and the
// runtime configuration read from the environment.
package config

import (
	"os"
	"strconv"
)

// Config is the runtime configuration of the backend, read from the
// environment after godotenv has loaded any .env file.
type Config struct {
	ListenAddr  string
	StoreDriver string // "redis" or "postgres"

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	PostgresDSN string

	JWTSecret string

	LogLevel  string
	LogFormat string // "json" or "console"
}

// FromEnv builds a Config from environment variables, falling back to the
// local development defaults.
func FromEnv() Config {
	return Config{
		ListenAddr:    envOr("LISTEN_ADDR", ":8080"),
		StoreDriver:   envOr("STORE_DRIVER", "redis"),
		RedisAddr:     envOr("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       envIntOr("REDIS_DB", 0),
		PostgresDSN:   envOr("POSTGRES_DSN", "host=localhost user=user password=password dbname=hosteldb port=5432 sslmode=disable"),
		JWTSecret:     envOr("JWT_SECRET", "dev-only-secret"),
		LogLevel:      envOr("LOG_LEVEL", "info"),
		LogFormat:     envOr("LOG_FORMAT", "console"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
