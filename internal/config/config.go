// Package config loads and validates application configuration from
// environment variables, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the API server.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "3001".
	Port string

	// DatabaseURL is the Postgres connection string. When empty the server
	// keeps bookings in memory and loses them on restart.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["*"]. Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// AdminUsername and AdminPassword form the only credential accepted by
	// POST /auth and the basic-auth gate. Default admin / password123.
	AdminUsername string
	AdminPassword string

	// SeedBookings inserts ten bootstrap bookings at startup. Defaults to true.
	SeedBookings bool

	// MaxBodyBytes caps request body size. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables only.
func Load() (Config, error) {
	return LoadWithFile("")
}

// LoadWithFile loads envFile into the environment (variables already set win)
// and then reads the configuration. A missing envFile is not an error.
func LoadWithFile(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	cfg := Config{
		Port:          getEnv("PORT", "3001"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CORSOrigins:   splitCSV(getEnv("CORS_ORIGINS", "*")),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "password123"),
	}

	var invalid []string

	seed, err := strconv.ParseBool(getEnv("SEED_BOOKINGS", "true"))
	if err != nil {
		invalid = append(invalid, "SEED_BOOKINGS")
	}
	cfg.SeedBookings = seed

	maxBody, err := strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64)
	if err != nil || maxBody <= 0 {
		invalid = append(invalid, "MAX_BODY_BYTES")
	}
	cfg.MaxBodyBytes = maxBody

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

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
