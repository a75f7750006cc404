package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/booking-api/internal/config"
)

var configVars = []string{
	"PORT", "DATABASE_URL", "LOG_LEVEL", "CORS_ORIGINS",
	"ADMIN_USERNAME", "ADMIN_PASSWORD", "SEED_BOOKINGS", "MAX_BODY_BYTES",
}

// clearEnv blanks every variable Load reads; t.Setenv restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configVars {
		t.Setenv(k, "")
	}
}

func TestLoad_defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, config.Config{
		Port:          "3001",
		LogLevel:      "info",
		CORSOrigins:   []string{"*"},
		AdminUsername: "admin",
		AdminPassword: "password123",
		SeedBookings:  true,
		MaxBodyBytes:  1 << 20,
	}, cfg)
}

func TestLoad_overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://booker:booker@db:5432/booker")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("ADMIN_USERNAME", "root")
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	t.Setenv("SEED_BOOKINGS", "false")
	t.Setenv("MAX_BODY_BYTES", "2048")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres://booker:booker@db:5432/booker", cfg.DatabaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, "root", cfg.AdminUsername)
	assert.Equal(t, "s3cret", cfg.AdminPassword)
	assert.False(t, cfg.SeedBookings)
	assert.EqualValues(t, 2048, cfg.MaxBodyBytes)
}

func TestLoad_invalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("SEED_BOOKINGS", "sometimes")
	t.Setenv("MAX_BODY_BYTES", "-1")

	_, err := config.Load()

	require.Error(t, err)
	assert.ErrorContains(t, err, "SEED_BOOKINGS")
	assert.ErrorContains(t, err, "MAX_BODY_BYTES")
}

func TestLoadWithFile_envFile(t *testing.T) {
	clearEnv(t)
	// godotenv only fills variables that are unset, not merely empty.
	for _, k := range []string{"PORT", "ADMIN_PASSWORD"} {
		require.NoError(t, os.Unsetenv(k))
	}
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=4000\nADMIN_PASSWORD=fromfile\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("PORT")
		os.Unsetenv("ADMIN_PASSWORD")
	})

	cfg, err := config.LoadWithFile(path)

	require.NoError(t, err)
	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "fromfile", cfg.AdminPassword)
}

func TestLoadWithFile_missingFileIsIgnored(t *testing.T) {
	clearEnv(t)

	cfg, err := config.LoadWithFile(filepath.Join(t.TempDir(), "absent.env"))

	require.NoError(t, err)
	assert.Equal(t, "3001", cfg.Port)
}
