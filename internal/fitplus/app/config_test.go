package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// clearEnv unsets keys for the duration of the test.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

var configKeys = []string{
	"FITPLUS_DATABASE_FILE", "FITPLUS_DATABASE_URL", "FITPLUS_PASSWORD_MODE",
	"FITPLUS_PEPPER_FILE", "FITPLUS_LOGIN_ATTEMPTS", "FITPLUS_LOGIN_WINDOW",
	"ENV", "LOG_LEVEL", "LOG_FORMAT", "LOG_FILE",
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	clearEnv(t, configKeys...)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "fitplus.db", cfg.DatabaseFile)
	require.Empty(t, cfg.DatabaseURL)
	require.Equal(t, PasswordModePlaintext, cfg.PasswordMode)
	require.Equal(t, "pepper", cfg.PepperFile)
	require.Equal(t, 5, cfg.LoginAttempts)
	require.Equal(t, time.Minute, cfg.LoginWindow)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "text", cfg.LogFormat)
	require.Equal(t, "fitplus.log", cfg.LogFile)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	clearEnv(t, configKeys...)

	t.Setenv("FITPLUS_DATABASE_FILE", "/tmp/x.db")
	t.Setenv("FITPLUS_PASSWORD_MODE", "ARGON2")
	t.Setenv("FITPLUS_LOGIN_ATTEMPTS", "0")
	t.Setenv("FITPLUS_LOGIN_WINDOW", "90")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "/tmp/x.db", cfg.DatabaseFile)
	require.Equal(t, PasswordModeArgon2, cfg.PasswordMode)
	require.Equal(t, 0, cfg.LoginAttempts)
	require.Equal(t, 90*time.Second, cfg.LoginWindow)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	clearEnv(t, configKeys...)

	// Process environment wins over the file.
	t.Setenv("LOG_LEVEL", "warn")

	dotenv := "FITPLUS_DATABASE_FILE=from-file.db\nLOG_LEVEL=debug\nFITPLUS_LOGIN_WINDOW=2m\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(dotenv), 0o600))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "from-file.db", cfg.DatabaseFile)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, 2*time.Minute, cfg.LoginWindow)
}

func TestLoadConfigRejectsUnknownPasswordMode(t *testing.T) {
	t.Chdir(t.TempDir())
	clearEnv(t, configKeys...)
	t.Setenv("FITPLUS_PASSWORD_MODE", "rot13")

	_, err := LoadConfig()
	require.ErrorContains(t, err, "FITPLUS_PASSWORD_MODE")
}

func TestInvalidNumbersFallBackToDefaults(t *testing.T) {
	clearEnv(t, "FITPLUS_LOGIN_ATTEMPTS", "FITPLUS_LOGIN_WINDOW")
	t.Setenv("FITPLUS_LOGIN_ATTEMPTS", "many")
	t.Setenv("FITPLUS_LOGIN_WINDOW", "soon")

	require.Equal(t, 5, getEnvIntOrDefault("FITPLUS_LOGIN_ATTEMPTS", 5))
	require.Equal(t, time.Minute, getEnvDurationOrDefault("FITPLUS_LOGIN_WINDOW", time.Minute))
}
