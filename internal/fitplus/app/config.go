package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	PasswordModePlaintext = "plaintext"
	PasswordModeArgon2    = "argon2"
)

type Config struct {
	DatabaseFile  string        // Optional: path to the SQLite database file (default: fitplus.db)
	DatabaseURL   string        // Optional: PostgreSQL connection string; replaces the SQLite file when set
	PasswordMode  string        // Optional: plaintext or argon2 (default: plaintext)
	PepperFile    string        // Optional: pepper for argon2 mode (default: pepper)
	LoginAttempts int           // Optional: login attempts allowed per window per username; 0 disables (default: 5)
	LoginWindow   time.Duration // Optional: login throttling window (default: 1m)
	Env           string        // Environment (dev, prod) (default: prod)
	LogLevel      string        // Log level (debug, info, warn, error) (default: info)
	LogFormat     string        // Log format (json, text) (default: text)
	LogFile       string        // Optional: also append logs to this file (default: fitplus.log)
}

// LoadConfig reads the environment, after loading a .env file from the
// working directory when present. Variables already set take precedence
// over the file.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Config{
		DatabaseFile:  getEnvOrDefault("FITPLUS_DATABASE_FILE", "fitplus.db"),
		DatabaseURL:   os.Getenv("FITPLUS_DATABASE_URL"),
		PasswordMode:  strings.ToLower(getEnvOrDefault("FITPLUS_PASSWORD_MODE", PasswordModePlaintext)),
		PepperFile:    getEnvOrDefault("FITPLUS_PEPPER_FILE", "pepper"),
		LoginAttempts: getEnvIntOrDefault("FITPLUS_LOGIN_ATTEMPTS", 5),
		LoginWindow:   getEnvDurationOrDefault("FITPLUS_LOGIN_WINDOW", time.Minute),
		Env:           getEnvOrDefault("ENV", "prod"),
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:     getEnvOrDefault("LOG_FORMAT", "text"),
		LogFile:       getEnvOrDefault("LOG_FILE", "fitplus.log"),
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.PasswordMode {
	case PasswordModePlaintext, PasswordModeArgon2:
	default:
		return fmt.Errorf("FITPLUS_PASSWORD_MODE must be %q or %q, got %q",
			PasswordModePlaintext, PasswordModeArgon2, c.PasswordMode)
	}
	if c.DatabaseURL == "" && c.DatabaseFile == "" {
		return errors.New("FITPLUS_DATABASE_FILE must not be empty")
	}
	if c.LoginAttempts < 0 {
		return errors.New("FITPLUS_LOGIN_ATTEMPTS must not be negative")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds.
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
