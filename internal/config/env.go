package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override the settings file
const (
	EnvAPIURL   = "CIDADES_API_URL"
	EnvTimeout  = "CIDADES_TIMEOUT"
	EnvLogLevel = "CIDADES_LOG_LEVEL"
	EnvLogFile  = "CIDADES_LOG_FILE"
	EnvLocale   = "CIDADES_LOCALE"
)

// LoadDotEnv loads variables from the given .env files (".env" when none
// are given) without overriding variables already set. Missing files are
// ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides settings with CIDADES_* environment variables and
// validates the result.
func (s *Settings) ApplyEnv() error {
	if v := os.Getenv(EnvAPIURL); v != "" {
		s.API.BaseURL = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvTimeout, v, err)
		}
		s.API.TimeoutSeconds = seconds
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		s.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		s.Logging.File = v
	}
	if v := os.Getenv(EnvLocale); v != "" {
		s.Locale = v
	}
	return s.Validate()
}

// Resolve loads the settings file (path may be empty), then applies .env
// and environment overrides.
func Resolve(path string) (*Settings, error) {
	settings, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := LoadDotEnv(); err != nil {
		return nil, err
	}
	if err := settings.ApplyEnv(); err != nil {
		return nil, err
	}
	return settings, nil
}
