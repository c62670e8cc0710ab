package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	appName    = "cidades"
	configFile = "config.yaml"
)

// GetConfigDir returns the OS-appropriate configuration directory for the application.
// This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/cidades or $HOME/.config/cidades
//   - macOS: $HOME/.config/cidades
//   - Windows: %LOCALAPPDATA%\cidades
func GetConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, appName), nil
		}
		userProfile := os.Getenv("USERPROFILE")
		if userProfile == "" {
			return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
		}
		return filepath.Join(userProfile, "AppData", "Local", appName), nil

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil

	default:
		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			return filepath.Join(xdgConfigHome, appName), nil
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil
	}
}

// GetConfigPath returns the full path to the default configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// Load reads settings from path, or from the default location when path is
// empty. A missing file yields defaults. Files ending in .toml are decoded
// as TOML, everything else as YAML.
func Load(path string) (*Settings, error) {
	if path == "" {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewSettings(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	settings, err := Parse(data, isTOML(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return settings, nil
}

// Parse decodes settings from YAML or TOML and validates them.
func Parse(data []byte, asTOML bool) (*Settings, error) {
	var settings Settings
	if asTOML {
		if err := toml.Unmarshal(data, &settings); err != nil {
			return nil, err
		}
	} else {
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return nil, err
		}
	}

	settings.fillDefaults()
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Validate checks the settings for values the application cannot use.
func (s *Settings) Validate() error {
	if s.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", s.Version, CurrentVersion)
	}

	u, err := url.Parse(s.API.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid api.base_url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid api.base_url %q: must be an absolute http(s) URL", s.API.BaseURL)
	}

	if s.API.TimeoutSeconds < 0 {
		return fmt.Errorf("invalid api.timeout_seconds %d: must not be negative", s.API.TimeoutSeconds)
	}

	if _, err := s.LanguageTag(); err != nil {
		return err
	}

	switch s.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level %q", s.Logging.Level)
	}

	return nil
}

// LanguageTag parses the configured locale.
func (s *Settings) LanguageTag() (language.Tag, error) {
	tag, err := language.Parse(s.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", s.Locale, err)
	}
	return tag, nil
}

// Marshal encodes the settings as YAML.
func (s *Settings) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// Save writes the settings to path (the default location when empty).
// Performs an atomic write to prevent corruption on crash.
func (s *Settings) Save(path string) error {
	if path == "" {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var data []byte
	var err error
	if isTOML(path) {
		data, err = toml.Marshal(s)
	} else {
		data, err = s.Marshal()
		if err == nil {
			header := []byte("# cidades configuration file\n# Location: " + path + "\n\n")
			data = append(header, data...)
		}
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}
