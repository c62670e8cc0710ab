package config

import "time"

// CurrentVersion is the settings file format version.
const CurrentVersion = 1

// Settings represents the entire user configuration file.
type Settings struct {
	Version int         `yaml:"version" toml:"version"`
	API     APISettings `yaml:"api" toml:"api"`
	Logging LogSettings `yaml:"logging" toml:"logging"`
	Locale  string      `yaml:"locale" toml:"locale"` // BCP 47 tag used for name ordering
}

// APISettings configures the geography service client.
type APISettings struct {
	BaseURL        string `yaml:"base_url" toml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds" toml:"timeout_seconds"` // 0 disables the client-side timeout
}

// LogSettings configures diagnostic logging.
type LogSettings struct {
	Level string `yaml:"level" toml:"level"` // empty = silent
	File  string `yaml:"file" toml:"file"`
}

// Default values
const (
	DefaultBaseURL        = "https://servicodados.ibge.gov.br/api/v1/localidades"
	DefaultTimeoutSeconds = 30
	DefaultLocale         = "pt-BR"
)

// NewSettings creates Settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: CurrentVersion,
		API: APISettings{
			BaseURL:        DefaultBaseURL,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		Locale: DefaultLocale,
	}
}

// Timeout returns the API timeout as a duration.
func (s *Settings) Timeout() time.Duration {
	return time.Duration(s.API.TimeoutSeconds) * time.Second
}

// fillDefaults restores defaults for fields left empty in a loaded file.
func (s *Settings) fillDefaults() {
	if s.Version == 0 {
		s.Version = CurrentVersion
	}
	if s.API.BaseURL == "" {
		s.API.BaseURL = DefaultBaseURL
	}
	if s.Locale == "" {
		s.Locale = DefaultLocale
	}
}
