// Package config manages cidades user settings.
//
// Settings live in a YAML file in the OS configuration directory:
//   - Linux: $XDG_CONFIG_HOME/cidades/config.yaml or ~/.config/cidades/config.yaml
//   - macOS: ~/.config/cidades/config.yaml
//   - Windows: %LOCALAPPDATA%\cidades\config.yaml
//
// A file passed explicitly may also be TOML (detected by the .toml
// extension).
//
// # File Format
//
//	version: 1
//	api:
//	  base_url: https://servicodados.ibge.gov.br/api/v1/localidades
//	  timeout_seconds: 30
//	logging:
//	  level: debug
//	  file: /tmp/cidades.log
//	locale: pt-BR
//
// # Precedence
//
// Defaults, then the settings file, then a .env file in the working
// directory, then CIDADES_* environment variables. Command-line flags are
// applied last by the CLI.
//
//	settings, err := config.Resolve("")
//	if err != nil {
//	    return err
//	}
//
// # Atomic Writes
//
// Save writes to a temporary file and renames it into place so a crash
// never leaves a truncated configuration behind.
package config
