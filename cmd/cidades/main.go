// Cidades browses Brazilian states and their cities using the IBGE
// localities API.
//
// Running without arguments launches the interactive browser: pick a
// state, confirm, and filter its cities by name. The subcommands print the
// same data for scripting.
//
// Usage:
//
//	cidades [command] [flags]
//
// See 'cidades --help' for available commands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/cidades/internal/catalog"
	"github.com/muurk/cidades/internal/config"
	"github.com/muurk/cidades/internal/ibge"
	"github.com/muurk/cidades/internal/logging"
	"github.com/muurk/cidades/internal/selection"
	"github.com/muurk/cidades/internal/tui"
	"github.com/muurk/cidades/internal/version"
)

// Global flags
var (
	configPath     string
	apiURL         string
	timeoutSeconds int
	logLevel       string
	logFile        string
)

// settings holds the effective configuration once PersistentPreRunE ran
var settings *config.Settings

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	logging.Sync()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cidades",
	Short: "Brazilian states and cities browser",
	Long: `Browse Brazilian states and their cities using the IBGE localities API.

Pick a state, confirm with OK, and the state's cities are listed with their
micro-region. The list can be filtered by name, ignoring case and accents.
Cities fetched once are kept for the rest of the session.

If no command is specified, the interactive browser launches automatically.`,
	Version:       version.Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runTUI,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Assigned here: setup refers to rootCmd
	rootCmd.PersistentPreRunE = setup

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file (default: "+defaultConfigHint()+")")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "IBGE localities API base URL")
	rootCmd.PersistentFlags().IntVar(&timeoutSeconds, "timeout", config.DefaultTimeoutSeconds, "HTTP timeout in seconds (0 disables)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "cidades %s (commit: %s)\n", version.Version, version.Commit)
	},
}

func defaultConfigHint() string {
	path, err := config.GetConfigPath()
	if err != nil {
		return "config.yaml in the user config directory"
	}
	return path
}

// setup resolves the effective settings and starts logging. Flags win over
// environment, .env and the settings file.
func setup(cmd *cobra.Command, args []string) error {
	s, err := config.Resolve(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("api-url") {
		s.API.BaseURL = apiURL
	}
	if flags.Changed("timeout") {
		s.API.TimeoutSeconds = timeoutSeconds
	}
	if flags.Changed("log-level") {
		s.Logging.Level = logLevel
	}
	if flags.Changed("log-file") {
		s.Logging.File = logFile
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	settings = s

	file := s.Logging.File
	if cmd == rootCmd && s.Logging.Level != "" && file == "" {
		// The browser owns the terminal, so logs cannot go to stderr
		file, err = defaultLogFile()
		if err != nil {
			return err
		}
	}
	if err := logging.Initialize(s.Logging.Level, file); err != nil {
		return err
	}

	logging.Debug("settings resolved",
		zap.String("api_url", s.API.BaseURL),
		zap.Duration("timeout", s.Timeout()),
		zap.String("locale", s.Locale),
	)
	return nil
}

// defaultLogFile returns cidades.log in the config directory, creating
// the directory when needed
func defaultLogFile() (string, error) {
	dir, err := config.GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return filepath.Join(dir, "cidades.log"), nil
}

// newClient builds the IBGE client from the effective settings
func newClient() *ibge.Client {
	return ibge.NewClient(settings.API.BaseURL, settings.Timeout())
}

func runTUI(cmd *cobra.Command, args []string) error {
	locale, err := settings.LanguageTag()
	if err != nil {
		return err
	}

	ctrl := selection.NewController(catalog.NewCityCache(), locale)
	model := tui.NewModel(cmd.Context(), newClient(), ctrl)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interface error: %w", err)
	}
	return nil
}
