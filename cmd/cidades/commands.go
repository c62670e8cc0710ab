package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/muurk/cidades/internal/catalog"
	"github.com/muurk/cidades/internal/config"
	"github.com/muurk/cidades/internal/ibge"
	"github.com/muurk/cidades/internal/selection"
	"github.com/muurk/cidades/internal/ui"
	"github.com/muurk/cidades/internal/urls"
)

// Output formats
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// Command flags
var (
	outputFormat string
	filterText   string
	forceInit    bool
)

func init() {
	rootCmd.AddCommand(estadosCmd)
	rootCmd.AddCommand(cidadesCmd)
	rootCmd.AddCommand(configCmd)

	estadosCmd.Flags().StringVar(&outputFormat, "format", formatTable, "Output format (table, json, yaml)")
	cidadesCmd.Flags().StringVar(&outputFormat, "format", formatTable, "Output format (table, json, yaml)")
	cidadesCmd.Flags().StringVar(&filterText, "filter", "", "Only cities whose name contains this text (case and accent insensitive)")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing settings file")
}

// estadosCmd lists the states
var estadosCmd = &cobra.Command{
	Use:   "estados",
	Short: "List Brazilian states",
	Long: `Fetch the list of states (UFs) from the IBGE localities API and print
it sorted by name.`,
	Example: `  # Table output
  cidades estados

  # JSON for scripting
  cidades estados --format json`,
	Args: cobra.NoArgs,
	RunE: runEstados,
}

func runEstados(cmd *cobra.Command, args []string) error {
	if err := validateFormat(outputFormat); err != nil {
		return err
	}
	locale, err := settings.LanguageTag()
	if err != nil {
		return err
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	client := newClient()

	states, err := client.FetchStates(cmd.Context())
	if err != nil {
		return reportFetchError(p, selection.StatesAlertTitle, err, "failed to fetch states")
	}
	states = catalog.SortStates(states, locale)

	if outputFormat != formatTable {
		return writeStructured(p.Writer(), outputFormat, states)
	}

	p.PrintHeader("Estados", cmd.CommandPath(),
		ui.Param{Key: "Fonte", Value: client.StatesURL()},
	)
	p.PrintStates(states)
	return nil
}

// cidadesCmd lists the cities of one state
var cidadesCmd = &cobra.Command{
	Use:   "cidades <UF>",
	Short: "List the cities of a state",
	Long: `Fetch the cities of a state from the IBGE localities API, sort them by
name and print them with their micro-region.

The UF is upper-cased and truncated to two characters. --filter keeps the
cities whose name contains the given text, ignoring case and accents.`,
	Example: `  # All cities of São Paulo
  cidades cidades SP

  # Cities with "sao" in the name, accents ignored
  cidades cidades SP --filter sao

  # YAML output
  cidades cidades mg --format yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runCidades,
}

func runCidades(cmd *cobra.Command, args []string) error {
	if err := validateFormat(outputFormat); err != nil {
		return err
	}
	locale, err := settings.LanguageTag()
	if err != nil {
		return err
	}

	code := ibge.SanitizeStateCode(args[0])
	p := ui.NewPrinter(cmd.OutOrStdout())
	client := newClient()

	cities, err := client.FetchCities(cmd.Context(), code)
	if err != nil {
		return reportFetchError(p, selection.CitiesAlertTitle, err, "failed to fetch cities for "+code)
	}
	sorted := catalog.SortCities(cities, locale)
	shown := catalog.FilterCities(sorted, filterText)

	if outputFormat != formatTable {
		return writeStructured(p.Writer(), outputFormat, shown)
	}

	params := []ui.Param{
		{Key: "Estado", Value: code},
		{Key: "Fonte", Value: client.CitiesURL(code)},
	}
	if filterText != "" {
		params = append(params, ui.Param{Key: "Filtro", Value: filterText})
	}
	p.PrintHeader("Cidades", cmd.CommandPath()+" "+code, params...)
	p.PrintCities(shown, len(sorted))
	return nil
}

// configCmd groups the settings file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the settings file",
	Long: `Create and inspect the cidades settings file.

Settings are resolved in this order: defaults, settings file, .env in the
working directory, CIDADES_* environment variables, command-line flags.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with default values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := settingsPath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil && !forceInit {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if err := config.NewSettings().Save(path); err != nil {
			return err
		}

		p := ui.NewPrinter(cmd.OutOrStdout())
		p.PrintSuccess("Configuração criada", ui.Param{Key: "Arquivo", Value: path})
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := settingsPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Long: `Print the settings after applying the settings file, .env, environment
variables and flags.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := settings.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

// settingsPath returns --config or the default location
func settingsPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}

func validateFormat(format string) error {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("unknown format %q (use %s, %s or %s)", format, formatTable, formatJSON, formatYAML)
	}
}

// writeStructured encodes v as JSON or YAML
func writeStructured(w io.Writer, format string, v interface{}) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return validateFormat(format)
	}
}

// reportFetchError prints a failure box for table output and returns the
// wrapped error
func reportFetchError(p *ui.Printer, title string, err error, action string) error {
	if outputFormat == formatTable {
		p.PrintError(title, errors.New(ibge.GetShortErrorMessage(err)), troubleshootingTips(err))
	}
	return fmt.Errorf("%s: %w", action, err)
}

// troubleshootingTips suggests fixes for a failed request
func troubleshootingTips(err error) []string {
	var svcErr *ibge.ServiceError
	if !errors.As(err, &svcErr) {
		return nil
	}

	switch svcErr.Type {
	case ibge.ErrTypeTimeout:
		return []string{
			"O serviço do IBGE pode estar lento",
			"Aumente o tempo limite com --timeout",
		}
	case ibge.ErrTypeDNS, ibge.ErrTypeConnectionRefused, ibge.ErrTypeNetwork:
		return []string{
			"Verifique sua conexão com a internet",
			"Confira a URL da API (--api-url ou " + config.EnvAPIURL + ")",
		}
	case ibge.ErrTypeHTTP:
		tips := []string{"O serviço do IBGE pode estar indisponível"}
		if svcErr.StatusCode == 404 {
			tips = append(tips, "Confira a sigla do estado e a URL da API")
		}
		return append(tips, "Documentação da API: "+urls.LocalitiesAPIDocs)
	case ibge.ErrTypeParse:
		return []string{
			"A resposta não veio no formato esperado",
			"Confira se --api-url aponta para a API de localidades",
			"Documentação da API: " + urls.LocalitiesAPIDocs,
		}
	case ibge.ErrTypeValidation:
		return []string{"Informe a sigla do estado com duas letras, ex.: SP"}
	default:
		return nil
	}
}
