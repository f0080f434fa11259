// Package config parses the command line and environment into an AppConfig.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	apperrors "github.com/agbru/coffeemachine/internal/errors"
)

// EnvPrefix is prepended to every environment variable read by the
// configuration layer, e.g. COFFEEMACHINE_ORDERS.
const EnvPrefix = "COFFEEMACHINE_"

// SupportedShells lists the shells accepted by --completion.
var SupportedShells = []string{"bash", "zsh", "fish"}

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Orders lists the beverages to queue, in order. Duplicates are allowed.
	Orders []string
	// MenuFile is an optional YAML menu registered on top of the built-in one.
	MenuFile string
	// Verbose enables debug logging and step-by-step output.
	Verbose bool
	// Quiet suppresses progress output; only the summary is printed.
	Quiet bool
	// TUI launches the interactive dashboard.
	TUI bool
	// Interactive launches the REPL.
	Interactive bool
	// NoColor disables ANSI colors.
	NoColor bool
	// LogLevel is a zerolog level name.
	LogLevel string
	// MetricsFile, when set, receives a Prometheus textfile after the run.
	MetricsFile string
	// Trace records an OpenTelemetry span per drain cycle.
	Trace bool
	// ListMenu prints the available beverages and exits.
	ListMenu bool
	// Completion is the shell to generate a completion script for.
	Completion string
}

// ParseConfig parses args into an AppConfig. Positional arguments and the
// comma-separated --orders flag are both beverage names; --orders comes
// first. Environment variables fill in any flag not set explicitly.
//
// Parameters:
//   - programName: The name shown in usage output.
//   - args: The command-line arguments, without the program name.
//   - errWriter: The writer for usage and parse errors.
//   - beverages: The built-in beverage names, listed in the usage text.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp for -h/--help, or a ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer, beverages []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags] [beverage ...]\n\n", programName)
		fmt.Fprintf(errWriter, "Queues each beverage and brews them in order.\n")
		fmt.Fprintf(errWriter, "Built-in beverages: %s\n\nFlags:\n", strings.Join(beverages, ", "))
		fs.PrintDefaults()
	}

	config := AppConfig{}
	var orders string
	fs.StringVar(&orders, "orders", "", "Comma-separated beverages to order (e.g. coffee,tea,coffee).")
	fs.StringVar(&config.MenuFile, "menu", "", "YAML menu file adding or overriding beverages.")
	fs.BoolVar(&config.Verbose, "v", false, "Shorthand for --verbose.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Log every preparation step.")
	fs.BoolVar(&config.Quiet, "q", false, "Shorthand for --quiet.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print only the final summary.")
	fs.BoolVar(&config.TUI, "tui", false, "Launch the interactive dashboard.")
	fs.BoolVar(&config.Interactive, "i", false, "Shorthand for --interactive.")
	fs.BoolVar(&config.Interactive, "interactive", false, "Start an interactive order session (REPL).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&config.LogLevel, "log-level", "", "Log level: debug, info, warn, error (default warn, debug with --verbose).")
	fs.StringVar(&config.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this file after the run.")
	fs.BoolVar(&config.Trace, "trace", false, "Record an OpenTelemetry span per brewing cycle.")
	fs.BoolVar(&config.ListMenu, "list", false, "List the available beverages and exit.")
	fs.StringVar(&config.Completion, "completion", "", "Generate a shell completion script (bash, zsh, fish).")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	config.Orders = append(SplitList(orders), fs.Args()...)
	applyEnvOverrides(&config, fs)
	config = ApplyDefaults(config)

	if err := config.Validate(); err != nil {
		fmt.Fprintln(errWriter, err)
		return AppConfig{}, err
	}
	return config, nil
}

// Validate checks mode combinations and enumerated values.
func (c AppConfig) Validate() error {
	if c.TUI && c.Interactive {
		return apperrors.NewConfigError("--tui and --interactive are mutually exclusive")
	}
	if c.Quiet && c.Verbose {
		return apperrors.NewConfigError("--quiet and --verbose are mutually exclusive")
	}
	if c.Completion != "" && !slices.Contains(SupportedShells, c.Completion) {
		return apperrors.NewConfigError("unsupported shell %q for --completion (want %s)",
			c.Completion, strings.Join(SupportedShells, ", "))
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return apperrors.NewConfigError("invalid --log-level %q", c.LogLevel)
	}
	for i, name := range c.Orders {
		if strings.TrimSpace(name) == "" {
			return apperrors.ValidationError{Field: fmt.Sprintf("orders[%d]", i), Message: "beverage name is empty"}
		}
	}
	return nil
}

// SplitList splits a comma-separated list, trimming spaces and dropping
// empty items.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
