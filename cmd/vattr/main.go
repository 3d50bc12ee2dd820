package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vattr/internal/config"
	"github.com/vango-dev/vattr/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┬  ┬┌─┐┌┬┐┌┬┐┬─┐
  └┐┌┘├─┤ │  │ ├┬┘
   └┘ ┴ ┴ ┴  ┴ ┴└─
`

// app holds the state shared by all commands once the root command has
// loaded the configuration.
type app struct {
	cfg    *config.Config
	logger *slog.Logger

	errorFormat string
	noColor     bool
}

func main() {
	a := &app{}
	if err := newRootCmd(a).Execute(); err != nil {
		noColor := a.noColor || os.Getenv("NO_COLOR") != ""
		reportError(os.Stderr, err, a.errorFormat, noColor)
		os.Exit(1)
	}
}

// reportError writes err in the given format: "text" (default),
// "compact" or "json". Errors without a code are reported as E400.
func reportError(w io.Writer, err error, format string, noColor bool) {
	if noColor {
		errors.DisableColors()
	} else {
		errors.EnableColors()
	}

	ve := errors.FromError(err, "E400")
	switch format {
	case "json":
		fmt.Fprintln(w, ve.FormatJSON())
	case "compact":
		fmt.Fprintln(w, ve.FormatCompact())
	default:
		fmt.Fprintln(w, ve.Format())
	}
}

func newRootCmd(a *app) *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	rootCmd := &cobra.Command{
		Use:   "vattr",
		Short: "Reactive HTML attribute values",
		Long: `vattr evaluates, renders and serves reactive HTML attributes.

An attribute is a literal string, an optional string, a boolean flag,
or a reactive function producing another attribute. Commands:

  • eval    format a single attribute
  • render  render an element and optionally publish it
  • serve   serve a live page whose attributes follow a signal`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch a.errorFormat {
			case "text", "compact", "json":
			default:
				format := a.errorFormat
				a.errorFormat = "text"
				return errors.New("E400").
					WithDetail(fmt.Sprintf("unknown --error-format %q", format)).
					WithSuggestion("Use text, compact or json")
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)
			a.cfg = cfg
			a.logger = logger
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to vattr.json (default ./vattr.json if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&a.errorFormat, "error-format", "text", "Error output: text, compact, json")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored error output")

	rootCmd.AddCommand(
		evalCmd(a),
		renderCmd(a),
		serveCmd(a),
		versionCmd(),
	)
	return rootCmd
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadOrDefault(".")
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return config.Load(path)
	}
	return config.LoadFile(path)
}

func newLogger(cfg *config.Config) (*slog.Logger, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
}

// printBanner prints the vattr ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
