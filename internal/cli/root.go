package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/pagenav/internal/config"
	"github.com/rshade/pagenav/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the pagenav CLI.
// It loads the configuration, wires up logging and tracing, and registers
// the pagination, rendering and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "pagenav",
		Short:         "Pagination calculator and navigation renderer",
		Long:          "pagenav: compute page series, links, headers and navigation markup for paginated listings",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	pf := cmd.PersistentFlags()
	pf.String("config", "", "config file (default $PAGENAV_CONFIG or ~/.pagenav/config.yaml)")
	pf.Bool("debug", false, "enable debug logging")
	pf.String("locale", "", "locale of labels and info text (default from config)")
	pf.StringP("output", "o", "", "output format: table, json or yaml (default from config)")

	cmd.AddCommand(
		NewSeriesCmd(), NewLinksCmd(), NewMetaCmd(),
		NewNavCmd(), NewInfoCmd(),
		NewHeadersCmd(), NewParseHeadersCmd(),
		NewURLCmd(), NewURLsCmd(),
		NewBrowseCmd(), newConfigCmd(), NewVersionCmd(),
	)
	return cmd
}

// annotationSkipConfig marks commands that run on the default configuration
// without reading the config file.
const annotationSkipConfig = "pagenav/skip-config"

// loadConfig reads the configuration named by --config, or the default
// location when the flag is absent, and applies the global flag overrides.
func loadConfig(cmd *cobra.Command) error {
	flagPath, _ := cmd.Flags().GetString("config")
	path, err := config.ResolvePath(flagPath)
	if err != nil {
		return err
	}

	var cfg *config.Config
	switch {
	case cmd.Annotations[annotationSkipConfig] == "true":
		cfg = config.Default()
		cfg.SetConfigPath(path)
	case flagPath != "":
		cfg, err = config.Load(path)
	default:
		cfg, err = config.LoadOrDefault(path)
	}
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("output") {
		cfg.Output.DefaultFormat, _ = cmd.Flags().GetString("output")
	}
	if cmd.Flags().Changed("locale") {
		cfg.Locale, _ = cmd.Flags().GetString("locale")
	}
	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("applying flags: %w", err)
	}

	config.SetGlobalConfig(cfg)
	return nil
}

const rootCmdExample = `  # Page series of page 3 over 103 items
  pagenav series --count 103 --page 3

  # Navigation links as JSON
  pagenav links --count 1000 --page 7 --url "https://example.com/items?q=shoes" -o json

  # HTML navigation bar and info line in German
  pagenav nav --count 1000 --page 7 --locale de
  pagenav info --count 1000 --page 7 --item-name products

  # Countless pagination: page 4 and a following page exists
  pagenav series --countless --page 4 --has-more

  # Response headers, and parse them back
  pagenav headers --count 1000 --page 7 --url https://example.com/items
  pagenav headers --count 1000 --page 7 | pagenav parse-headers

  # Browse a file one page at a time
  pagenav browse --file items.txt

  # Initialize configuration
  pagenav config init`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd(), NewConfigShowCmd())
	return cmd
}
