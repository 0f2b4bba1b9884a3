package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/pagenav/internal/config"
	"github.com/rshade/pagenav/internal/i18n"
	"github.com/rshade/pagenav/internal/pager"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file for syntax and semantic correctness.

This includes:
- YAML syntax and field values
- Series steps (breakpoints and window sizes)
- Header names
- Locale dictionaries`,
		Example: `  # Validate current configuration
  pagenav config validate

  # Validate a specific file and show details
  pagenav config validate --config ./pagenav.yaml --verbose`,
		Annotations: map[string]string{annotationSkipConfig: "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, config.GetGlobalConfig().ConfigPath(), verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show configuration details")
	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, path string, verbose bool) error {
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	dict, err := i18n.Load(cfg.LocaleSpecs()...)
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w: %w", config.ErrInvalidConfig, err)
	}
	if _, err = pager.New(cfg, dict); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg, dict)
	}
	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config, dict *i18n.Dictionary) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Config file: %s\n", cfg.ConfigPath())
	cmd.Printf("  Limit: %d\n", cfg.Limit)
	cmd.Printf("  Outset: %d\n", cfg.Outset)
	cmd.Printf("  Page param: %s\n", cfg.PageParam)
	cmd.Printf("  Overflow: %s\n", cfg.Overflow)
	cmd.Printf("  Locales: %v\n", dict.Locales())
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	if cfg.Logging.File != "" {
		cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	}
}
