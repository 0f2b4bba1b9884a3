package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/pagenav/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values at --config,
$PAGENAV_CONFIG or ~/.pagenav/config.yaml.`,
		Example: `  # Create configuration
  pagenav config init

  # Create configuration, overwriting existing
  pagenav config init --force`,
		Annotations: map[string]string{annotationSkipConfig: "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, config.GetGlobalConfig(), force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	return cmd
}

// initConfig writes the default configuration to the path cfg is bound to.
func initConfig(cmd *cobra.Command, cfg *config.Config, force bool) error {
	path := cfg.ConfigPath()

	// Check if config already exists and force isn't set
	if !force {
		if _, err := os.Stat(path); err == nil {
			interactive := cmd.InOrStdin() == os.Stdin && isTerminal(os.Stdin)
			answer := Confirm(cmd.OutOrStdout(), cmd.InOrStdin(), interactive,
				fmt.Sprintf("%s exists. Overwrite it with the defaults?", path))
			if !answer.Accepted {
				return errors.New("configuration file already exists, use --force to overwrite")
			}
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("cannot access config path %s: %w", path, err)
		}
	}

	fresh := config.Default()
	fresh.SetConfigPath(path)
	if err := fresh.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", path)
	return nil
}
