package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/monkeyreg/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or change the configuration file",
	// Skip validation so a broken file can still be repaired.
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file in use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), configFileInUse())
		return err
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a value in the config file",
	Long: `Set a value in the config file, keeping its comments.

Keys use dots for nesting. The resulting file is validated before the
command reports success.

Examples:
  monkeyreg config set api.base_url http://registry.internal:8000
  monkeyreg config set ui.toast_duration 5s
  monkeyreg config set theme.colors.accent "#FF79C6"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFileInUse()
		if err := config.SetValue(path, args[0], args[1]); err != nil {
			return err
		}

		updated, err := loadConfig(viper.New(), path)
		if err != nil {
			return err
		}
		if err := updated.Validate(); err != nil {
			return fmt.Errorf("%s now holds an invalid value: %w", path, err)
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s = %s (%s)\n", args[0], args[1], path)
		return err
	},
}

func init() {
	configCmd.AddCommand(configPathCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}

// configFileInUse is the file loaded at startup, or the local default.
func configFileInUse() string {
	if cfgFile != "" {
		return cfgFile
	}
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	return localConfigPath
}
