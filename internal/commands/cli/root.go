// Package cli provides the CLI command structure for cryptoproc.
package cli

import (
	"fmt"

	"github.com/andrei-cloud/cryptoproc/internal/commands/cli/server"
	"github.com/andrei-cloud/cryptoproc/internal/config"
	"github.com/spf13/cobra"
)

var cfgFile string

// NewRootCommand creates and returns the root command with all subcommands.
// Running the root command without a subcommand serves requests on stdin/stdout.
func NewRootCommand() (*cobra.Command, error) {
	rootCmd := &cobra.Command{
		Use:   "cryptoproc",
		Short: "Line-oriented JSON crypto request processor",
		Long: `Reads one JSON request per line from standard input, computes a digest
or encrypts the supplied data, and writes one JSON response per line
to standard output. Logs go to standard error.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			// Initialize configuration before running any command.
			if err := config.Initialize(cfgFile); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}

			return nil
		},
		RunE: server.RunServe,
	}

	// Add persistent flags that affect all commands.
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default is ./cryptoproc.yaml or $HOME/.cryptoproc/cryptoproc.yaml)")

	// Add global flags that can override config file settings.
	rootCmd.PersistentFlags().
		String("log-level", "info", "logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "json", "logging format (human, json)")

	// Bind flags to viper.
	v := config.GetViper()
	if err := v.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		return nil, fmt.Errorf("failed to bind log-level flag: %w", err)
	}
	if err := v.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format")); err != nil {
		return nil, fmt.Errorf("failed to bind log-format flag: %w", err)
	}

	// Register all commands.
	if err := RegisterCommands(rootCmd); err != nil {
		return nil, fmt.Errorf("failed to register commands: %w", err)
	}

	return rootCmd, nil
}
