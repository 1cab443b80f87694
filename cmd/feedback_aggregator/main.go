// Package main provides the entry point for the feedback_aggregator CLI.
package main

import (
	"os"

	"github.com/jonathan/feedback-aggregator/internal/config"
	"github.com/jonathan/feedback-aggregator/internal/observability"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "feedback_aggregator",
	Short: "Aggregate survey feedback JSON files into CSV reports",
	Long: "Reads survey feedback submissions from the configured source folder, splits them into " +
		"business and non-business surveys and writes one dated CSV report per survey type.",
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
	RunE:              runAggregate,
}

var (
	configPath string
	verbose    bool

	// logger is built in setupLogger before any command runs.
	logger = zap.NewNop()
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the configuration file (default $FEEDBACK_CONFIG or CONFIG.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging and print a run summary")
}

func setupLogger(cmd *cobra.Command, _ []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}

	level := settings.LogLevel
	if verbose {
		level = "debug"
	}

	l, err := observability.NewLogger(level, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// resolveConfigPath returns the --config flag when given, otherwise the
// environment setting.
func resolveConfigPath(cmd *cobra.Command) (string, error) {
	if cmd.Flags().Changed("config") {
		return configPath, nil
	}
	settings, err := config.LoadSettings()
	if err != nil {
		return "", err
	}
	return settings.ConfigPath, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		observability.NewPrinter(os.Stderr).PrintError(err)
		os.Exit(1)
	}
}
