package main

import (
	"fmt"

	"github.com/jonathan/feedback-aggregator/internal/config"
	"github.com/jonathan/feedback-aggregator/internal/types"
	"github.com/spf13/cobra"
)

var validateConfigCmd = &cobra.Command{
	Use:   "validate-config",
	Short: "Validate the configuration file",
	Long:  "Loads the configuration file, checks it against the config schema and reports the configured output columns.",
	Args:  cobra.NoArgs,
	RunE:  runValidateConfig,
}

func init() {
	rootCmd.AddCommand(validateConfigCmd)
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func runValidateConfig(cmd *cobra.Command, _ []string) error {
	path, err := resolveConfigPath(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config OK: %s\n", path)
	fmt.Fprintf(out, "  Prefix:        %s\n", cfg.AggregatedFilePrefix)
	fmt.Fprintf(out, "  Source folder: %s\n", cfg.SourceFolder)
	fmt.Fprintf(out, "  Output fields: %d\n", len(cfg.OutputFields))
	for i, field := range cfg.OutputFields {
		fmt.Fprintf(out, "    %d. %s%s\n", i+1, field.Label(), describeDefault(field))
	}
	return nil
}

func describeDefault(field types.OutputField) string {
	switch {
	case len(field.Names) == 1 && field.Names[0] == types.EmptyColumn:
		return " (blank column)"
	case field.DefaultValue == nil:
		return " (required)"
	case *field.DefaultValue == "":
		return " (default: No value provided)"
	default:
		return fmt.Sprintf(" (default: %s)", *field.DefaultValue)
	}
}
