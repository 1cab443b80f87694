package main

import (
	"github.com/jonathan/feedback-aggregator/internal/config"
	"github.com/jonathan/feedback-aggregator/internal/observability"
	"github.com/jonathan/feedback-aggregator/internal/pipeline"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Show which reports would be written without writing them",
	Long:  "Classifies every feedback file in the source folder and lists the reports an aggregate run would produce.",
	Args:  cobra.NoArgs,
	RunE:  runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, _ []string) error {
	path, err := resolveConfigPath(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return err
	}

	planned, skipped, err := pipeline.Plan(cfg, logger)
	if err != nil {
		return err
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintScanPlan(planned, skipped)
	return nil
}
