package main

import (
	"github.com/jonathan/feedback-aggregator/internal/config"
	"github.com/jonathan/feedback-aggregator/internal/observability"
	"github.com/jonathan/feedback-aggregator/internal/pipeline"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Write the business and non-business feedback reports",
	Long: "Classifies every feedback file in the source folder and writes one CSV report per " +
		"survey type. This is also what runs when no subcommand is given.",
	Args: cobra.NoArgs,
	RunE: runAggregate,
}

func init() {
	rootCmd.AddCommand(aggregateCmd)
}

func runAggregate(cmd *cobra.Command, _ []string) error {
	path, err := resolveConfigPath(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded config",
		zap.String("path", path),
		zap.String("source_folder", cfg.SourceFolder),
		zap.Int("output_fields", len(cfg.OutputFields)))

	printer := observability.NewPrinter(cmd.OutOrStdout())
	summary, err := pipeline.Run(pipeline.RunOptions{
		Config:  cfg,
		Logger:  logger,
		Printer: printer,
		OnProgress: func(event pipeline.ProgressEvent) {
			logger.Debug(event.Message,
				zap.String("step", event.Step),
				zap.String("category", string(event.Category)),
				zap.String("run_id", event.RunID))
		},
	})
	if err != nil {
		return err
	}

	if verbose {
		printer.PrintRunSummary(summary)
	}
	return nil
}
