// Package pipeline provides the high-level orchestration for a feedback aggregation run.
package pipeline

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/feedback-aggregator/internal/config"
	"github.com/jonathan/feedback-aggregator/internal/ingestion"
	"github.com/jonathan/feedback-aggregator/internal/observability"
	"github.com/jonathan/feedback-aggregator/internal/rendering"
	"github.com/jonathan/feedback-aggregator/internal/types"
)

// ErrNoFeedback is matched (via errors.Is) by NoFeedbackError.
var ErrNoFeedback = errors.New("no valid feedback data found")

// NoFeedbackError is returned when no category received a valid record.
type NoFeedbackError struct {
	Folder string
}

func (e *NoFeedbackError) Error() string {
	return fmt.Sprintf("No valid feedback data found in %s. Exiting ...", e.Folder)
}

// Is reports whether target is ErrNoFeedback.
func (e *NoFeedbackError) Is(target error) bool {
	return target == ErrNoFeedback
}

// ProgressEvent represents a progress update during a run
type ProgressEvent struct {
	Step     string               `json:"step"`
	Category types.SurveyCategory `json:"category,omitempty"`
	Message  string               `json:"message"`
	RunID    string               `json:"run_id,omitempty"`
}

// ProgressCallback is called when run progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds what a run needs. Either Config or ConfigPath must be set;
// Logger and Printer default to no-op and discard.
type RunOptions struct {
	Config     *config.Config
	ConfigPath string
	Logger     *zap.Logger
	Printer    *observability.Printer
	OnProgress ProgressCallback
}

func (o *RunOptions) withDefaults() error {
	if o.Config == nil {
		if o.ConfigPath == "" {
			return errors.New("run options: config or config path is required")
		}
		cfg, err := config.LoadConfig(o.ConfigPath)
		if err != nil {
			return err
		}
		o.Config = cfg
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Printer == nil {
		o.Printer = observability.NewPrinter(io.Discard)
	}
	return nil
}

func emitProgress(opts *RunOptions, runID, step string, category types.SurveyCategory, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			RunID:    runID,
		})
	}
}

// Collect scans the source folder and classifies every candidate file.
func Collect(cfg *config.Config, logger *zap.Logger) (types.Buckets, []types.SkippedFile, error) {
	paths, err := ingestion.ScanFolder(cfg.SourceFolder, cfg.AggregatedFilePrefix, logger)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("scanned source folder",
		zap.String("folder", cfg.SourceFolder),
		zap.Int("candidates", len(paths)))

	buckets, skipped := ingestion.NewClassifier(logger).ClassifyAll(paths)
	return buckets, skipped, nil
}

// Run aggregates the source folder into one report per non-empty category.
// It fails with a NoFeedbackError when no file could be classified.
func Run(opts RunOptions) (*types.RunSummary, error) {
	if err := opts.withDefaults(); err != nil {
		return nil, err
	}
	cfg := opts.Config

	runID := uuid.New().String()
	logger := opts.Logger.With(zap.String("run_id", runID))
	summary := &types.RunSummary{RunID: runID}

	emitProgress(&opts, runID, "scan", "", fmt.Sprintf("scanning %s", cfg.SourceFolder))
	buckets, skipped, err := Collect(cfg, logger)
	if err != nil {
		return nil, err
	}
	summary.Skipped = skipped
	emitProgress(&opts, runID, "classify", "",
		fmt.Sprintf("classified %d files, skipped %d", buckets.Total(), len(skipped)))

	if buckets.Empty() {
		return summary, &NoFeedbackError{Folder: cfg.SourceFolder}
	}

	writer := rendering.NewReportWriter(cfg.SourceFolder, cfg.AggregatedFilePrefix, cfg.OutputFields, logger)
	for _, category := range types.Categories() {
		records := buckets[category]
		if len(records) == 0 {
			opts.Printer.PrintCategorySkipped(category)
			summary.Empty = append(summary.Empty, category)
			emitProgress(&opts, runID, "skip", category, "no valid records")
			continue
		}

		result, err := writer.WriteCategory(category, records)
		if err != nil {
			return summary, fmt.Errorf("failed to write %s report: %w", category, err)
		}
		logger.Debug("wrote report",
			zap.String("category", string(category)),
			zap.String("path", result.Path),
			zap.Int("passed", result.Passed),
			zap.Int("total", result.Total))

		opts.Printer.PrintReport(result)
		summary.Reports = append(summary.Reports, *result)
		emitProgress(&opts, runID, "report", category,
			fmt.Sprintf("wrote %d/%d rows to %s", result.Passed, result.Total, result.Path))
	}

	return summary, nil
}

// Plan classifies the source folder and returns the reports a Run would
// write, without writing anything.
func Plan(cfg *config.Config, logger *zap.Logger) ([]observability.PlannedReport, []types.SkippedFile, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	buckets, skipped, err := Collect(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	var planned []observability.PlannedReport
	for _, category := range types.Categories() {
		records := buckets[category]
		if len(records) == 0 {
			continue
		}
		earliest := rendering.SortRecords(records)[0].SubmittedAt
		planned = append(planned, observability.PlannedReport{
			Category: category,
			Filename: rendering.ReportFilename(cfg.AggregatedFilePrefix, category, earliest),
			Records:  len(records),
		})
	}
	return planned, skipped, nil
}
