package rendering

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/feedback-aggregator/internal/types"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// HumanDateLayout is the earliest-submission date written into every row.
	HumanDateLayout = "Jan 02 2006"
	// FileDateLayout is the sortable date used in report file names.
	FileDateLayout = "2006-01-02"
)

// ErrNoRecords is returned when a report is requested for an empty category.
var ErrNoRecords = errors.New("no records to write")

// ReportWriter writes one CSV report per survey category into a folder.
type ReportWriter struct {
	folder string
	prefix string
	fields []types.OutputField
	logger *zap.Logger
}

// NewReportWriter creates a ReportWriter. Rows that cannot be rendered are
// reported to logger and left out of the report.
func NewReportWriter(folder, prefix string, fields []types.OutputField, logger *zap.Logger) *ReportWriter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportWriter{
		folder: folder,
		prefix: prefix,
		fields: fields,
		logger: logger,
	}
}

// ReportFilename builds the report name for a category whose earliest
// submission is earliest, e.g. "- Feedback-Non-Business-Surveys-2024-01-02.csv".
func ReportFilename(prefix string, category types.SurveyCategory, earliest time.Time) string {
	title := cases.Title(language.English).String(string(category))
	return fmt.Sprintf("- %s-%s-Surveys-%s.csv", prefix, title, earliest.Format(FileDateLayout))
}

// SortRecords returns a copy of records ordered by submission time, oldest
// first. Records with equal timestamps keep their input order.
func SortRecords(records []types.FeedbackRecord) []types.FeedbackRecord {
	sorted := make([]types.FeedbackRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SubmittedAt.Before(sorted[j].SubmittedAt)
	})
	return sorted
}

// Path returns where the report for category would be written.
func (w *ReportWriter) Path(category types.SurveyCategory, earliest time.Time) string {
	return filepath.Join(w.folder, ReportFilename(w.prefix, category, earliest))
}

// FormatRow renders one report line (without the trailing newline).
func (w *ReportWriter) FormatRow(date string, record types.FeedbackRecord) (string, error) {
	cells := make([]string, 0, len(w.fields)+2)
	cells = append(cells, date)
	for _, field := range w.fields {
		value, err := ResolveField(record, field)
		if err != nil {
			return "", err
		}
		cells = append(cells, value)
	}
	cells = append(cells, record.Filename)
	return strings.Join(cells, ","), nil
}

// WriteCategory sorts records, writes the category report (replacing any
// existing file of the same name) and returns how many rows made it in.
func (w *ReportWriter) WriteCategory(category types.SurveyCategory, records []types.FeedbackRecord) (result *types.ReportResult, err error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	sorted := SortRecords(records)
	earliest := sorted[0].SubmittedAt
	date := earliest.Format(HumanDateLayout)
	path := w.Path(category, earliest)

	file, err := os.Create(path)
	if err != nil {
		return nil, &RenderError{Message: fmt.Sprintf("failed to create report %s", path), Cause: err}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = &RenderError{Message: fmt.Sprintf("failed to close report %s", path), Cause: cerr}
			result = nil
		}
	}()

	out := bufio.NewWriter(file)
	result = &types.ReportResult{
		Category: category,
		Path:     path,
		Earliest: earliest,
		Total:    len(sorted),
	}

	for _, record := range sorted {
		row, rowErr := w.FormatRow(date, record)
		if rowErr != nil {
			w.logger.Warn("row is missing required fields and will be skipped",
				zap.String("file", record.Filename),
				zap.String("category", string(category)),
				zap.Error(rowErr))
			continue
		}
		if _, err := out.WriteString(row + "\n"); err != nil {
			return nil, &RenderError{Message: fmt.Sprintf("failed to write report %s", path), Cause: err}
		}
		result.Passed++
	}

	if err := out.Flush(); err != nil {
		return nil, &RenderError{Message: fmt.Sprintf("failed to write report %s", path), Cause: err}
	}

	return result, nil
}
