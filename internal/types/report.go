//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// ReportResult describes one written category report.
type ReportResult struct {
	Category SurveyCategory `json:"category"`
	Path     string         `json:"path"`
	Earliest time.Time      `json:"earliest"`
	Passed   int            `json:"passed"`
	Total    int            `json:"total"`
}

// SkippedFile records an input file excluded during classification.
type SkippedFile struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

// RunSummary is the outcome of one aggregation run.
type RunSummary struct {
	RunID   string           `json:"run_id"`
	Reports []ReportResult   `json:"reports"`
	Skipped []SkippedFile    `json:"skipped,omitempty"`
	Empty   []SurveyCategory `json:"empty,omitempty"`
}
