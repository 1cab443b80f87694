//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// Well-known keys of a feedback document.
const (
	KeySurveyMetadata = "survey_metadata"
	KeyData           = "data"
	KeySubmittedAt    = "submitted_at"
	KeyQID            = "qid"
	KeyRURef          = "ru_ref"
	KeyFeedbackText   = "feedback_text"
)

// SurveyCategory identifies which report a feedback record belongs to.
type SurveyCategory string

const (
	// CategoryBusiness holds records identified by a business reference (ru_ref).
	CategoryBusiness SurveyCategory = "business"
	// CategoryNonBusiness holds records identified by a respondent id (qid).
	CategoryNonBusiness SurveyCategory = "non-business"
)

// Categories returns every survey category in report order.
func Categories() []SurveyCategory {
	return []SurveyCategory{CategoryBusiness, CategoryNonBusiness}
}

// FeedbackRecord is a parsed feedback file.
type FeedbackRecord struct {
	Filename       string
	SurveyMetadata map[string]any
	Data           map[string]any
	Raw            map[string]any
	SubmittedAt    time.Time
}

// Buckets maps each survey category to its records in scan order.
type Buckets map[SurveyCategory][]FeedbackRecord

// Empty reports whether no category holds a record.
func (b Buckets) Empty() bool {
	for _, records := range b {
		if len(records) > 0 {
			return false
		}
	}
	return true
}

// Total returns the number of records across all categories.
func (b Buckets) Total() int {
	n := 0
	for _, records := range b {
		n += len(records)
	}
	return n
}
