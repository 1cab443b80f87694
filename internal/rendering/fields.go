package rendering

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jonathan/feedback-aggregator/internal/types"
)

// NoValueProvided is written when nothing resolved and the configured default is empty.
const NoValueProvided = "No value provided"

// ResolveField returns the cell value for one output field of a record.
//
// Candidates are tried in order. For each, the section is picked by key
// presence: survey_metadata, then data, then the top level. The first truthy
// value wins; EMPTY_COLUMN ends the search with an empty cell.
func ResolveField(record types.FeedbackRecord, field types.OutputField) (string, error) {
	for _, key := range field.Names {
		if key == types.EmptyColumn {
			return "", nil
		}

		value := lookup(record, key)
		if !truthy(value) {
			continue
		}

		s := stringify(value)
		if key == types.KeyFeedbackText {
			s = SanitizeFeedbackText(s)
		}
		return s, nil
	}

	switch {
	case field.DefaultValue == nil:
		return "", &MissingFieldError{Filename: record.Filename, Field: field.Label()}
	case *field.DefaultValue == "":
		return NoValueProvided, nil
	default:
		return *field.DefaultValue, nil
	}
}

func lookup(record types.FeedbackRecord, key string) any {
	if v, ok := record.SurveyMetadata[key]; ok {
		return v
	}
	if v, ok := record.Data[key]; ok {
		return v
	}
	return record.Raw[key]
}

func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case json.Number:
		f, err := v.Float64()
		return err != nil || f != 0
	case float64:
		return v != 0
	case int:
		return v != 0
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return true
	}
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case []any, map[string]any:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	default:
		return fmt.Sprint(v)
	}
}
