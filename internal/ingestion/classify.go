package ingestion

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/feedback-aggregator/internal/types"
	"go.uber.org/zap"
)

// Classifier parses feedback files and sorts them into survey category buckets.
type Classifier struct {
	logger *zap.Logger
}

// NewClassifier creates a Classifier that reports skipped files to logger.
func NewClassifier(logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{logger: logger}
}

// ClassifyAll classifies every path in order. Files that cannot be classified
// are logged and returned as skipped; they never reach a bucket.
func (c *Classifier) ClassifyAll(paths []string) (types.Buckets, []types.SkippedFile) {
	buckets := types.Buckets{}
	for _, category := range types.Categories() {
		buckets[category] = nil
	}

	var skipped []types.SkippedFile
	for _, path := range paths {
		record, category, err := c.ClassifyFile(path)
		if err != nil {
			c.warn(record.Filename, err)
			skipped = append(skipped, types.SkippedFile{Filename: record.Filename, Reason: err.Error()})
			continue
		}
		buckets[category] = append(buckets[category], record)
	}

	return buckets, skipped
}

func (c *Classifier) warn(filename string, err error) {
	var readErr *ReadError
	var parseErr *ParseError
	msg := "file is missing required fields and will be skipped"
	switch {
	case errors.As(err, &readErr):
		msg = "file could not be read and will be skipped"
	case errors.As(err, &parseErr):
		msg = "file is not valid JSON and will be skipped"
	}
	c.logger.Warn(msg, zap.String("file", filename), zap.Error(err))
}

// ClassifyFile reads and parses one feedback file and determines its category.
// The returned record always carries the file's base name, even on error.
func (c *Classifier) ClassifyFile(path string) (types.FeedbackRecord, types.SurveyCategory, error) {
	filename := filepath.Base(path)
	record := types.FeedbackRecord{Filename: filename}

	content, err := os.ReadFile(path)
	if err != nil {
		return record, "", &ReadError{Filename: filename, Cause: err}
	}

	raw, err := decodeObject(content)
	if err != nil {
		return record, "", &ParseError{Filename: filename, Message: "invalid JSON", Cause: err}
	}
	record.Raw = raw

	metadata, err := objectField(raw, types.KeySurveyMetadata, filename)
	if err != nil {
		return record, "", err
	}
	record.SurveyMetadata = metadata

	category, ok := ClassifyMetadata(metadata)
	if !ok {
		return record, "", &MissingFieldError{
			Filename: filename,
			Field:    types.KeyQID + "|" + types.KeyRURef,
			Message:  fmt.Sprintf("Missing %s or %s in %s", types.KeyQID, types.KeyRURef, filename),
		}
	}

	submittedAt, err := submittedAtField(raw, filename)
	if err != nil {
		return record, "", err
	}
	record.SubmittedAt = submittedAt

	data, err := objectField(raw, types.KeyData, filename)
	if err != nil {
		return record, "", err
	}
	record.Data = data

	return record, category, nil
}

// ClassifyMetadata picks the survey category from survey metadata by key
// presence: qid means non-business, otherwise ru_ref means business.
func ClassifyMetadata(metadata map[string]any) (types.SurveyCategory, bool) {
	if _, ok := metadata[types.KeyQID]; ok {
		return types.CategoryNonBusiness, true
	}
	if _, ok := metadata[types.KeyRURef]; ok {
		return types.CategoryBusiness, true
	}
	return "", false
}

// decodeObject decodes a single JSON object, keeping numbers in their source form.
func decodeObject(content []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("top-level value is %s, not an object", jsonKind(value))
	}
	return obj, nil
}

func objectField(raw map[string]any, key, filename string) (map[string]any, error) {
	value, ok := raw[key]
	if !ok {
		return nil, &MissingFieldError{Filename: filename, Field: key}
	}
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, &InvalidFieldError{
			Filename: filename,
			Field:    key,
			Message:  fmt.Sprintf("expected an object, got %s", jsonKind(value)),
		}
	}
	return obj, nil
}

func submittedAtField(raw map[string]any, filename string) (time.Time, error) {
	var t time.Time
	value, ok := raw[types.KeySubmittedAt]
	if !ok {
		return t, &MissingFieldError{Filename: filename, Field: types.KeySubmittedAt}
	}
	s, ok := value.(string)
	if !ok {
		return t, &InvalidFieldError{
			Filename: filename,
			Field:    types.KeySubmittedAt,
			Message:  fmt.Sprintf("expected a string, got %s", jsonKind(value)),
		}
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return t, &InvalidFieldError{
			Filename: filename,
			Field:    types.KeySubmittedAt,
			Message:  "unparseable timestamp",
			Cause:    err,
		}
	}
	return parsed, nil
}

func jsonKind(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case bool:
		return "a boolean"
	case json.Number, float64:
		return "a number"
	case string:
		return "a string"
	case []any:
		return "an array"
	case map[string]any:
		return "an object"
	default:
		return fmt.Sprintf("%T", value)
	}
}
