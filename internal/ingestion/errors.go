package ingestion

import "fmt"

// ReadError represents a feedback file that could not be opened or read
type ReadError struct {
	Filename string
	Cause    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read file %s: %v", e.Filename, e.Cause)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}

// ParseError represents a feedback file that could not be decoded as a JSON object
type ParseError struct {
	Filename string
	Message  string
	Cause    error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error in %s: %s: %v", e.Filename, e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Filename, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// MissingFieldError represents a feedback file lacking a required key
type MissingFieldError struct {
	Filename string
	Field    string
	Message  string
}

func (e *MissingFieldError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("missing required field '%s' in %s", e.Field, e.Filename)
}

// InvalidFieldError represents a required key whose value has the wrong type or format
type InvalidFieldError struct {
	Filename string
	Field    string
	Message  string
	Cause    error
}

func (e *InvalidFieldError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid field '%s' in %s: %s: %v", e.Field, e.Filename, e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid field '%s' in %s: %s", e.Field, e.Filename, e.Message)
}

func (e *InvalidFieldError) Unwrap() error {
	return e.Cause
}
