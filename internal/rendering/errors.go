package rendering

import "fmt"

// MissingFieldError reports an output field with no resolvable value and no default
type MissingFieldError struct {
	Filename string
	Field    string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("could not find value for '%s' in %s and no default value was specified", e.Field, e.Filename)
}

// RenderError represents a failure creating or writing a report file
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
