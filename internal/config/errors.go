package config

import "fmt"

// LoadError represents an error reading or decoding the configuration file
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s %s", e.Message, e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("config error: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("config error: %s", msg)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// SourceFolderError reports a configured source folder that is missing or not a directory.
type SourceFolderError struct {
	Path   string
	NotDir bool
	Cause  error
}

func (e *SourceFolderError) Error() string {
	if e.NotDir {
		return fmt.Sprintf("The specified source folder '%s' is not a directory!", e.Path)
	}
	return fmt.Sprintf("The specified source folder '%s' does not exist!", e.Path)
}

func (e *SourceFolderError) Unwrap() error {
	return e.Cause
}
