// Package types provides type definitions for structured data used throughout the feedback aggregator.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
)

// EmptyColumn is the sentinel output field name that always renders as an empty cell.
const EmptyColumn = "EMPTY_COLUMN"

// OutputField defines one CSV column: candidate source keys (first match wins)
// and an optional fallback value.
type OutputField struct {
	Names []string `json:"name" validate:"required,min=1,dive,required"`
	// DefaultValue is nil when no default_value was configured.
	DefaultValue *string `json:"default_value,omitempty"`
}

// Label returns a printable form of the candidate names.
func (f OutputField) Label() string {
	if len(f.Names) == 1 {
		return f.Names[0]
	}
	return fmt.Sprintf("%v", f.Names)
}

// UnmarshalJSON accepts "name" as either a string or an array of strings.
func (f *OutputField) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name         json.RawMessage `json:"name"`
		DefaultValue *string         `json:"default_value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	f.DefaultValue = raw.DefaultValue
	f.Names = nil
	if len(raw.Name) == 0 || string(raw.Name) == "null" {
		return nil
	}

	var single string
	if err := json.Unmarshal(raw.Name, &single); err == nil {
		f.Names = []string{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(raw.Name, &many); err != nil {
		return fmt.Errorf("output field name must be a string or an array of strings: %w", err)
	}
	f.Names = many
	return nil
}

// MarshalJSON writes a single candidate as a plain string.
func (f OutputField) MarshalJSON() ([]byte, error) {
	var name any = f.Names
	if len(f.Names) == 1 {
		name = f.Names[0]
	}
	return json.Marshal(struct {
		Name         any     `json:"name"`
		DefaultValue *string `json:"default_value,omitempty"`
	}{Name: name, DefaultValue: f.DefaultValue})
}
