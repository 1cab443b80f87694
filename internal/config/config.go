// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/feedback-aggregator/internal/schemas"
	"github.com/jonathan/feedback-aggregator/internal/types"
	schemafiles "github.com/jonathan/feedback-aggregator/schemas"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the well-known configuration file name looked up in the working directory.
const DefaultConfigFile = "CONFIG.json"

// Config is the aggregator configuration document. It is loaded once at
// startup and not modified afterwards.
type Config struct {
	AggregatedFilePrefix string              `json:"aggregated_file_prefix" validate:"required"`
	SourceFolder         string              `json:"source_folder" validate:"required"`
	OutputFields         []types.OutputField `json:"output_fields" validate:"required,min=1,dive"`
}

// LoadConfig loads configuration from a JSON (or YAML) file, checks it
// against the embedded config schema and validates it.
// Returns an error if the file cannot be read or parsed, or if the source
// folder it names does not exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, &LoadError{Message: "config path is empty"}
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, &LoadError{Path: path, Message: "failed to get current directory", Cause: err}
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read config file", Cause: err}
	}

	document, err := decodeDocument(path, data)
	if err != nil {
		return nil, err
	}

	if err := schemas.ValidateDocument("config.schema.json", schemafiles.Config, document); err != nil {
		return nil, &LoadError{Path: path, Message: "config does not match schema", Cause: err}
	}

	// Round-trip through JSON so YAML documents share the JSON field mapping.
	normalized, err := json.Marshal(document)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to normalize config", Cause: err}
	}

	var cfg Config
	if err := json.Unmarshal(normalized, &cfg); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to parse config JSON", Cause: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func decodeDocument(path string, data []byte) (interface{}, error) {
	var document interface{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &document); err != nil {
			return nil, &LoadError{Path: path, Message: "failed to parse config YAML", Cause: err}
		}
	default:
		if err := json.Unmarshal(data, &document); err != nil {
			return nil, &LoadError{Path: path, Message: "failed to parse config JSON", Cause: err}
		}
	}

	if document == nil {
		return nil, &LoadError{Path: path, Message: "config document is empty"}
	}
	return document, nil
}

// Validate checks the struct rules and that the source folder exists on disk.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	info, err := os.Stat(c.SourceFolder)
	if err != nil {
		return &SourceFolderError{Path: c.SourceFolder, Cause: err}
	}
	if !info.IsDir() {
		return &SourceFolderError{Path: c.SourceFolder, NotDir: true}
	}

	return nil
}
