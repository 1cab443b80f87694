package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Settings are process-level options read from the environment.
type Settings struct {
	ConfigPath string `envconfig:"FEEDBACK_CONFIG" default:"CONFIG.json"`
	LogLevel   string `envconfig:"FEEDBACK_LOG_LEVEL" default:"info"`
}

// LoadSettings reads Settings from the environment, applying defaults.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := envconfig.Process("", &s); err != nil {
		return Settings{}, fmt.Errorf("failed to load settings from environment: %w", err)
	}
	return s, nil
}
