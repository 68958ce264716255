package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ProvidersConfig selects and configures the registered transcription
// providers. Loaded from an optional yaml file; absent file means the
// built-in default (the local worker with its own defaults).
type ProvidersConfig struct {
	DefaultProvider string                    `yaml:"default_provider" validate:"required"`
	Providers       map[string]ProviderConfig `yaml:"providers" validate:"required,dive"`
}

// ProviderConfig configures a single provider entry.
type ProviderConfig struct {
	Type     string                 `yaml:"type" validate:"required"`
	Enabled  bool                   `yaml:"enabled"`
	Settings map[string]interface{} `yaml:"settings,omitempty"`
}

var validate = validator.New()

// DefaultProvidersConfig is used when no config file exists.
func DefaultProvidersConfig() *ProvidersConfig {
	return &ProvidersConfig{
		DefaultProvider: "local",
		Providers: map[string]ProviderConfig{
			"local": {
				Type:    "stt_worker",
				Enabled: true,
			},
		},
	}
}

// LoadProvidersConfig reads and validates a providers yaml file. A missing
// file falls back to DefaultProvidersConfig.
func LoadProvidersConfig(path string) (*ProvidersConfig, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultProvidersConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read providers config: %w", err)
	}

	var cfg ProvidersConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse providers config: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid providers config: %w", err)
	}
	if _, ok := cfg.Providers[cfg.DefaultProvider]; !ok {
		return nil, fmt.Errorf("default_provider %q has no providers entry", cfg.DefaultProvider)
	}
	return &cfg, nil
}

// Default returns the entry named by DefaultProvider.
func (c *ProvidersConfig) Default() ProviderConfig {
	return c.Providers[c.DefaultProvider]
}
