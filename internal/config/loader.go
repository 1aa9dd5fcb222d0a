// Package config loads and validates the YAML request book: named
// environments plus named requests with their pause/timeout settings.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level configuration
type Config struct {
	Environments map[string]Environment `yaml:"environments" validate:"required,min=1,dive"`
	Requests     map[string]Request     `yaml:"requests" validate:"required,min=1,dive"`
}

// Environment represents an environment configuration
type Environment struct {
	BaseURL string            `yaml:"baseUrl" validate:"required,url"`
	Headers map[string]string `yaml:"headers,omitempty"`
}

// Request represents a request configuration. URL may be absolute or a path
// resolved against the environment's base URL.
type Request struct {
	URL     string            `yaml:"url" validate:"required"`
	Method  string            `yaml:"method" validate:"required,oneof=GET HEAD POST PUT PATCH DELETE OPTIONS"`
	Headers map[string]string `yaml:"headers,omitempty"`
	Body    string            `yaml:"body,omitempty"`
	Pause   Duration          `yaml:"pause,omitempty" validate:"min=0"`
	Timeout Duration          `yaml:"timeout,omitempty" validate:"min=0"`
	Extract map[string]string `yaml:"extract,omitempty"`
	Schema  string            `yaml:"schema,omitempty"`
}

// Duration is a time.Duration that unmarshals from YAML strings like "250ms"
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the value as a time.Duration
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Load reads and validates a configuration file
func Load(path string) (*Config, error) {
	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
