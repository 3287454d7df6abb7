package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = ".csvsift.yaml"

// Result views understood by the presenter.
const (
	ViewBlock = "block"
	ViewTable = "table"
)

// ValidViews lists all supported result views.
var ValidViews = []string{ViewBlock, ViewTable}

// Config holds all csvsift configuration.
type Config struct {
	// File selection
	DefaultFile string `yaml:"default_file"` // used when the file prompt is left empty
	Extension   string `yaml:"extension"`    // appended to names that lack it

	// Result rendering
	View string `yaml:"view"` // block, table

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DefaultFile: "data.csv",
		Extension:   ".csv",
		View:        ViewBlock,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CSVSIFT_DEFAULT_FILE"); v != "" {
		c.DefaultFile = v
	}
	if v := os.Getenv("CSVSIFT_VIEW"); v != "" {
		c.View = strings.ToLower(v)
	}
	if v := os.Getenv("CSVSIFT_LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("CSVSIFT_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Extension == "" || !strings.HasPrefix(c.Extension, ".") {
		return fmt.Errorf("invalid extension %q: must start with '.'", c.Extension)
	}

	validView := false
	for _, v := range ValidViews {
		if c.View == v {
			validView = true
			break
		}
	}
	if !validView {
		return fmt.Errorf("invalid view: %s (valid: %v)", c.View, ValidViews)
	}

	return c.Logging.validate()
}
