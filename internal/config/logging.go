package config

import "fmt"

// LoggingConfig configures logging.
// With no File set, logs are discarded so they never interleave with prompts.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
	File   string `yaml:"file"`
}

// Enabled reports whether log output has a destination.
func (c *LoggingConfig) Enabled() bool {
	return c.File != ""
}

func (c *LoggingConfig) validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Level)
	}
	switch c.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format: %s", c.Format)
	}
	return nil
}
