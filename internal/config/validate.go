package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMatching(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateMatching() error {
	if c.Matching.MinScore < 0 || c.Matching.MinScore > 100 {
		return errors.New("matching.min_score must be between 0 and 100")
	}
	if c.Matching.Workers < 1 {
		return errors.New("matching.workers must be at least 1")
	}
	suffix := strings.TrimSpace(c.Matching.CaptureSuffix)
	if suffix == "" {
		return errors.New("matching.capture_suffix must be set")
	}
	if strings.ContainsAny(suffix, "/\\") {
		return fmt.Errorf("matching.capture_suffix %q must not contain path separators", suffix)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
