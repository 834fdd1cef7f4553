package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	c.normalizeOutput()
	c.Schedule.Timezone = strings.TrimSpace(c.Schedule.Timezone)
	if c.Schedule.Timezone == "" {
		c.Schedule.Timezone = defaultTimezone
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	if value, ok := os.LookupEnv(EnvLogLevel); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	if value, ok := os.LookupEnv(EnvLogFormat); ok && strings.TrimSpace(value) != "" {
		c.Logging.Format = value
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	switch c.Logging.Level {
	case "":
		c.Logging.Level = DefaultLogLevel
	case "warning":
		c.Logging.Level = "warn"
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "":
		c.Logging.Format = DefaultLogFormat
	case "text", "pretty":
		c.Logging.Format = "console"
	}

	if file := strings.TrimSpace(c.Logging.File); file != "" {
		expanded, err := expandPath(file)
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	} else {
		c.Logging.File = ""
	}
	return nil
}

func (c *Config) normalizeOutput() {
	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	if c.Output.Color == "" {
		c.Output.Color = defaultColor
	}
	if value, ok := os.LookupEnv(EnvNoColor); ok && value != "" && c.Output.Color == ColorAuto {
		c.Output.Color = ColorNever
	}

	c.Output.TableStyle = strings.ToLower(strings.TrimSpace(c.Output.TableStyle))
	if c.Output.TableStyle == "" {
		c.Output.TableStyle = defaultTableStyle
	}
}

// ApplyLogLevel overrides the configured log level, as the --log-level flag
// does, and re-validates the result.
func (c *Config) ApplyLogLevel(level string) error {
	if strings.TrimSpace(level) == "" {
		return nil
	}
	c.Logging.Level = level
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	return c.validateLogging()
}
