package config

import (
	"fmt"
	"slices"
)

var (
	validLogLevels   = []string{"debug", "info", "warn", "error"}
	validLogFormats  = []string{"console", "json"}
	validColorModes  = []string{ColorAuto, ColorAlways, ColorNever}
	validTableStyles = []string{TableStyleRounded, TableStyleLight, TableStyleASCII}
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateSchedule(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !slices.Contains(validLogLevels, c.Logging.Level) {
		return fmt.Errorf("logging.level %q is invalid (choose from %v)", c.Logging.Level, validLogLevels)
	}
	if !slices.Contains(validLogFormats, c.Logging.Format) {
		return fmt.Errorf("logging.format %q is invalid (choose from %v)", c.Logging.Format, validLogFormats)
	}
	return nil
}

func (c *Config) validateOutput() error {
	if !slices.Contains(validColorModes, c.Output.Color) {
		return fmt.Errorf("output.color %q is invalid (choose from %v)", c.Output.Color, validColorModes)
	}
	if !slices.Contains(validTableStyles, c.Output.TableStyle) {
		return fmt.Errorf("output.table_style %q is invalid (choose from %v)", c.Output.TableStyle, validTableStyles)
	}
	return nil
}

func (c *Config) validateSchedule() error {
	if _, err := loadLocation(c.Schedule.Timezone); err != nil {
		return fmt.Errorf("schedule.timezone %q: %w", c.Schedule.Timezone, err)
	}
	return nil
}
