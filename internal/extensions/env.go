package extensions

import (
	"strings"
	"time"

	"regcli/internal/config"
)

// Env exposes process state to extension handlers. Every field is optional.
type Env struct {
	// Config returns the loaded configuration, or nil when none was loaded.
	Config func() *config.Config
	// ConfigFlag returns the raw --config value.
	ConfigFlag func() string
	// Now returns the current time.
	Now func() time.Time
}

func (e Env) config() *config.Config {
	if e.Config != nil {
		if cfg := e.Config(); cfg != nil {
			return cfg
		}
	}
	def := config.Default()
	return &def
}

func (e Env) configFlag() string {
	if e.ConfigFlag == nil {
		return ""
	}
	return strings.TrimSpace(e.ConfigFlag())
}

func (e Env) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}
