package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"regcli/internal/config"
	"regcli/internal/extensions"
	"regcli/internal/logging"
	"regcli/internal/registry"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	logger   *slog.Logger
	shadowed []registry.Descriptor
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		if err := c.setupLogging(cfg); err != nil {
			c.configErr = err
			return
		}
		if exists {
			c.loggerValue().Debug("loaded configuration", logging.String(logging.FieldConfigPath, path))
		}
	})
	return c.config, c.configErr
}

// setupLogging builds the process logger from cfg, honouring --log-level.
// A nil cfg means defaults.
func (c *commandContext) setupLogging(cfg *config.Config) error {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	if c.logLevelFlag != nil {
		if err := cfg.ApplyLogLevel(*c.logLevelFlag); err != nil {
			return err
		}
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return err
	}
	c.logger = logger
	for _, d := range c.shadowed {
		logging.NewComponentLogger(logger, "registry").Warn("registration replaced by a later one",
			logging.String(logging.FieldGroup, d.Group),
			logging.String(logging.FieldCommand, d.Name),
		)
	}
	return nil
}

func (c *commandContext) configValue() *config.Config {
	return c.config
}

func (c *commandContext) loggerValue() *slog.Logger {
	if c.logger == nil {
		return logging.NewNop()
	}
	return c.logger
}

func (c *commandContext) env() extensions.Env {
	return extensions.Env{
		Config:     c.configValue,
		ConfigFlag: c.configPath,
	}
}

// shouldSkipConfig reports whether cmd runs without loading configuration.
// Container nodes only print help. Commands annotated with SkipConfigLoad
// manage the file themselves.
func shouldSkipConfig(cmd *cobra.Command) bool {
	if cmd.HasSubCommands() {
		return true
	}
	if cmd.Name() == "help" && cmd.Parent() == cmd.Root() {
		return true
	}
	for cur := cmd; cur != nil; cur = cur.Parent() {
		if cur.Annotations != nil && cur.Annotations[extensions.SkipConfigLoad] == "true" {
			return true
		}
	}
	return false
}
