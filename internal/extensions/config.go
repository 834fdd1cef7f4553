package extensions

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"regcli/internal/config"
	"regcli/internal/logging"
	"regcli/internal/registry"
)

// SkipConfigLoad is the metadata key that tells the entry point not to load
// configuration before running a command.
const SkipConfigLoad = "skipConfigLoad"

// Config registers "config init" and "config validate". Both manage the
// configuration file themselves, so neither needs it loaded up front.
func Config(env Env) registry.Provider {
	return func(r *registry.Registry) {
		r.Register("config", "init", registry.Handler{
			Doc: "Write a commented sample configuration file.",
			Params: []registry.ParamSpec{
				registry.Opt("path", registry.TypeString, ""),
				registry.Opt("overwrite", registry.TypeBool, false),
			},
			Run: func(_ context.Context, inv *registry.Invocation) error {
				return initConfig(inv, inv.Args.String("path"), inv.Args.Bool("overwrite"))
			},
		},
			registry.Help("Create a sample configuration file"),
			registry.ParamHelp(map[string]string{
				"path":      "destination; ~/.config/regcli/config.toml when empty",
				"overwrite": "replace an existing file",
			}),
			registry.Metadata(SkipConfigLoad, "true"),
		)

		r.Register("config", "validate", registry.Handler{
			Doc: "Load the configuration file the same way every command does and report problems.",
			Run: func(_ context.Context, inv *registry.Invocation) error {
				return validateConfig(inv, env.configFlag())
			},
		},
			registry.Help("Validate configuration file"),
			registry.Metadata(SkipConfigLoad, "true"),
		)
	}
}

func initConfig(inv *registry.Invocation, targetPath string, overwrite bool) error {
	target := strings.TrimSpace(targetPath)
	if target == "" {
		defaultPath, err := config.DefaultConfigPath()
		if err != nil {
			return fmt.Errorf("determine default config path: %w", err)
		}
		target = defaultPath
	} else {
		expanded, err := config.ExpandPath(target)
		if err != nil {
			return fmt.Errorf("resolve config path: %w", err)
		}
		target = expanded
	}

	if !overwrite {
		if _, err := os.Stat(target); err == nil {
			return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("check config path: %w", err)
		}
	}

	if err := config.CreateSample(target); err != nil {
		return fmt.Errorf("create sample config: %w", err)
	}
	inv.Logger.Info("wrote sample configuration", logging.String(logging.FieldConfigPath, target))

	_, err := fmt.Fprintf(inv.Out, "Wrote sample configuration to %s\n", target)
	return err
}

func validateConfig(inv *registry.Invocation, flagPath string) error {
	cfg, path, exists, err := config.Load(flagPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	out := inv.Out
	fmt.Fprintf(out, "Config path: %s\n", path)
	if !exists {
		fmt.Fprintln(out, "Config file did not exist; defaults were used")
	}
	fmt.Fprintf(out, "Logging: level=%s format=%s\n", cfg.Logging.Level, cfg.Logging.Format)
	fmt.Fprintf(out, "Output: color=%s table_style=%s\n", cfg.Output.Color, cfg.Output.TableStyle)
	fmt.Fprintf(out, "Schedule: timezone=%s\n", cfg.Schedule.Timezone)
	_, err = fmt.Fprintln(out, "Configuration valid")
	return err
}
