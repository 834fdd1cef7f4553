package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"regcli/internal/cli"
	"regcli/internal/commands"
	"regcli/internal/config"
)

func newRootCommand(stdout, stderr io.Writer) (*cobra.Command, error) {
	var configFlag string
	var logLevelFlag string

	ctx := newCommandContext(&configFlag, &logLevelFlag)

	rootCmd := &cobra.Command{
		Use:           "regcli",
		Short:         "Run commands contributed by registered providers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := checkLogLevel(logLevelFlag); err != nil {
				return cli.NewUsageError(cmd, err)
			}
			if shouldSkipConfig(cmd) {
				return ctx.setupLogging(nil)
			}
			_, err := ctx.ensureConfig()
			return err
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level override (debug, info, warn, error)")

	tree, err := cli.Build(commands.NewRegistry(ctx.env()), rootCmd, cli.WithLogger(ctx.loggerValue))
	if err != nil {
		return nil, err
	}
	ctx.shadowed = tree.Shadowed
	return rootCmd, nil
}

func checkLogLevel(level string) error {
	cfg := config.Default()
	if err := cfg.ApplyLogLevel(level); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	return nil
}
