package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"regcli/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root, err := newRootCommand(stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return cli.ExitFailure
	}
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	return report(stderr, root.ExecuteContext(ctx))
}

func report(stderr io.Writer, err error) int {
	if err == nil {
		return cli.ExitOK
	}
	var usageErr *cli.UsageError
	switch {
	case errors.As(err, &usageErr):
		fmt.Fprintf(stderr, "Error: %v\n\n%s", usageErr.Err, usageErr.Usage)
	case errors.Is(err, context.Canceled):
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return cli.ExitCode(err)
}
