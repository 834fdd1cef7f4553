package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"regcli/internal/testsupport"
)

type cliResult struct {
	stdout string
	stderr string
	code   int
}

// runCLI executes one command line against a fresh root command with HOME
// isolated and configuration environment variables cleared.
func runCLI(t *testing.T, args ...string) cliResult {
	t.Helper()
	testsupport.IsolateEnv(t)
	return execCLI(t, args...)
}

func execCLI(t *testing.T, args ...string) cliResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

func requireCode(t *testing.T, res cliResult, want int) {
	t.Helper()
	if res.code != want {
		t.Fatalf("exit code = %d, want %d\nstdout:\n%s\nstderr:\n%s", res.code, want, res.stdout, res.stderr)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected output to contain %q\nfull output:\n%s", substr, output)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected output not to contain %q\nfull output:\n%s", substr, output)
	}
}
