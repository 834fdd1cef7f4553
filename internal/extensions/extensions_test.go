package extensions_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"regcli/internal/cli"
	"regcli/internal/config"
	"regcli/internal/extensions"
	"regcli/internal/registry"
)

func execute(t *testing.T, env extensions.Env, providers []registry.Provider, args ...string) (string, error) {
	t.Helper()
	reg := registry.New()
	reg.Load(providers...)

	root := &cobra.Command{Use: "regcli", SilenceUsage: true, SilenceErrors: true}
	if _, err := cli.Build(reg, root); err != nil {
		t.Fatalf("Build: %v", err)
	}
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{}, args...))
	err := root.Execute()
	return out.String(), err
}

func utcEnv() extensions.Env {
	cfg := config.Default()
	cfg.Schedule.Timezone = "UTC"
	cfg.Output.TableStyle = config.TableStyleASCII
	return extensions.Env{
		Config: func() *config.Config { return &cfg },
		Now:    func() time.Time { return time.Date(2024, 5, 1, 8, 15, 0, 0, time.UTC) },
	}
}

func TestShout(t *testing.T) {
	out, err := execute(t, extensions.Env{}, []registry.Provider{extensions.Shout}, "text", "shout", "hey you")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "HEY YOU!!!\n" {
		t.Fatalf("unexpected output %q", out)
	}

	reg := registry.New()
	reg.Load(extensions.Shout)
	d, ok := reg.Lookup("text", "shout")
	if !ok {
		t.Fatal("text shout not registered")
	}
	if got := d.ParamHelpFor("text"); got != "the text to SHOUT" {
		t.Fatalf("text help = %q", got)
	}
}

func TestScheduleNextUsesNow(t *testing.T) {
	env := utcEnv()
	out, err := execute(t, env, []registry.Provider{extensions.Schedule(env)}, "schedule", "next", "*/30 * * * *", "--count", "3")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	want := "2024-05-01T08:30:00Z\n2024-05-01T09:00:00Z\n2024-05-01T09:30:00Z\n"
	if out != want {
		t.Fatalf("output %q, want %q", out, want)
	}
}

func TestScheduleNextConvertsToConfiguredZone(t *testing.T) {
	cfg := config.Default()
	cfg.Schedule.Timezone = "America/New_York"
	if _, err := time.LoadLocation(cfg.Schedule.Timezone); err != nil {
		t.Skipf("time zone database unavailable: %v", err)
	}
	env := extensions.Env{Config: func() *config.Config { return &cfg }}

	out, err := execute(t, env, []registry.Provider{extensions.Schedule(env)},
		"schedule", "next", "0 12 * * *", "--from", "2024-01-01T00:00:00Z", "-c", "1")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	// Midnight UTC is 19:00 the previous day in New York, so the next noon is Jan 1 local.
	if out != "2024-01-01T12:00:00-05:00\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestScheduleNextEveryDescriptor(t *testing.T) {
	env := utcEnv()
	out, err := execute(t, env, []registry.Provider{extensions.Schedule(env)}, "schedule", "next", "@every 90m", "-c", "2")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	want := "2024-05-01T09:45:00Z\n2024-05-01T11:15:00Z\n"
	if out != want {
		t.Fatalf("output %q, want %q", out, want)
	}
}

func TestScheduleNextRejectsBadInput(t *testing.T) {
	env := utcEnv()
	providers := []registry.Provider{extensions.Schedule(env)}

	if _, err := execute(t, env, providers, "schedule", "next", "61 * * * *"); err == nil || cli.ExitCode(err) != cli.ExitFailure {
		t.Fatalf("expected handler failure, got %v", err)
	}
	if _, err := execute(t, env, providers, "schedule", "next", "@daily", "-c", "-2"); cli.ExitCode(err) != cli.ExitUsage {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestInspectListAndShow(t *testing.T) {
	env := utcEnv()
	providers := []registry.Provider{extensions.Shout, extensions.Shout, extensions.Inspect(env)}

	out, err := execute(t, env, providers, "registry", "list")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"+---", "GROUP", "shout", "<text>", "1 shadowed registration(s) hidden"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}

	out, err = execute(t, env, providers, "registry", "list", "--all")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "shadowed") || !strings.Contains(out, "active") {
		t.Fatalf("expected status column in:\n%s", out)
	}

	out, err = execute(t, env, providers, "registry", "show", "registry", "list")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"registry list: List Registered Commands", "all", "option", "bool", "false"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}

	out, err = execute(t, env, providers, "registry", "show", "registry", "show")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "argument") {
		t.Fatalf("expected positional rows in:\n%s", out)
	}
}

func TestConfigCommands(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")
	t.Setenv(config.EnvNoColor, "")
	dir := t.TempDir()
	target := filepath.Join(dir, "conf", "regcli.toml")
	env := extensions.Env{ConfigFlag: func() string { return " " + target + " " }}
	providers := []registry.Provider{extensions.Config(env)}

	out, err := execute(t, env, providers, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, target) {
		t.Fatalf("expected target in output %q", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample not written: %v", err)
	}

	if _, err := execute(t, env, providers, "config", "init", "--path", target); err == nil {
		t.Fatal("expected existing file to be refused")
	}
	if _, err := execute(t, env, providers, "config", "init", "-p", target, "-o"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	out, err = execute(t, env, providers, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	for _, want := range []string{"Config path: " + target, "level=warn", "table_style=rounded", "Configuration valid"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}
