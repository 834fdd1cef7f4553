// Package testsupport provides fixtures shared by regcli tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"regcli/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config rooted in a per-test temp directory. Logs go to
// a file under that directory so tests can inspect them.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Logging.File = filepath.Join(base, "logs", "regcli.log")
	cfgVal.Output.Color = config.ColorNever

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithLogLevel sets the configured log level.
func WithLogLevel(level string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Level = level
	}
}

// WithTimezone sets the schedule time zone.
func WithTimezone(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Schedule.Timezone = name
	}
}

// WithTableStyle sets the table style used by listing commands.
func WithTableStyle(style string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.TableStyle = style
	}
}

// WriteConfig marshals cfg to a TOML file in a fresh temp directory and
// returns its path.
func WriteConfig(t testing.TB, cfg *config.Config) string {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	return WriteFile(t, "regcli.toml", string(data))
}

// WriteFile writes body to name inside a fresh temp directory and returns the
// full path.
func WriteFile(t testing.TB, name, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// IsolateEnv points HOME at a temp directory and clears the environment
// variables that influence configuration loading.
func IsolateEnv(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")
	t.Setenv(config.EnvNoColor, "")
	return home
}
