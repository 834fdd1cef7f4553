package registry_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regcli/internal/registry"
)

func TestBindArgsKeepsOnlyDeclaredParameters(t *testing.T) {
	params := []registry.ParamSpec{registry.Arg("text", registry.TypeString)}
	parsed := map[string]any{
		"text":      "a b c",
		"help":      false,
		"config":    "/tmp/regcli.toml",
		"log-level": "debug",
	}

	args := registry.BindArgs(params, parsed)

	assert.Equal(t, []string{"text"}, args.Names())
	assert.Equal(t, 1, args.Len())
	assert.Equal(t, map[string]any{"text": "a b c"}, args.Map())
	assert.False(t, args.Has("help"))
	assert.False(t, args.Has("config"))
}

func TestBindArgsFallsBackToDefaults(t *testing.T) {
	params := []registry.ParamSpec{
		registry.Arg("text", registry.TypeString),
		registry.Opt("times", registry.TypeInt, 1),
		registry.Arg("limit", registry.TypeInt),
	}

	args := registry.BindArgs(params, map[string]any{"text": "x"})

	assert.Equal(t, []string{"text", "times", "limit"}, args.Names())
	assert.Equal(t, 1, args.Int("times"))
	v, ok := args.Value("limit")
	require.True(t, ok)
	assert.Equal(t, 0, v)
}

func TestArgsTypedAccessors(t *testing.T) {
	params := []registry.ParamSpec{
		registry.Arg("s", registry.TypeString),
		registry.Arg("i", registry.TypeInt),
		registry.Arg("f", registry.TypeFloat),
		registry.Arg("b", registry.TypeBool),
		registry.Arg("d", registry.TypeDuration),
		registry.Arg("l", registry.TypeStrings),
	}
	args := registry.BindArgs(params, map[string]any{
		"s": "str",
		"i": 42,
		"f": 1.5,
		"b": true,
		"d": 2 * time.Second,
		"l": []string{"a", "b"},
	})

	assert.Equal(t, "str", args.String("s"))
	assert.Equal(t, 42, args.Int("i"))
	assert.Equal(t, 1.5, args.Float("f"))
	assert.True(t, args.Bool("b"))
	assert.Equal(t, 2*time.Second, args.Duration("d"))
	assert.Equal(t, []string{"a", "b"}, args.Strings("l"))

	// Wrong-type and unknown lookups yield zero values.
	assert.Equal(t, 0, args.Int("s"))
	assert.Equal(t, "", args.String("missing"))
}

func TestArgsStringsReturnsCopy(t *testing.T) {
	params := []registry.ParamSpec{registry.Arg("l", registry.TypeStrings)}
	args := registry.BindArgs(params, map[string]any{"l": []string{"a"}})

	got := args.Strings("l")
	got[0] = "changed"
	assert.Equal(t, []string{"a"}, args.Strings("l"))
}
