package cli_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regcli/internal/cli"
	"regcli/internal/registry"
	"regcli/internal/testsupport"
)

func countWords(_ context.Context, inv *registry.Invocation) error {
	fmt.Fprintf(inv.Out, "Word count:%d\n", len(strings.Fields(inv.Args.String("text"))))
	return nil
}

func textRegistry(calls *int) *registry.Registry {
	reg := registry.New()
	reg.Register("text", "count", registry.Handler{
		Params: []registry.ParamSpec{registry.Arg("text", registry.TypeString)},
		Run: func(ctx context.Context, inv *registry.Invocation) error {
			*calls++
			return countWords(ctx, inv)
		},
	}, registry.Help("Count Words"), registry.ParamHelp(map[string]string{"text": "text to count words of"}))
	reg.Register("text", "shout", registry.Handler{
		Params: []registry.ParamSpec{registry.Arg("text", registry.TypeString)},
		Run: func(_ context.Context, inv *registry.Invocation) error {
			*calls++
			fmt.Fprintf(inv.Out, "%s!!!\n", strings.ToUpper(inv.Args.String("text")))
			return nil
		},
	})
	reg.Register("text", "repeat", registry.Handler{
		Params: []registry.ParamSpec{
			registry.Arg("text", registry.TypeString),
			registry.Opt("times", registry.TypeInt, 1),
		},
		Run: func(_ context.Context, inv *registry.Invocation) error {
			*calls++
			fmt.Fprintf(inv.Out, "times=%d\n", inv.Args.Int("times"))
			return nil
		},
	})
	return reg
}

func TestDispatchCountScenario(t *testing.T) {
	var calls int
	tree := build(t, textRegistry(&calls))

	out, _, err := execute(t, tree, "text", "count", "a b c")
	require.NoError(t, err)
	assert.Equal(t, "Word count:3\n", out)
	assert.Equal(t, 1, calls)
}

func TestDispatchMissingRequiredArgument(t *testing.T) {
	var calls int
	tree := build(t, textRegistry(&calls))

	_, _, err := execute(t, tree, "text", "count")
	var usageErr *cli.UsageError
	require.ErrorAs(t, err, &usageErr)
	assert.Contains(t, err.Error(), "missing required argument(s): text")
	assert.Equal(t, "prog text count", usageErr.Command)
	assert.Contains(t, usageErr.Usage, "count <text>")
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	assert.Zero(t, calls)
}

func TestDispatchUnexpectedArgument(t *testing.T) {
	var calls int
	tree := build(t, textRegistry(&calls))

	_, _, err := execute(t, tree, "text", "count", "a", "b")
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	assert.Zero(t, calls)
}

func TestDispatchShoutScenario(t *testing.T) {
	var calls int
	tree := build(t, textRegistry(&calls))

	out, _, err := execute(t, tree, "text", "shout", "hi")
	require.NoError(t, err)
	assert.Equal(t, "HI!!!\n", out)
}

func TestDispatchDefaultFallback(t *testing.T) {
	var calls int
	tree := build(t, textRegistry(&calls))

	out, _, err := execute(t, tree, "text", "repeat", "x")
	require.NoError(t, err)
	assert.Equal(t, "times=1\n", out)

	tree = build(t, textRegistry(&calls))
	out, _, err = execute(t, tree, "text", "repeat", "x", "--times", "3")
	require.NoError(t, err)
	assert.Equal(t, "times=3\n", out)

	tree = build(t, textRegistry(&calls))
	out, _, err = execute(t, tree, "text", "repeat", "-t", "5", "x")
	require.NoError(t, err)
	assert.Equal(t, "times=5\n", out)
}

func TestDispatchNoArgumentsPrintsHelp(t *testing.T) {
	var calls int
	tree := build(t, textRegistry(&calls))

	out, _, err := execute(t, tree)
	require.NoError(t, err)
	assert.Contains(t, out, "Available Commands")
	assert.Contains(t, out, "text commands")
	assert.NotContains(t, out, "completion")
	assert.Equal(t, cli.ExitOK, cli.ExitCode(err))
	assert.Zero(t, calls)
}

func TestDispatchGroupWithoutCommandPrintsGroupHelp(t *testing.T) {
	var calls int
	tree := build(t, textRegistry(&calls))

	out, _, err := execute(t, tree, "text")
	require.NoError(t, err)
	assert.Contains(t, out, "Count Words")
	assert.Contains(t, out, "shout")
	assert.Zero(t, calls)
}

func TestDispatchUnknownGroupAndCommand(t *testing.T) {
	var calls int
	tree := build(t, textRegistry(&calls))

	_, _, err := execute(t, tree, "txt", "count", "a")
	var usageErr *cli.UsageError
	require.ErrorAs(t, err, &usageErr)
	assert.Contains(t, err.Error(), `unknown group "txt"`)
	assert.Contains(t, err.Error(), "Did you mean this?")

	tree = build(t, textRegistry(&calls))
	_, _, err = execute(t, tree, "text", "cuont")
	require.ErrorAs(t, err, &usageErr)
	assert.Contains(t, err.Error(), `unknown command "cuont" for "prog text"`)
	assert.Zero(t, calls)
}

func TestDispatchPositionalOrder(t *testing.T) {
	tree := build(t, registryWithABC())
	out, _, err := execute(t, tree, "g", "abc", "1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "a=1\nb=2\nc=3\n", out)

	tree = build(t, registryWithABC())
	out, _, err = execute(t, tree, "g", "abc", "2", "1", "3")
	require.NoError(t, err)
	assert.Equal(t, "a=2\nb=1\nc=3\n", out)
}

func registryWithABC() *registry.Registry {
	reg := registry.New()
	reg.Register("g", "abc", registry.Handler{
		Params: []registry.ParamSpec{
			registry.Arg("a", registry.TypeString),
			registry.Arg("b", registry.TypeString),
			registry.Arg("c", registry.TypeInt),
		},
		Run: printArgs,
	})
	return reg
}

func TestDispatchTypeCoercionFailures(t *testing.T) {
	var calls int
	reg := registry.New()
	reg.Register("math", "double", registry.Handler{
		Params: []registry.ParamSpec{
			registry.Arg("n", registry.TypeInt),
			registry.Opt("factor", registry.TypeInt, 2),
		},
		Run: func(_ context.Context, inv *registry.Invocation) error {
			calls++
			fmt.Fprintln(inv.Out, inv.Args.Int("n")*inv.Args.Int("factor"))
			return nil
		},
	})

	tree := build(t, reg)
	_, _, err := execute(t, tree, "math", "double", "abc")
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	assert.Contains(t, err.Error(), `invalid int value "abc"`)

	_, _, err = execute(t, tree, "math", "double", "4", "--factor", "many")
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	assert.Zero(t, calls)

	out, _, err := execute(t, tree, "math", "double", "4", "-f", "3")
	require.NoError(t, err)
	assert.Equal(t, "12\n", out)
}

func TestDispatchIsolatesDeclaredParameters(t *testing.T) {
	var seen []string
	reg := registry.New()
	reg.Register("text", "echo", registry.Handler{
		Params: []registry.ParamSpec{registry.Arg("text", registry.TypeString)},
		Run: func(_ context.Context, inv *registry.Invocation) error {
			seen = inv.Args.Names()
			_, hasConfig := inv.Args.Value("config")
			assert.False(t, hasConfig)
			return nil
		},
	})

	tree := build(t, reg)
	_, _, err := execute(t, tree, "--config", "/tmp/x.toml", "text", "echo", "hi")
	require.NoError(t, err)
	assert.Equal(t, []string{"text"}, seen)
}

func TestDispatchOverriddenLongNameStillBindsByParameter(t *testing.T) {
	reg := registry.New()
	reg.Register("g", "cmd", registry.Handler{
		Params: []registry.ParamSpec{registry.Opt("times", registry.TypeInt, 1)},
		Run:    printArgs,
	}, registry.Override("times", registry.ArgOptions{Long: "count", Short: "n"}))

	tree := build(t, reg)
	out, _, err := execute(t, tree, "g", "cmd", "--count", "4")
	require.NoError(t, err)
	assert.Equal(t, "times=4\n", out)
}

func TestDispatchValidatorFailureIsUsageError(t *testing.T) {
	reg := registry.New()
	reg.Register("g", "cmd", registry.Handler{
		Params: []registry.ParamSpec{registry.Opt("count", registry.TypeInt, 5)},
		Run:    printArgs,
	}, registry.Override("count", registry.ArgOptions{Validate: func(v any) error {
		if v.(int) <= 0 {
			return errors.New("must be positive")
		}
		return nil
	}}))

	tree := build(t, reg)
	_, _, err := execute(t, tree, "g", "cmd", "--count", "0")
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	assert.Contains(t, err.Error(), "must be positive")
}

func TestDispatchHandlerErrorPropagatesUnchanged(t *testing.T) {
	errBoom := errors.New("boom")
	reg := registry.New()
	reg.Register("g", "fail", registry.Handler{
		Run: func(context.Context, *registry.Invocation) error { return errBoom },
	})

	tree := build(t, reg)
	_, _, err := execute(t, tree, "g", "fail")
	assert.Same(t, errBoom, err)
	assert.Equal(t, cli.ExitFailure, cli.ExitCode(err))
}

func TestDispatchInvocationMetadata(t *testing.T) {
	var got *registry.Invocation
	reg := registry.New()
	reg.Register("g", "meta", registry.Handler{
		Run: func(_ context.Context, inv *registry.Invocation) error {
			got = inv
			return nil
		},
	})

	tree := build(t, reg, cli.WithInvocationIDs(func() string { return "fixed-id" }))
	_, _, err := execute(t, tree, "g", "meta")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "fixed-id", got.ID)
	assert.Equal(t, "g meta", got.Path())
	assert.NotNil(t, got.Logger)
	assert.Equal(t, 0, got.Args.Len())
}

func TestDispatchBoolFlag(t *testing.T) {
	reg := registry.New()
	reg.Register("g", "cmd", registry.Handler{
		Params: []registry.ParamSpec{registry.Opt("verbose", registry.TypeBool, false)},
		Run:    printArgs,
	})

	tree := build(t, reg)
	out, _, err := execute(t, tree, "g", "cmd", "--verbose")
	require.NoError(t, err)
	assert.Equal(t, "verbose=true\n", out)

	tree = build(t, func() *registry.Registry {
		r := registry.New()
		r.Register("g", "cmd", registry.Handler{
			Params: []registry.ParamSpec{registry.Opt("verbose", registry.TypeBool, true)},
			Run:    printArgs,
		})
		return r
	}())
	out, _, err = execute(t, tree, "g", "cmd", "--verbose=false")
	require.NoError(t, err)
	assert.Equal(t, "verbose=false\n", out)
}

func TestDispatchRecordsDeclaredParametersOnly(t *testing.T) {
	rec := &testsupport.Recorder{}
	reg := registry.New()
	reg.Register("g", "rec", rec.Handler(
		registry.Arg("name", registry.TypeString),
		registry.Opt("limit", registry.TypeInt, 10),
		registry.Opt("tags", registry.TypeStrings, nil),
	))

	tree := build(t, reg)
	_, _, err := execute(t, tree, "--config", "x.toml", "g", "rec", "bob", "--tags", "a,b")
	require.NoError(t, err)

	require.Len(t, rec.Calls(), 1)
	inv := rec.Last()
	assert.Equal(t, []string{"name", "limit", "tags"}, inv.Args.Names())
	assert.Equal(t, "bob", inv.Args.String("name"))
	assert.Equal(t, 10, inv.Args.Int("limit"))
	assert.Equal(t, []string{"a", "b"}, inv.Args.Strings("tags"))
}
