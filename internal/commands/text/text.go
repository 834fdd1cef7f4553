// Package text registers the core text commands.
package text

import (
	"context"
	"fmt"

	"regcli/internal/registry"
	"regcli/internal/textutil"
)

// Group is the command group every text command registers under.
const Group = "text"

// Provider registers count, reverse, repeat, case, and similarity.
func Provider(r *registry.Registry) {
	r.Register(Group, "count", registry.Handler{
		Doc:    "Print the number of whitespace-separated words in TEXT.",
		Params: []registry.ParamSpec{registry.Arg("text", registry.TypeString)},
		Run:    count,
	}, registry.Help("Count Words"), registry.DescribeParam("text", "text to count words of"))

	r.Register(Group, "reverse", registry.Handler{
		Doc:    "Print TEXT with its characters in reverse order.",
		Params: []registry.ParamSpec{registry.Arg("text", registry.TypeString)},
		Run:    reverse,
	}, registry.Help("Reverse a Text"), registry.DescribeParam("text", "text to reverse"))

	r.Register(Group, "repeat", registry.Handler{
		Doc: "Print TEXT several times on one line.",
		Params: []registry.ParamSpec{
			registry.Arg("text", registry.TypeString),
			registry.Opt("times", registry.TypeInt, 1),
			registry.Opt("separator", registry.TypeString, " "),
		},
		Run: registry.Typed(decodeRepeat, repeat),
	},
		registry.ParamHelp(map[string]string{
			"text":      "text to repeat",
			"times":     "number of copies",
			"separator": "string placed between copies",
		}),
		registry.Override("times", registry.ArgOptions{Validate: nonNegative}),
	)

	r.Register(Group, "case", registry.Handler{
		Doc: "Change the letter case of TEXT.",
		Params: []registry.ParamSpec{
			registry.Arg("text", registry.TypeString),
			registry.Opt("mode", registry.TypeString, string(textutil.CaseTitle)),
		},
		Run: changeCase,
	},
		registry.DescribeParam("text", "text to convert"),
		registry.Override("mode", registry.ArgOptions{Choices: textutil.CaseModes(), Help: "case mapping to apply"}),
	)

	r.Register(Group, "similarity", registry.Handler{
		Doc: "Score how many words two texts share, from 0.000 (none) to 1.000 (same word counts).",
		Params: []registry.ParamSpec{
			registry.Arg("first", registry.TypeString),
			registry.Arg("second", registry.TypeString),
		},
		Run: similarity,
	}, registry.Help("Compare Two Texts"))
}

func count(_ context.Context, inv *registry.Invocation) error {
	_, err := fmt.Fprintf(inv.Out, "Word count:%d\n", textutil.CountWords(inv.Args.String("text")))
	return err
}

func reverse(_ context.Context, inv *registry.Invocation) error {
	_, err := fmt.Fprintln(inv.Out, textutil.Reverse(inv.Args.String("text")))
	return err
}

type repeatRequest struct {
	Text      string
	Times     int
	Separator string
}

func decodeRepeat(args registry.Args) (repeatRequest, error) {
	return repeatRequest{
		Text:      args.String("text"),
		Times:     args.Int("times"),
		Separator: args.String("separator"),
	}, nil
}

func repeat(_ context.Context, inv *registry.Invocation, req repeatRequest) error {
	_, err := fmt.Fprintln(inv.Out, textutil.Repeat(req.Text, req.Times, req.Separator))
	return err
}

func nonNegative(v any) error {
	if n, ok := v.(int); ok && n < 0 {
		return fmt.Errorf("must not be negative, got %d", n)
	}
	return nil
}

func changeCase(_ context.Context, inv *registry.Invocation) error {
	out, err := textutil.ChangeCase(inv.Args.String("text"), textutil.CaseMode(inv.Args.String("mode")))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(inv.Out, out)
	return err
}

func similarity(_ context.Context, inv *registry.Invocation) error {
	score := textutil.Similarity(inv.Args.String("first"), inv.Args.String("second"))
	_, err := fmt.Fprintf(inv.Out, "%.3f\n", score)
	return err
}
