package extensions

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"regcli/internal/registry"
	"regcli/internal/render"
)

// Inspect registers the registry group, which lists and describes the
// commands held by the registry it is loaded into.
func Inspect(env Env) registry.Provider {
	return func(r *registry.Registry) {
		r.Register("registry", "list", registry.Handler{
			Doc:    "List every registered command with its parameters.",
			Params: []registry.ParamSpec{registry.Opt("all", registry.TypeBool, false)},
			Run: func(_ context.Context, inv *registry.Invocation) error {
				return env.listCommands(inv, r)
			},
		},
			registry.Help("List Registered Commands"),
			registry.DescribeParam("all", "include registrations replaced by a later one"),
		)

		r.Register("registry", "show", registry.Handler{
			Doc: "Describe one command's parameters.",
			Params: []registry.ParamSpec{
				registry.Arg("group", registry.TypeString),
				registry.Arg("command", registry.TypeString),
			},
			Run: func(_ context.Context, inv *registry.Invocation) error {
				return env.showCommand(inv, r)
			},
		}, registry.Help("Show Command Parameters"))
	}
}

func (e Env) listCommands(inv *registry.Invocation, r *registry.Registry) error {
	all := inv.Args.Bool("all")

	var descriptors []registry.Descriptor
	if all {
		descriptors = r.Descriptors()
	} else {
		descriptors = r.Active()
	}
	shadowed := make(map[int]bool)
	for _, d := range r.Shadowed() {
		shadowed[d.Seq] = true
	}

	headers := []string{"Group", "Command", "Parameters", "Help"}
	if all {
		headers = append(headers, "Status")
	}
	rows := make([][]string, 0, len(descriptors))
	for _, d := range descriptors {
		row := []string{d.Group, d.Name, paramSummary(d), d.EffectiveHelp()}
		if all {
			row = append(row, statusLabel(shadowed[d.Seq]))
		}
		rows = append(rows, row)
	}

	opts := render.OptionsFor(inv.Out, e.config())
	if _, err := fmt.Fprintln(inv.Out, render.Table(headers, rows, nil, opts)); err != nil {
		return err
	}
	if n := len(r.Shadowed()); n > 0 && !all {
		_, err := fmt.Fprintf(inv.Out, "%d shadowed registration(s) hidden; use --all to show them\n", n)
		return err
	}
	return nil
}

func (e Env) showCommand(inv *registry.Invocation, r *registry.Registry) error {
	group := inv.Args.String("group")
	name := inv.Args.String("command")
	d, ok := r.Lookup(group, name)
	if !ok {
		return fmt.Errorf("no command %q in group %q", name, group)
	}

	out := inv.Out
	fmt.Fprintf(out, "%s: %s\n", d.Path(), d.EffectiveHelp())
	for _, key := range slices.Sorted(maps.Keys(d.Metadata)) {
		fmt.Fprintf(out, "%s: %s\n", key, d.Metadata[key])
	}
	if len(d.Params) == 0 {
		_, err := fmt.Fprintln(out, "No parameters.")
		return err
	}

	rows := make([][]string, 0, len(d.Params))
	for _, p := range d.Params {
		kind := "argument"
		def := ""
		if !p.Required() {
			kind = "option"
			def = displayDefault(p)
		}
		help := d.ParamHelpFor(p.Name)
		if over, ok := d.ArgOptions[p.Name]; ok && over.Help != "" {
			help = over.Help
		}
		if over, ok := d.ArgOptions[p.Name]; ok && len(over.Choices) > 0 {
			help += " {" + strings.Join(over.Choices, ",") + "}"
		}
		rows = append(rows, []string{p.Name, kind, string(p.Type), def, help})
	}

	table := render.Table([]string{"Name", "Kind", "Type", "Default", "Help"}, rows, nil, render.OptionsFor(out, e.config()))
	_, err := fmt.Fprintln(out, table)
	return err
}

func paramSummary(d registry.Descriptor) string {
	parts := make([]string, 0, len(d.Params))
	for _, p := range d.Required() {
		parts = append(parts, "<"+p.Name+">")
	}
	for _, p := range d.Optional() {
		parts = append(parts, fmt.Sprintf("[--%s %s=%s]", p.Name, p.Type, displayDefault(p)))
	}
	return strings.Join(parts, " ")
}

func statusLabel(shadowed bool) string {
	if shadowed {
		return "shadowed"
	}
	return "active"
}

func displayDefault(p registry.ParamSpec) string {
	s := p.Type.Format(p.Default)
	if s == "" || strings.TrimSpace(s) != s {
		return strconv.Quote(s)
	}
	return s
}
