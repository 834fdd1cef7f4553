package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"regcli/internal/logging"
	"regcli/internal/registry"
)

// commandNode binds one descriptor to its cobra command.
type commandNode struct {
	desc    registry.Descriptor
	builder *builder

	positionals []*param
	flags       []*param
	values      []*flagValue

	// bound holds the coerced positionals between argument validation and run.
	bound map[string]any
}

func (n *commandNode) use() string {
	var b strings.Builder
	b.WriteString(n.desc.Name)
	for _, p := range n.positionals {
		b.WriteString(" <")
		b.WriteString(p.displayName())
		b.WriteString(">")
	}
	return b.String()
}

// bindPositionals validates the positional count and coerces each token in
// declared order. Failures surface as usage errors before the handler runs.
func (n *commandNode) bindPositionals(cmd *cobra.Command, args []string) error {
	if len(args) < len(n.positionals) {
		missing := make([]string, 0, len(n.positionals)-len(args))
		for _, p := range n.positionals[len(args):] {
			missing = append(missing, p.displayName())
		}
		return NewUsageError(cmd, fmt.Errorf("missing required argument(s): %s", strings.Join(missing, ", ")))
	}
	if len(args) > len(n.positionals) {
		return NewUsageError(cmd, fmt.Errorf("unexpected argument(s): %s", strings.Join(args[len(n.positionals):], " ")))
	}

	bound := make(map[string]any, len(args))
	for i, p := range n.positionals {
		value, err := p.coerce(args[i])
		if err != nil {
			return NewUsageError(cmd, err)
		}
		bound[p.spec.Name] = value
	}
	n.bound = bound
	return nil
}

// parsed gathers everything the parser produced for this invocation: every
// flag visible to the command, including inherited and bookkeeping ones, plus
// the declared parameters keyed by parameter name.
func (n *commandNode) parsed(cmd *cobra.Command) map[string]any {
	out := make(map[string]any)
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		out[f.Name] = f.Value.String()
	})
	cmd.InheritedFlags().VisitAll(func(f *pflag.Flag) {
		out[f.Name] = f.Value.String()
	})
	for _, v := range n.values {
		out[v.param.spec.Name] = v.value
	}
	for name, value := range n.bound {
		out[name] = value
	}
	return out
}

func (n *commandNode) run(cmd *cobra.Command, _ []string) error {
	logger := n.builder.logger()
	if logger == nil {
		logger = logging.NewNop()
	}
	inv := &registry.Invocation{
		ID:    n.builder.newID(),
		Group: n.desc.Group,
		Name:  n.desc.Name,
		Args:  registry.BindArgs(n.desc.Params, n.parsed(cmd)),
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
	inv.Logger = logger.With(
		logging.String(logging.FieldInvocationID, inv.ID),
		logging.String(logging.FieldGroup, inv.Group),
		logging.String(logging.FieldCommand, inv.Name),
	)
	inv.Logger.Debug("dispatching command", logging.Args(logging.Strings(logging.FieldParams, inv.Args.Names()))...)

	// Handler failures are returned as-is.
	return n.desc.Handler.Run(cmd.Context(), inv)
}
