package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"regcli/internal/logging"
	"regcli/internal/registry"
)

// Tree is the command tree built from a registry.
type Tree struct {
	Root *cobra.Command
	// Groups is keyed by group name.
	Groups map[string]*cobra.Command
	// Commands is keyed by "group name".
	Commands map[string]*cobra.Command
	// Shadowed lists registrations replaced by a later one with the same path.
	Shadowed []registry.Descriptor
}

// Command returns the leaf for group and name.
func (t *Tree) Command(group, name string) (*cobra.Command, bool) {
	cmd, ok := t.Commands[group+" "+name]
	return cmd, ok
}

// BuildOption customizes Build.
type BuildOption func(*builder)

// WithLogger supplies the logger handed to handlers. The function is called
// at dispatch time so the logger can be configured after the tree is built.
func WithLogger(fn func() *slog.Logger) BuildOption {
	return func(b *builder) {
		if fn != nil {
			b.logger = fn
		}
	}
}

// WithInvocationIDs replaces the invocation ID generator.
func WithInvocationIDs(fn func() string) BuildOption {
	return func(b *builder) {
		if fn != nil {
			b.newID = fn
		}
	}
}

type builder struct {
	logger func() *slog.Logger
	newID  func() string

	reservedLong  map[string]string
	reservedShort map[string]string
}

// Build seals reg and attaches one group node per registered group and one
// command node per active registration to root. Root and group nodes print
// their help when invoked without arguments and reject unknown names with a
// UsageError. Flag conflicts and malformed names fail the whole build.
func Build(reg *registry.Registry, root *cobra.Command, opts ...BuildOption) (*Tree, error) {
	if reg == nil {
		return nil, errors.New("build command tree: nil registry")
	}
	if root == nil {
		return nil, errors.New("build command tree: nil root command")
	}

	b := &builder{
		logger: logging.NewNop,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.reserve(root)

	reg.Seal()

	root.Args = cobra.ArbitraryArgs
	root.RunE = containerRun("group")
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return NewUsageError(cmd, err)
	})

	tree := &Tree{
		Root:     root,
		Groups:   make(map[string]*cobra.Command),
		Commands: make(map[string]*cobra.Command),
		Shadowed: reg.Shadowed(),
	}

	for _, d := range reg.Active() {
		if err := validateName("group", d.Group); err != nil {
			return nil, err
		}
		if err := validateName("command", d.Name); err != nil {
			return nil, fmt.Errorf("%s: %w", d.Group, err)
		}
		if d.Group == "help" {
			return nil, fmt.Errorf("group %q: %w", d.Group, ErrReservedName)
		}

		groupCmd, ok := tree.Groups[d.Group]
		if !ok {
			groupCmd = &cobra.Command{
				Use:   d.Group,
				Short: d.Group + " commands",
				Args:  cobra.ArbitraryArgs,
				RunE:  containerRun("command"),
			}
			tree.Groups[d.Group] = groupCmd
			root.AddCommand(groupCmd)
		}

		cmd, err := b.command(d)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.Path(), err)
		}
		groupCmd.AddCommand(cmd)
		if args := strings.TrimPrefix(cmd.Use, d.Name); args != "" {
			cmd.Example = fmt.Sprintf("  # values starting with \"-\" go after --\n  %s --%s", cmd.CommandPath(), args)
		}
		tree.Commands[d.Path()] = cmd
	}

	return tree, nil
}

// reserve records the flags every leaf inherits so parameters cannot shadow them.
func (b *builder) reserve(root *cobra.Command) {
	b.reservedLong = map[string]string{"help": "the help flag"}
	b.reservedShort = map[string]string{"h": "the help flag"}
	root.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		b.reservedLong[f.Name] = "global flag --" + f.Name
		if f.Shorthand != "" {
			b.reservedShort[f.Shorthand] = "global flag --" + f.Name
		}
	})
}

func (b *builder) command(d registry.Descriptor) (*cobra.Command, error) {
	if d.Handler.Run == nil {
		return nil, ErrMissingRun
	}

	node := &commandNode{desc: d, builder: b}
	usedLong := maps.Clone(b.reservedLong)
	usedShort := maps.Clone(b.reservedShort)
	seen := make(map[string]struct{}, len(d.Params))

	for _, spec := range d.Params {
		if spec.Name == "" {
			return nil, fmt.Errorf("parameter with empty name: %w", ErrInvalidName)
		}
		if _, dup := seen[spec.Name]; dup {
			return nil, fmt.Errorf("parameter %q: %w", spec.Name, ErrDuplicateParam)
		}
		seen[spec.Name] = struct{}{}

		p, err := resolveParam(d, spec)
		if err != nil {
			return nil, err
		}
		if spec.Required() {
			node.positionals = append(node.positionals, p)
			continue
		}

		owner := fmt.Sprintf("parameter %q", spec.Name)
		if other, taken := usedLong[p.long]; taken {
			return nil, fmt.Errorf("--%s for %s collides with %s: %w", p.long, owner, other, ErrFlagConflict)
		}
		usedLong[p.long] = owner
		if p.short != "" {
			if other, taken := usedShort[p.short]; taken {
				return nil, fmt.Errorf("-%s for %s collides with %s (override Short or set NoShort): %w", p.short, owner, other, ErrFlagConflict)
			}
			usedShort[p.short] = owner
		}
		node.flags = append(node.flags, p)
	}

	cmd := &cobra.Command{
		Use:         node.use(),
		Short:       d.EffectiveHelp(),
		Long:        strings.TrimSpace(d.Handler.Doc),
		Annotations: d.Metadata,
		Args:        node.bindPositionals,
		RunE:        node.run,
	}
	for _, p := range node.flags {
		value := newFlagValue(p)
		flag := cmd.Flags().VarPF(value, p.long, p.short, p.help)
		// The help text already carries the default; stop pflag appending its own.
		flag.DefValue = ""
		if p.typ == registry.TypeBool {
			flag.NoOptDefVal = "true"
		}
		flag.Hidden = p.hidden
		node.values = append(node.values, value)
	}
	return cmd, nil
}

func resolveParam(d registry.Descriptor, spec registry.ParamSpec) (*param, error) {
	inferred := registry.ArgOptions{
		Long:       spec.Name,
		Type:       spec.Type,
		Help:       d.ParamHelpFor(spec.Name),
		Default:    spec.Default,
		HasDefault: spec.HasDefault,
	}
	if r, _ := utf8.DecodeRuneInString(spec.Name); r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
		inferred.Short = string(r)
	}
	merged := inferred.Overlay(d.ArgOptions[spec.Name])

	p := &param{
		spec:     spec,
		typ:      merged.Type.Normalize(),
		help:     merged.Help,
		long:     strings.TrimLeft(merged.Long, "-"),
		short:    strings.TrimLeft(merged.Short, "-"),
		choices:  merged.Choices,
		validate: merged.Validate,
		metavar:  merged.Metavar,
		hidden:   merged.Hidden,
	}
	if spec.Required() {
		// Positionals stay required; an overridden default does not apply.
		return p, nil
	}

	def, err := p.typ.Convert(merged.Default)
	if err != nil {
		return nil, fmt.Errorf("parameter %q: %w", spec.Name, err)
	}
	p.def = def
	p.help = fmt.Sprintf("%s (default: %s)", p.help, formatDefault(p.typ, def))

	if p.long == "" || strings.ContainsAny(p.long, " \t=") {
		return nil, fmt.Errorf("parameter %q: flag name %q: %w", spec.Name, p.long, ErrInvalidName)
	}
	if merged.NoShort {
		p.short = ""
	}
	if len(p.short) > 1 {
		return nil, fmt.Errorf("parameter %q: short flag %q must be one character: %w", spec.Name, p.short, ErrInvalidName)
	}
	return p, nil
}

// formatDefault renders a default for help text. Empty strings and strings
// with surrounding whitespace are quoted so they stay visible.
func formatDefault(typ registry.ParamType, value any) string {
	s := typ.Format(value)
	if s == "" || strings.TrimSpace(s) != s {
		return strconv.Quote(s)
	}
	return s
}

func validateName(kind, name string) error {
	if name == "" {
		return fmt.Errorf("empty %s name: %w", kind, ErrInvalidName)
	}
	if strings.HasPrefix(name, "-") || strings.ContainsFunc(name, unicode.IsSpace) {
		return fmt.Errorf("%s name %q: %w", kind, name, ErrInvalidName)
	}
	return nil
}

// containerRun prints help for a bare root or group node and rejects unknown
// child names.
func containerRun(kind string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		msg := fmt.Sprintf("unknown %s %q for %q", kind, args[0], cmd.CommandPath())
		if suggestions := cmd.SuggestionsFor(args[0]); len(suggestions) > 0 {
			msg += "\n\nDid you mean this?\n\t" + strings.Join(suggestions, "\n\t")
		}
		return NewUsageError(cmd, errors.New(msg))
	}
}
