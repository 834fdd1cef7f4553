package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"

	"regcli/internal/registry"
)

// param is a ParamSpec with its overrides resolved.
type param struct {
	spec     registry.ParamSpec
	typ      registry.ParamType
	help     string
	long     string
	short    string
	def      any
	choices  []string
	validate func(any) error
	metavar  string
	hidden   bool
}

// coerce turns a raw token into the parameter's value, enforcing choices and
// the validator.
func (p *param) coerce(raw string) (any, error) {
	if len(p.choices) > 0 && !slices.Contains(p.choices, raw) {
		return nil, fmt.Errorf("argument %s: invalid choice %q (choose from %s)", p.spec.Name, raw, strings.Join(p.choices, ", "))
	}
	value, err := p.typ.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("argument %s: %w", p.spec.Name, err)
	}
	if p.validate != nil {
		if err := p.validate(value); err != nil {
			return nil, fmt.Errorf("argument %s: %w", p.spec.Name, err)
		}
	}
	return value, nil
}

func (p *param) displayName() string {
	if p.metavar != "" {
		return p.metavar
	}
	return p.spec.Name
}

// flagValue backs one optional parameter in a pflag.FlagSet.
type flagValue struct {
	param *param
	value any
}

var _ pflag.Value = (*flagValue)(nil)

func newFlagValue(p *param) *flagValue {
	return &flagValue{param: p, value: p.def}
}

func (v *flagValue) String() string {
	return v.param.typ.Format(v.value)
}

func (v *flagValue) Set(raw string) error {
	value, err := v.param.coerce(raw)
	if err != nil {
		return err
	}
	v.value = value
	return nil
}

// Type is rendered as the value placeholder in usage output.
func (v *flagValue) Type() string {
	if v.param.typ == registry.TypeBool {
		return "bool"
	}
	if v.param.metavar != "" {
		return v.param.metavar
	}
	if len(v.param.choices) > 0 {
		return "{" + strings.Join(v.param.choices, ",") + "}"
	}
	return string(v.param.typ)
}
