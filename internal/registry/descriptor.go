package registry

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ParamSpec describes one declared handler parameter. Parameters without a
// default are required positionals; parameters with a default become flags.
type ParamSpec struct {
	Name       string
	Type       ParamType
	HasDefault bool
	Default    any
}

// Arg declares a required parameter.
func Arg(name string, typ ParamType) ParamSpec {
	return ParamSpec{Name: name, Type: typ}
}

// Opt declares an optional parameter with its default value.
func Opt(name string, typ ParamType, def any) ParamSpec {
	return ParamSpec{Name: name, Type: typ, HasDefault: true, Default: def}
}

// Required reports whether the parameter must be supplied positionally.
func (p ParamSpec) Required() bool {
	return !p.HasDefault
}

// normalize degrades unknown types and defaults that do not fit the declared
// type to TypeString instead of failing registration.
func (p ParamSpec) normalize() ParamSpec {
	p.Name = strings.TrimSpace(p.Name)
	p.Type = p.Type.Normalize()
	if !p.HasDefault {
		p.Default = nil
		return p
	}
	converted, err := p.Type.Convert(p.Default)
	if err != nil {
		p.Type = TypeString
		p.Default = fmt.Sprint(p.Default)
		return p
	}
	p.Default = converted
	return p
}

// ArgOptions overrides the parser settings inferred from a ParamSpec. Zero
// fields keep the inferred value.
type ArgOptions struct {
	// Long replaces the long flag name (without dashes).
	Long string
	// Short replaces the single-character short flag.
	Short string
	// NoShort drops the inferred short flag.
	NoShort bool
	Type    ParamType
	Help    string
	// Default replaces the declared default when HasDefault is set.
	Default    any
	HasDefault bool
	Choices    []string
	// Validate runs after type coercion; a non-nil error is a usage error.
	Validate func(any) error
	Metavar  string
	Hidden   bool
}

// Overlay returns o with every non-zero field of over applied on top.
func (o ArgOptions) Overlay(over ArgOptions) ArgOptions {
	if over.Long != "" {
		o.Long = over.Long
	}
	if over.Short != "" {
		o.Short = over.Short
		o.NoShort = false
	}
	if over.NoShort {
		o.NoShort = true
		o.Short = ""
	}
	if over.Type != "" {
		o.Type = over.Type.Normalize()
	}
	if over.Help != "" {
		o.Help = over.Help
	}
	if over.HasDefault {
		o.Default = over.Default
		o.HasDefault = true
	}
	if over.Choices != nil {
		o.Choices = slices.Clone(over.Choices)
	}
	if over.Validate != nil {
		o.Validate = over.Validate
	}
	if over.Metavar != "" {
		o.Metavar = over.Metavar
	}
	if over.Hidden {
		o.Hidden = true
	}
	return o
}

// Descriptor is the immutable record produced for each registration.
type Descriptor struct {
	Group      string
	Name       string
	Handler    Handler
	Params     []ParamSpec
	Help       string
	ParamHelp  map[string]string
	ArgOptions map[string]ArgOptions
	Metadata   map[string]string
	// Seq is the zero-based registration order.
	Seq int
}

// Path returns the command path as typed on the command line.
func (d Descriptor) Path() string {
	return d.Group + " " + d.Name
}

// EffectiveHelp resolves command help: explicit help, then the first line of
// the handler documentation, then a generated fallback.
func (d Descriptor) EffectiveHelp() string {
	if help := strings.TrimSpace(d.Help); help != "" {
		return help
	}
	if line := firstLine(d.Handler.Doc); line != "" {
		return line
	}
	return d.Name + " command"
}

// ParamHelpFor resolves parameter help: explicit override, then a generated fallback.
func (d Descriptor) ParamHelpFor(name string) string {
	if help := strings.TrimSpace(d.ParamHelp[name]); help != "" {
		return help
	}
	return name + " parameter"
}

// Param looks up a declared parameter by name.
func (d Descriptor) Param(name string) (ParamSpec, bool) {
	for _, p := range d.Params {
		if p.Name == name {
			return p, true
		}
	}
	return ParamSpec{}, false
}

// Required returns the positional parameters in declared order.
func (d Descriptor) Required() []ParamSpec {
	var out []ParamSpec
	for _, p := range d.Params {
		if p.Required() {
			out = append(out, p)
		}
	}
	return out
}

// Optional returns the flag parameters in declared order.
func (d Descriptor) Optional() []ParamSpec {
	var out []ParamSpec
	for _, p := range d.Params {
		if !p.Required() {
			out = append(out, p)
		}
	}
	return out
}

// MetadataValue returns a metadata entry.
func (d Descriptor) MetadataValue(key string) (string, bool) {
	v, ok := d.Metadata[key]
	return v, ok
}

func (d Descriptor) clone() Descriptor {
	d.Params = slices.Clone(d.Params)
	d.Handler.Params = slices.Clone(d.Handler.Params)
	d.ParamHelp = maps.Clone(d.ParamHelp)
	d.ArgOptions = maps.Clone(d.ArgOptions)
	d.Metadata = maps.Clone(d.Metadata)
	return d
}

func firstLine(doc string) string {
	for _, line := range strings.Split(doc, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
