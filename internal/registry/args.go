package registry

import (
	"maps"
	"slices"
	"time"
)

// Args is the set of parsed values handed to a handler. It only ever holds
// the parameters the handler declared.
type Args struct {
	names  []string
	values map[string]any
}

// BindArgs extracts the declared parameters of params from parsed, in
// declared order. Entries in parsed that the handler did not declare are
// dropped; declared parameters missing from parsed fall back to their
// default, or the zero value of their type.
func BindArgs(params []ParamSpec, parsed map[string]any) Args {
	args := Args{
		names:  make([]string, 0, len(params)),
		values: make(map[string]any, len(params)),
	}
	for _, p := range params {
		value, ok := parsed[p.Name]
		if !ok {
			if p.HasDefault {
				value = p.Default
			} else {
				value = p.Type.Zero()
			}
		}
		args.names = append(args.names, p.Name)
		args.values[p.Name] = value
	}
	return args
}

// Names returns the parameter names in declared order.
func (a Args) Names() []string {
	return slices.Clone(a.names)
}

// Len returns the number of bound parameters.
func (a Args) Len() int {
	return len(a.names)
}

// Has reports whether name is a bound parameter.
func (a Args) Has(name string) bool {
	_, ok := a.values[name]
	return ok
}

// Value returns the raw bound value.
func (a Args) Value(name string) (any, bool) {
	v, ok := a.values[name]
	return v, ok
}

// Map returns a copy of the bound values keyed by name.
func (a Args) Map() map[string]any {
	return maps.Clone(a.values)
}

func (a Args) String(name string) string {
	v, _ := a.values[name].(string)
	return v
}

func (a Args) Int(name string) int {
	v, _ := a.values[name].(int)
	return v
}

func (a Args) Float(name string) float64 {
	v, _ := a.values[name].(float64)
	return v
}

func (a Args) Bool(name string) bool {
	v, _ := a.values[name].(bool)
	return v
}

func (a Args) Duration(name string) time.Duration {
	v, _ := a.values[name].(time.Duration)
	return v
}

func (a Args) Strings(name string) []string {
	v, _ := a.values[name].([]string)
	return slices.Clone(v)
}
