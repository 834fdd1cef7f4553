package registry

import (
	"fmt"
	"strings"
)

// Registry is the ordered collection of every registered Descriptor.
// It is not safe for concurrent registration; providers run sequentially
// during startup.
type Registry struct {
	descriptors []Descriptor
	sealed      bool
}

// Provider registers a unit of commands into a registry.
type Provider func(*Registry)

// Option attaches caller metadata to a registration.
type Option func(*Descriptor)

// New returns an empty registry.
func New() *Registry {
	return &Registry{}
}

// Help sets the command help, taking precedence over the handler documentation.
func Help(text string) Option {
	return func(d *Descriptor) {
		d.Help = strings.TrimSpace(text)
	}
}

// ParamHelp sets help overrides for several parameters at once.
func ParamHelp(help map[string]string) Option {
	return func(d *Descriptor) {
		for name, text := range help {
			d.ParamHelp[name] = text
		}
	}
}

// DescribeParam sets the help override for a single parameter.
func DescribeParam(name, text string) Option {
	return func(d *Descriptor) {
		d.ParamHelp[name] = text
	}
}

// Override layers parser overrides on top of the settings inferred for a
// parameter. Repeated overrides for the same name are overlaid in order.
func Override(name string, opts ArgOptions) Option {
	return func(d *Descriptor) {
		d.ArgOptions[name] = d.ArgOptions[name].Overlay(opts)
	}
}

// Metadata records a free-form key/value pair on the descriptor.
func Metadata(key, value string) Option {
	return func(d *Descriptor) {
		d.Metadata[key] = value
	}
}

// Register records a command and returns h unchanged so it stays directly
// callable. The parameter schema always comes from h.Params; options only
// contribute help text, overrides, and metadata.
//
// Registering after the registry has been sealed panics.
func (r *Registry) Register(group, name string, h Handler, opts ...Option) Handler {
	if r.sealed {
		panic(fmt.Sprintf("registry: register %q %q after seal", group, name))
	}

	d := Descriptor{
		Group:      strings.TrimSpace(group),
		Name:       strings.TrimSpace(name),
		ParamHelp:  map[string]string{},
		ArgOptions: map[string]ArgOptions{},
		Metadata:   map[string]string{},
		Seq:        len(r.descriptors),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&d)
		}
	}

	d.Params = make([]ParamSpec, 0, len(h.Params))
	for _, p := range h.Params {
		d.Params = append(d.Params, p.normalize())
	}
	d.Handler = h
	d.Handler.Params = d.Params

	r.descriptors = append(r.descriptors, d.clone())
	return h
}

// Load runs providers in order. It is the only discovery step: the provider
// list is composed explicitly by the caller.
func (r *Registry) Load(providers ...Provider) {
	for _, provide := range providers {
		if provide != nil {
			provide(r)
		}
	}
}

// Seal ends the registration phase.
func (r *Registry) Seal() {
	r.sealed = true
}

// Sealed reports whether Seal has been called.
func (r *Registry) Sealed() bool {
	return r.sealed
}

// Len returns the number of registrations, shadowed ones included.
func (r *Registry) Len() int {
	return len(r.descriptors)
}

// Descriptors returns every registration in insertion order.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(r.descriptors))
	for _, d := range r.descriptors {
		out = append(out, d.clone())
	}
	return out
}

// Active returns the registrations that survive last-wins resolution of
// duplicate paths, in insertion order of the surviving entries.
func (r *Registry) Active() []Descriptor {
	last := r.lastIndex()
	out := make([]Descriptor, 0, len(last))
	for i, d := range r.descriptors {
		if last[d.Path()] == i {
			out = append(out, d.clone())
		}
	}
	return out
}

// Shadowed returns registrations hidden by a later registration of the
// same group and name.
func (r *Registry) Shadowed() []Descriptor {
	last := r.lastIndex()
	var out []Descriptor
	for i, d := range r.descriptors {
		if last[d.Path()] != i {
			out = append(out, d.clone())
		}
	}
	return out
}

// Lookup returns the last registration for group and name.
func (r *Registry) Lookup(group, name string) (Descriptor, bool) {
	for i := len(r.descriptors) - 1; i >= 0; i-- {
		d := r.descriptors[i]
		if d.Group == group && d.Name == name {
			return d.clone(), true
		}
	}
	return Descriptor{}, false
}

// Groups returns the distinct groups in the order they first appear among
// the active registrations.
func (r *Registry) Groups() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, d := range r.Active() {
		if _, ok := seen[d.Group]; ok {
			continue
		}
		seen[d.Group] = struct{}{}
		out = append(out, d.Group)
	}
	return out
}

func (r *Registry) lastIndex() map[string]int {
	last := make(map[string]int, len(r.descriptors))
	for i, d := range r.descriptors {
		last[d.Path()] = i
	}
	return last
}
