// Package commands composes the provider list the regcli binary loads.
package commands

import (
	"regcli/internal/commands/text"
	"regcli/internal/extensions"
	"regcli/internal/registry"
)

// Providers returns every built-in provider in load order: core text
// commands first, then extensions. A later registration for an existing path
// replaces the earlier one, so the order is significant.
func Providers(env extensions.Env) []registry.Provider {
	return []registry.Provider{
		text.Provider,
		extensions.Shout,
		extensions.Schedule(env),
		extensions.Inspect(env),
		extensions.Config(env),
	}
}

// NewRegistry returns a registry with every built-in provider loaded.
func NewRegistry(env extensions.Env) *registry.Registry {
	reg := registry.New()
	reg.Load(Providers(env)...)
	return reg
}
