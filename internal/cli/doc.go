// Package cli turns a sealed command registry into a Cobra command tree and
// dispatches parsed input back to the registered handlers.
//
// Build creates a group node per registered group and a command node per
// active registration. Required parameters become positionals bound in
// declared order; optional parameters become flags spelled -<first letter>
// and --<name>, with their defaults appended to the help text. Parameter
// overrides registered through registry.Override replace any of the inferred
// settings.
//
// Everything the parser rejects is reported as a *UsageError so the entry
// point can print usage and exit with ExitUsage. Handler failures pass through
// untouched.
package cli
