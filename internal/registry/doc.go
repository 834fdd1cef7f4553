// Package registry collects command descriptors declared by independently
// written handler providers.
//
// A provider is a plain function that receives the shared *Registry and calls
// Register once per command. Each registration pairs a group and command name
// with a Handler whose parameter schema is declared next to the handler
// itself (Arg and Opt), plus optional help text, per-parameter help, parser
// overrides, and free-form metadata. The registry is append-only until the
// CLI builder seals it; after that point it is read-only for the rest of the
// process.
//
// The registry knows nothing about argument parsing. It only records what a
// handler accepts and hands the parsed values back through Args, which always
// contains exactly the parameters the handler declared.
package registry
