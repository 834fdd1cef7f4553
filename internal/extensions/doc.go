// Package extensions registers the commands that sit outside the core text
// group: text shout, the schedule and registry groups, and the config group.
//
// Providers here close over an Env so they can reach process state such as
// the loaded configuration without importing the entry point.
package extensions
