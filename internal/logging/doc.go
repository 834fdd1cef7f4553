// Package logging assembles the slog loggers used by regcli.
//
// New and NewFromConfig build either a console handler meant for people
// reading a terminal or a JSON handler for log shippers. Both write to stderr
// by default so handler output on stdout stays clean. Field keys shared by
// the dispatcher and handlers live here too, together with a no-op logger for
// tests and for wiring that runs before configuration is known.
package logging
