// Package config loads, normalizes, and validates regcli configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours environment overrides such as REGCLI_LOG_LEVEL and
// NO_COLOR. Obtain settings through Load so callers receive canonical values
// and clear validation errors.
package config
