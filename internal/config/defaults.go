package config

const (
	// DefaultLogLevel is the log level used when nothing else is configured.
	DefaultLogLevel = "warn"
	// DefaultLogFormat is the log format used when nothing else is configured.
	DefaultLogFormat = "console"

	defaultColor      = ColorAuto
	defaultTableStyle = TableStyleRounded
	defaultTimezone   = "Local"

	defaultConfigPath = "~/.config/regcli/config.toml"
	projectConfigFile = "regcli.toml"
)

// Color modes for [output] color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Table styles for [output] table_style.
const (
	TableStyleRounded = "rounded"
	TableStyleLight   = "light"
	TableStyleASCII   = "ascii"
)

// Environment variables consulted during normalization.
const (
	EnvLogLevel  = "REGCLI_LOG_LEVEL"
	EnvLogFormat = "REGCLI_LOG_FORMAT"
	EnvNoColor   = "NO_COLOR"
)

// Default returns a Config populated with defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Output: Output{
			Color:      defaultColor,
			TableStyle: defaultTableStyle,
		},
		Schedule: Schedule{
			Timezone: defaultTimezone,
		},
	}
}
