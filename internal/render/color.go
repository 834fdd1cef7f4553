package render

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"regcli/internal/config"
)

// ShouldColorize reports whether output written to writer may use ANSI colour
// under the configured mode. Auto colours only real terminals.
func ShouldColorize(writer io.Writer, mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// OptionsFor derives table options for writer from cfg. A nil cfg uses defaults.
func OptionsFor(writer io.Writer, cfg *config.Config) TableOptions {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	return TableOptions{
		Style: cfg.Output.TableStyle,
		Color: ShouldColorize(writer, cfg.Output.Color),
	}
}
