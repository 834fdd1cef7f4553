package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

// Build-time configuration defects.
var (
	ErrFlagConflict   = errors.New("flag conflict")
	ErrReservedName   = errors.New("reserved name")
	ErrInvalidName    = errors.New("invalid name")
	ErrDuplicateParam = errors.New("duplicate parameter")
	ErrMissingRun     = errors.New("handler has no run function")
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// UsageError reports input the parser rejected before any handler ran.
type UsageError struct {
	// Command is the path of the command that rejected the input.
	Command string
	// Usage is that command's usage text.
	Usage string
	Err   error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// NewUsageError attributes err to cmd, capturing its path and usage text.
func NewUsageError(cmd *cobra.Command, err error) *UsageError {
	return &UsageError{
		Command: cmd.CommandPath(),
		Usage:   cmd.UsageString(),
		Err:     err,
	}
}

// ExitCode maps an execution error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitUsage
	}
	return ExitFailure
}
