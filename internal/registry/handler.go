package registry

import (
	"context"
	"io"
	"log/slog"
)

// RunFunc is the body of a command.
type RunFunc func(ctx context.Context, inv *Invocation) error

// Handler is a command implementation together with its statically declared
// parameter schema. Params order is the positional binding order.
type Handler struct {
	// Doc is the handler documentation. Its first line is used as command
	// help when no explicit help was registered; the full text becomes the
	// long description.
	Doc    string
	Params []ParamSpec
	Run    RunFunc
}

// Invocation carries everything a handler receives for one dispatch.
type Invocation struct {
	// ID uniquely identifies this dispatch in logs.
	ID     string
	Group  string
	Name   string
	Args   Args
	Out    io.Writer
	Err    io.Writer
	Logger *slog.Logger
}

// Path returns the invoked command path.
func (inv *Invocation) Path() string {
	return inv.Group + " " + inv.Name
}

// Typed adapts a handler that works on a request struct. decode builds the
// request from the parsed arguments; its error is returned to the caller
// unchanged, like any other handler failure.
func Typed[T any](decode func(Args) (T, error), run func(context.Context, *Invocation, T) error) RunFunc {
	return func(ctx context.Context, inv *Invocation) error {
		req, err := decode(inv.Args)
		if err != nil {
			return err
		}
		return run(ctx, inv, req)
	}
}
