package extensions

import (
	"context"
	"fmt"

	"regcli/internal/registry"
	"regcli/internal/textutil"
)

// Shout adds "text shout" to the text group.
func Shout(r *registry.Registry) {
	r.Register("text", "shout", registry.Handler{
		Doc:    "Print TEXT in upper case followed by three exclamation marks.",
		Params: []registry.ParamSpec{registry.Arg("text", registry.TypeString)},
		Run: func(_ context.Context, inv *registry.Invocation) error {
			_, err := fmt.Fprintln(inv.Out, textutil.Shout(inv.Args.String("text")))
			return err
		},
	}, registry.Help("Shout a String"), registry.DescribeParam("text", "the text to SHOUT"))
}
