package ast

import (
	"io"

	"github.com/mythonlang/mython/internal/control"
	"github.com/mythonlang/mython/internal/object"
)

// Print evaluates each argument, writes each to ctx's output stream
// separated by single spaces, followed by a newline; an empty-handle
// argument prints the literal text "None".
type Print struct {
	Args []Node
}

func (n *Print) Execute(closure *object.Closure, ctx *object.Context) (object.Value, control.Signal, error) {
	for i, arg := range n.Args {
		if i > 0 {
			if _, err := io.WriteString(ctx.Out, " "); err != nil {
				return object.None, control.None, err
			}
		}
		v, _, err := arg.Execute(closure, ctx)
		if err != nil {
			return object.None, control.None, err
		}
		if err := v.Print(ctx.Out, ctx); err != nil {
			return object.None, control.None, err
		}
	}
	if _, err := io.WriteString(ctx.Out, "\n"); err != nil {
		return object.None, control.None, err
	}
	return object.None, control.None, nil
}
