package ast

import (
	"github.com/mythonlang/mython/internal/control"
	"github.com/mythonlang/mython/internal/object"
)

// Compound runs its children in order and yields an empty handle,
// except that a Return signal surfacing from any child stops the run
// immediately and propagates that signal (and its carried value) to
// the caller instead of being swallowed. This lets a return statement
// nested inside an if body, itself compiled as a Compound, still reach
// the enclosing MethodBody.
type Compound struct {
	Children []Node
}

func (n *Compound) Execute(closure *object.Closure, ctx *object.Context) (object.Value, control.Signal, error) {
	for _, child := range n.Children {
		v, sig, err := child.Execute(closure, ctx)
		if err != nil {
			return object.None, control.None, err
		}
		if sig == control.Return {
			return v, control.Return, nil
		}
	}
	return object.None, control.None, nil
}

// MethodBody wraps a method's compiled statements and turns a Return
// signal from Body into an ordinary value, per the calling convention
// Instance.Call expects: whatever control.Signal MethodBody itself
// returns is always control.None, because the Return has already been
// caught here.
type MethodBody struct {
	Body Node
}

func (n *MethodBody) Execute(closure *object.Closure, ctx *object.Context) (object.Value, control.Signal, error) {
	v, sig, err := n.Body.Execute(closure, ctx)
	if err != nil {
		return object.None, control.None, err
	}
	if sig == control.Return {
		return v, control.None, nil
	}
	return object.None, control.None, nil
}

// Return evaluates Expr and surfaces it with the Return signal, to be
// caught by the nearest enclosing MethodBody.
type Return struct {
	Expr Node
}

func (n *Return) Execute(closure *object.Closure, ctx *object.Context) (object.Value, control.Signal, error) {
	v, _, err := n.Expr.Execute(closure, ctx)
	if err != nil {
		return object.None, control.None, err
	}
	return v, control.Return, nil
}
