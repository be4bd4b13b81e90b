package ast

import (
	"github.com/mythonlang/mython/internal/control"
	"github.com/mythonlang/mython/internal/object"
)

// NewInstance constructs a fresh instance of Class on every
// evaluation and, if the class (including parents) declares
// __init__ with exactly len(Args) formals, evaluates the arguments
// and invokes it. Each evaluation allocates independently; a
// constructor expression inside a method yields a new instance per
// call, never an alias of a previous one.
type NewInstance struct {
	Class *object.Class
	Args  []Node
}

func (n *NewInstance) Execute(closure *object.Closure, ctx *object.Context) (object.Value, control.Signal, error) {
	inst := object.NewInstance(n.Class, ctx.Instances)
	if inst.HasMethod(object.InitMethod, len(n.Args)) {
		argVals := make([]object.Value, len(n.Args))
		for i, a := range n.Args {
			v, _, err := a.Execute(closure, ctx)
			if err != nil {
				return object.None, control.None, err
			}
			argVals[i] = v
		}
		if _, err := inst.Call(object.InitMethod, argVals, ctx); err != nil {
			return object.None, control.None, err
		}
	}
	return object.NewInstanceValue(inst), control.None, nil
}

// Stringify evaluates Arg; if the result is an instance exposing
// __str__ with no arguments, calls it, else formats the value via its
// own Print. An empty handle becomes the string "None". The result is
// always a String value.
type Stringify struct {
	Arg Node
}

func (n *Stringify) Execute(closure *object.Closure, ctx *object.Context) (object.Value, control.Signal, error) {
	v, _, err := n.Arg.Execute(closure, ctx)
	if err != nil {
		return object.None, control.None, err
	}
	if inst, ok := v.AsInstance(); ok && inst.HasMethod(object.StrMethod, 0) {
		v, err = inst.Call(object.StrMethod, nil, ctx)
		if err != nil {
			return object.None, control.None, err
		}
	}
	return object.NewString(v.String(ctx)), control.None, nil
}
