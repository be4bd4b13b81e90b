package ast

import (
	"github.com/mythonlang/mython/internal/control"
	"github.com/mythonlang/mython/internal/object"
)

// truthOf reduces v to a bool, routing instances through __bool__ if
// they declare it, else falling back to Value.Truthy.
func truthOf(v object.Value, ctx *object.Context) (bool, error) {
	if inst, ok := v.AsInstance(); ok && inst.HasMethod(object.BoolMethod, 0) {
		r, err := inst.Call(object.BoolMethod, nil, ctx)
		if err != nil {
			return false, err
		}
		return r.Truthy(), nil
	}
	return v.Truthy(), nil
}

// Or short-circuits: RHS is evaluated only if LHS is falsy. The result
// is always a fresh Bool, never one of the operands themselves.
type Or struct{ LHS, RHS Node }

func (n *Or) Execute(closure *object.Closure, ctx *object.Context) (object.Value, control.Signal, error) {
	lv, _, err := n.LHS.Execute(closure, ctx)
	if err != nil {
		return object.None, control.None, err
	}
	lt, err := truthOf(lv, ctx)
	if err != nil {
		return object.None, control.None, err
	}
	if lt {
		return object.NewBool(true), control.None, nil
	}
	rv, _, err := n.RHS.Execute(closure, ctx)
	if err != nil {
		return object.None, control.None, err
	}
	rt, err := truthOf(rv, ctx)
	if err != nil {
		return object.None, control.None, err
	}
	return object.NewBool(rt), control.None, nil
}

// And short-circuits: RHS is evaluated only if LHS is truthy.
type And struct{ LHS, RHS Node }

func (n *And) Execute(closure *object.Closure, ctx *object.Context) (object.Value, control.Signal, error) {
	lv, _, err := n.LHS.Execute(closure, ctx)
	if err != nil {
		return object.None, control.None, err
	}
	lt, err := truthOf(lv, ctx)
	if err != nil {
		return object.None, control.None, err
	}
	if !lt {
		return object.NewBool(false), control.None, nil
	}
	rv, _, err := n.RHS.Execute(closure, ctx)
	if err != nil {
		return object.None, control.None, err
	}
	rt, err := truthOf(rv, ctx)
	if err != nil {
		return object.None, control.None, err
	}
	return object.NewBool(rt), control.None, nil
}

// Not negates its operand's truth value, again routed through
// __bool__ when the operand is an instance that declares it.
type Not struct{ Arg Node }

func (n *Not) Execute(closure *object.Closure, ctx *object.Context) (object.Value, control.Signal, error) {
	v, _, err := n.Arg.Execute(closure, ctx)
	if err != nil {
		return object.None, control.None, err
	}
	t, err := truthOf(v, ctx)
	if err != nil {
		return object.None, control.None, err
	}
	return object.NewBool(!t), control.None, nil
}
