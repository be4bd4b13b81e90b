package ast

import (
	"github.com/mythonlang/mython/internal/control"
	"github.com/mythonlang/mython/internal/object"
)

// VariableValue resolves a dotted identifier path: the first id is
// looked up in the closure, then each remaining id walks into the
// current value's instance fields. A missing binding at any step is a
// runtime error.
type VariableValue struct {
	Ids []string
}

func (n *VariableValue) Execute(closure *object.Closure, ctx *object.Context) (object.Value, control.Signal, error) {
	v, ok := closure.Get(n.Ids[0])
	if !ok {
		return object.None, control.None, runtimeErrorf("name %q is not defined", n.Ids[0])
	}
	for _, id := range n.Ids[1:] {
		inst, ok := v.AsInstance()
		if !ok {
			return object.None, control.None, runtimeErrorf("%q has no field %q", n.Ids[0], id)
		}
		v, ok = inst.Fields.Get(id)
		if !ok {
			return object.None, control.None, runtimeErrorf("instance has no field %q", id)
		}
	}
	return v, control.None, nil
}

// Assignment evaluates rhs, stores the result in closure under name,
// and returns the stored handle.
type Assignment struct {
	Name string
	RHS  Node
}

func (n *Assignment) Execute(closure *object.Closure, ctx *object.Context) (object.Value, control.Signal, error) {
	v, sig, err := n.RHS.Execute(closure, ctx)
	if err != nil {
		return object.None, control.None, err
	}
	closure.Set(n.Name, v)
	return v, sig, nil
}

// FieldAssignment resolves Object (a dotted path) to an instance and
// writes Field on it to the evaluated RHS.
type FieldAssignment struct {
	Object *VariableValue
	Field  string
	RHS    Node
}

func (n *FieldAssignment) Execute(closure *object.Closure, ctx *object.Context) (object.Value, control.Signal, error) {
	objVal, _, err := n.Object.Execute(closure, ctx)
	if err != nil {
		return object.None, control.None, err
	}
	inst, ok := objVal.AsInstance()
	if !ok {
		return object.None, control.None, runtimeErrorf("cannot assign field %q on a non-instance value", n.Field)
	}
	v, _, err := n.RHS.Execute(closure, ctx)
	if err != nil {
		return object.None, control.None, err
	}
	inst.Fields.Set(n.Field, v)
	return v, control.None, nil
}
