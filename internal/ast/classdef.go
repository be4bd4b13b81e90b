package ast

import (
	"github.com/mythonlang/mython/internal/control"
	"github.com/mythonlang/mython/internal/object"
)

// ClassDefinition binds the class's name to its descriptor in the
// enclosing closure each time the node runs. The descriptor
// itself was already fully built by the parser (methods and parent
// resolved against the live class table), so execution is just a
// single Set.
type ClassDefinition struct {
	Class *object.Class
}

func (n *ClassDefinition) Execute(closure *object.Closure, ctx *object.Context) (object.Value, control.Signal, error) {
	closure.Set(n.Class.Name, object.NewClassValue(n.Class))
	return object.None, control.None, nil
}

// IfElse evaluates Condition and runs Then if it is truthy, else Else
// if present, else does nothing.
type IfElse struct {
	Condition Node
	Then      Node
	Else      Node
}

func (n *IfElse) Execute(closure *object.Closure, ctx *object.Context) (object.Value, control.Signal, error) {
	cv, _, err := n.Condition.Execute(closure, ctx)
	if err != nil {
		return object.None, control.None, err
	}
	t, err := truthOf(cv, ctx)
	if err != nil {
		return object.None, control.None, err
	}
	if t {
		return n.Then.Execute(closure, ctx)
	}
	if n.Else != nil {
		return n.Else.Execute(closure, ctx)
	}
	return object.None, control.None, nil
}
