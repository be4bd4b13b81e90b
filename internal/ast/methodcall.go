package ast

import (
	"github.com/mythonlang/mython/internal/control"
	"github.com/mythonlang/mython/internal/object"
)

func evalMethodCall(obj Node, method string, args []Node, closure *object.Closure, ctx *object.Context) (object.Value, error) {
	recv, _, err := obj.Execute(closure, ctx)
	if err != nil {
		return object.None, err
	}
	inst, ok := recv.AsInstance()
	if !ok {
		return object.None, runtimeErrorf("method %q called on a non-instance value", method)
	}
	argVals := make([]object.Value, len(args))
	for i, a := range args {
		v, _, err := a.Execute(closure, ctx)
		if err != nil {
			return object.None, err
		}
		argVals[i] = v
	}
	return inst.Call(method, argVals, ctx)
}

// MethodCallStatement is a method call occurring as a statement: the
// call's return value is discarded, a deliberate asymmetry with
// MethodCallExpr preserved rather than fixed.
type MethodCallStatement struct {
	Object Node
	Method string
	Args   []Node
}

func (n *MethodCallStatement) Execute(closure *object.Closure, ctx *object.Context) (object.Value, control.Signal, error) {
	_, err := evalMethodCall(n.Object, n.Method, n.Args, closure, ctx)
	if err != nil {
		return object.None, control.None, err
	}
	return object.None, control.None, nil
}

// MethodCallExpr is a method call occurring in expression position
// (the Mult grammar's DottedIds '(' [TestList] ')' form); unlike
// MethodCallStatement, it propagates the call's return value.
type MethodCallExpr struct {
	Object Node
	Method string
	Args   []Node
}

func (n *MethodCallExpr) Execute(closure *object.Closure, ctx *object.Context) (object.Value, control.Signal, error) {
	v, err := evalMethodCall(n.Object, n.Method, n.Args, closure, ctx)
	if err != nil {
		return object.None, control.None, err
	}
	return v, control.None, nil
}
