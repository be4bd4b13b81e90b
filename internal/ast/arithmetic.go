package ast

import (
	"github.com/mythonlang/mython/internal/control"
	"github.com/mythonlang/mython/internal/object"
)

// binaryOperands evaluates both operands of a binary node in order.
func binaryOperands(lhs, rhs Node, closure *object.Closure, ctx *object.Context) (object.Value, object.Value, error) {
	lv, _, err := lhs.Execute(closure, ctx)
	if err != nil {
		return object.None, object.None, err
	}
	rv, _, err := rhs.Execute(closure, ctx)
	if err != nil {
		return object.None, object.None, err
	}
	return lv, rv, nil
}

// Add supports Number+Number, String+String, or an instance left-hand
// side exposing __add__(1).
type Add struct{ LHS, RHS Node }

func (n *Add) Execute(closure *object.Closure, ctx *object.Context) (object.Value, control.Signal, error) {
	lv, rv, err := binaryOperands(n.LHS, n.RHS, closure, ctx)
	if err != nil {
		return object.None, control.None, err
	}
	if a, ok := lv.AsNumber(); ok {
		if b, ok := rv.AsNumber(); ok {
			return object.NewNumber(a + b), control.None, nil
		}
	}
	if a, ok := lv.AsString(); ok {
		if b, ok := rv.AsString(); ok {
			return object.NewString(a + b), control.None, nil
		}
	}
	if inst, ok := lv.AsInstance(); ok {
		v, err := inst.Call(object.AddMethod, []object.Value{rv}, ctx)
		return v, control.None, err
	}
	return object.None, control.None, runtimeErrorf("cannot add these objects")
}

// Sub, Mul, and Div all require Number op Number, or an instance
// left-hand side exposing the matching dunder method with one
// argument.
type Sub struct{ LHS, RHS Node }

func (n *Sub) Execute(closure *object.Closure, ctx *object.Context) (object.Value, control.Signal, error) {
	lv, rv, err := binaryOperands(n.LHS, n.RHS, closure, ctx)
	if err != nil {
		return object.None, control.None, err
	}
	if a, ok := lv.AsNumber(); ok {
		if b, ok := rv.AsNumber(); ok {
			return object.NewNumber(a - b), control.None, nil
		}
	}
	if inst, ok := lv.AsInstance(); ok {
		v, err := inst.Call(object.SubMethod, []object.Value{rv}, ctx)
		return v, control.None, err
	}
	return object.None, control.None, runtimeErrorf("cannot subtract these objects")
}

type Mul struct{ LHS, RHS Node }

func (n *Mul) Execute(closure *object.Closure, ctx *object.Context) (object.Value, control.Signal, error) {
	lv, rv, err := binaryOperands(n.LHS, n.RHS, closure, ctx)
	if err != nil {
		return object.None, control.None, err
	}
	if a, ok := lv.AsNumber(); ok {
		if b, ok := rv.AsNumber(); ok {
			return object.NewNumber(a * b), control.None, nil
		}
	}
	if inst, ok := lv.AsInstance(); ok {
		v, err := inst.Call(object.MulMethod, []object.Value{rv}, ctx)
		return v, control.None, err
	}
	return object.None, control.None, runtimeErrorf("cannot multiply these objects")
}

// Div truncates toward zero, matching Go's native integer division;
// division by zero is a runtime error.
type Div struct{ LHS, RHS Node }

func (n *Div) Execute(closure *object.Closure, ctx *object.Context) (object.Value, control.Signal, error) {
	lv, rv, err := binaryOperands(n.LHS, n.RHS, closure, ctx)
	if err != nil {
		return object.None, control.None, err
	}
	if a, ok := lv.AsNumber(); ok {
		if b, ok := rv.AsNumber(); ok {
			if b == 0 {
				return object.None, control.None, runtimeErrorf("division by zero")
			}
			return object.NewNumber(a / b), control.None, nil
		}
	}
	if inst, ok := lv.AsInstance(); ok {
		v, err := inst.Call(object.DivMethod, []object.Value{rv}, ctx)
		return v, control.None, err
	}
	return object.None, control.None, runtimeErrorf("cannot divide these objects")
}
