package ast

import (
	"github.com/mythonlang/mython/internal/control"
	"github.com/mythonlang/mython/internal/object"
)

// NumericConst, StringConst, BoolConst, and NoneConst return a handle
// to their embedded value (or the empty handle for NoneConst).

type NumericConst struct{ Value int64 }

func (n *NumericConst) Execute(*object.Closure, *object.Context) (object.Value, control.Signal, error) {
	return object.NewNumber(n.Value), control.None, nil
}

type StringConst struct{ Value string }

func (n *StringConst) Execute(*object.Closure, *object.Context) (object.Value, control.Signal, error) {
	return object.NewString(n.Value), control.None, nil
}

type BoolConst struct{ Value bool }

func (n *BoolConst) Execute(*object.Closure, *object.Context) (object.Value, control.Signal, error) {
	return object.NewBool(n.Value), control.None, nil
}

type NoneConst struct{}

func (n *NoneConst) Execute(*object.Closure, *object.Context) (object.Value, control.Signal, error) {
	return object.None, control.None, nil
}
