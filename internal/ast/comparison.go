package ast

import (
	"github.com/mythonlang/mython/internal/control"
	"github.com/mythonlang/mython/internal/object"
)

// Comparison evaluates both sides and applies a single Comparator
// (Equal, NotEqual, Less, Greater, LessOrEqual, or GreaterOrEqual),
// producing a fresh Bool. The parser selects which comparator to
// install based on the operator token.
type Comparison struct {
	LHS, RHS Node
	Compare  object.Comparator
}

func (n *Comparison) Execute(closure *object.Closure, ctx *object.Context) (object.Value, control.Signal, error) {
	lv, rv, err := binaryOperands(n.LHS, n.RHS, closure, ctx)
	if err != nil {
		return object.None, control.None, err
	}
	result, err := n.Compare(lv, rv, ctx)
	if err != nil {
		return object.None, control.None, err
	}
	return object.NewBool(result), control.None, nil
}
