// Package ast implements the Mython AST as a self-evaluating tree:
// every node executes itself directly against a closure and a context
// through one polymorphic entry point, returning the resulting value
// together with an explicit control signal (for the return statement's
// non-local unwind) and an error.
package ast

import (
	"fmt"

	"github.com/mythonlang/mython/internal/control"
	"github.com/mythonlang/mython/internal/object"
)

// Node is the interface every AST node satisfies. It is the same
// shape as object.Executable; Method bodies are stored as
// object.Executable precisely so the object package can hold one
// without importing ast.
type Node interface {
	Execute(closure *object.Closure, ctx *object.Context) (object.Value, control.Signal, error)
}

func runtimeErrorf(format string, args ...interface{}) *object.RuntimeError {
	return &object.RuntimeError{Msg: fmt.Sprintf(format, args...)}
}
