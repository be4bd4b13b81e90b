package object

import (
	"fmt"

	"github.com/mythonlang/mython/internal/control"
)

// Method holds one class method: its name, formal parameter names in
// order, and its body. Body is an Executable rather than a concrete
// AST type so that the object model has no dependency on package ast;
// package ast depends on object instead, the direction the value
// system is meant to be consumed from.
type Method struct {
	Name   string
	Params []string
	Body   Executable
}

// Executable is anything an AST node provides to run itself against a
// closure and a context, returning the result and a control signal.
// The concrete implementations live in package ast.
type Executable interface {
	Execute(closure *Closure, ctx *Context) (Value, control.Signal, error)
}

// Class is an immutable class descriptor: a name, its own methods in
// declaration order, and an optional parent. Classes are constructed
// once by the parser and never mutated afterward, so no synchronization
// is needed even though Mython values are freely shared.
type Class struct {
	Name    string
	Parent  *Class
	methods []Method
	index   map[string]int
}

// NewClass builds a class descriptor. Method lookup order is the
// declaration order of methods, per the object model's get_method
// rule (linear search of own methods, then recurse into parent).
func NewClass(name string, methods []Method, parent *Class) *Class {
	idx := make(map[string]int, len(methods))
	for i, m := range methods {
		if _, ok := idx[m.Name]; !ok {
			idx[m.Name] = i
		}
	}
	return &Class{Name: name, Parent: parent, methods: methods, index: idx}
}

// GetMethod looks name up among the class's own methods (through the
// index NewClass built, which keeps the first declared method of each
// name), then recurses into the parent; returns the first match or
// ok=false.
func (c *Class) GetMethod(name string) (*Method, bool) {
	if i, ok := c.index[name]; ok {
		return &c.methods[i], true
	}
	if c.Parent != nil {
		return c.Parent.GetMethod(name)
	}
	return nil, false
}

func (c *Class) String() string {
	return fmt.Sprintf("Class %s", c.Name)
}
