package object

import (
	"fmt"
	"io"
)

// Instance is a value bound to a class descriptor with its own field
// closure. Instances are always handled through a pointer; Value
// stores that pointer directly (NewInstanceValue), so assignment
// aliases an instance rather than cloning it.
type Instance struct {
	Class  *Class
	Fields *Closure
	id     uintptr
}

// NewInstance allocates a fresh instance of class, registering it with
// reg for the end-of-program reachability sweep.
func NewInstance(class *Class, reg *Registry) *Instance {
	inst := &Instance{Class: class, Fields: NewClosure()}
	inst.id = reg.register(inst)
	return inst
}

// ID returns the instance's identity, used by Reachable's cycle-safe walk.
func (inst *Instance) ID() uintptr { return inst.id }

// HasMethod returns true iff the looked-up method exists and its
// formal-parameter count equals argc.
func (inst *Instance) HasMethod(name string, argc int) bool {
	m, ok := inst.Class.GetMethod(name)
	return ok && len(m.Params) == argc
}

// Call constructs a fresh local closure binding self to a handle on
// the instance and each formal to the corresponding actual, then
// evaluates the method body; it returns whatever the body returned (or
// None if the method never executed a return). The body is expected to
// already resolve any internal Return signal to a value (see
// ast.MethodBody), so Call itself never inspects the returned signal.
func (inst *Instance) Call(name string, args []Value, ctx *Context) (Value, error) {
	m, ok := inst.Class.GetMethod(name)
	if !ok || len(m.Params) != len(args) {
		return None, &RuntimeError{Msg: fmt.Sprintf("class %s has no method %s with %d argument(s)", inst.Class.Name, name, len(args))}
	}
	local := NewClosure()
	local.Set(SelfName, NewInstanceValue(inst))
	for i, p := range m.Params {
		local.Set(p, args[i])
	}
	result, _, err := m.Body.Execute(local, ctx)
	if err != nil {
		return None, err
	}
	return result, nil
}

// SelfName is the identifier bound to the receiving instance inside a
// method's local closure.
const SelfName = "self"

// Print dispatches to __str__ with zero arguments if the instance
// defines it, else prints the instance's identity as a fallback.
func (inst *Instance) Print(w io.Writer, ctx *Context) error {
	if inst.HasMethod(StrMethod, 0) {
		result, err := inst.Call(StrMethod, nil, ctx)
		if err != nil {
			return err
		}
		return result.Print(w, ctx)
	}
	_, err := fmt.Fprintf(w, "<%s instance at %p>", inst.Class.Name, inst)
	return err
}

// Dunder method names the evaluator dispatches to implicitly.
const (
	InitMethod = "__init__"
	StrMethod  = "__str__"
	AddMethod  = "__add__"
	SubMethod  = "__sub__"
	MulMethod  = "__mul__"
	DivMethod  = "__div__"
	EqMethod   = "__eq__"
	LtMethod   = "__lt__"
	BoolMethod = "__bool__"
)
