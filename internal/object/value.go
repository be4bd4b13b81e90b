// Package object implements Mython's runtime value system: the tagged
// value handle, classes, instances, closures, and the output context.
package object

import (
	"fmt"
	"io"
	"strings"
)

// Kind identifies which variant of the value union a Value holds.
type Kind int

const (
	NoneKind Kind = iota
	NumberKind
	StringKind
	BoolKind
	ClassKind
	InstanceKind
)

// Value is a value handle: a tagged union over the six value variants,
// held by shared reference for Class and Instance (via the embedded
// pointers) rather than by copy. The zero Value is None, matching the
// data model's "every handle is either empty ... or points to exactly
// one object."
type Value struct {
	kind     Kind
	num      int64
	str      string
	boolean  bool
	class    *Class
	instance *Instance
}

// None is the empty value handle.
var None = Value{kind: NoneKind}

// NewNumber returns a Number value.
func NewNumber(n int64) Value { return Value{kind: NumberKind, num: n} }

// NewString returns a String value.
func NewString(s string) Value { return Value{kind: StringKind, str: s} }

// NewBool returns a Bool value.
func NewBool(b bool) Value { return Value{kind: BoolKind, boolean: b} }

// NewClassValue returns a Class value sharing the given descriptor.
func NewClassValue(c *Class) Value { return Value{kind: ClassKind, class: c} }

// NewInstanceValue returns an Instance value sharing the given instance.
// This is the handle's "share" constructor: it never copies the
// instance, only the pointer, so repeated handles observe the same
// underlying fields.
func NewInstanceValue(i *Instance) Value { return Value{kind: InstanceKind, instance: i} }

// Kind reports the value's variant.
func (v Value) Kind() Kind { return v.kind }

// IsNone reports whether the handle is empty.
func (v Value) IsNone() bool { return v.kind == NoneKind }

// Truthy implements the truthiness table from the object model: an
// empty handle, Number(0), Bool(false), and empty String are false;
// all other values, including every Class and Instance, are true.
func (v Value) Truthy() bool {
	switch v.kind {
	case NoneKind:
		return false
	case NumberKind:
		return v.num != 0
	case StringKind:
		return v.str != ""
	case BoolKind:
		return v.boolean
	default:
		return true
	}
}

// AsNumber returns the Number payload, or ok=false if v is not a Number.
func (v Value) AsNumber() (int64, bool) {
	if v.kind != NumberKind {
		return 0, false
	}
	return v.num, true
}

// AsString returns the String payload, or ok=false if v is not a String.
func (v Value) AsString() (string, bool) {
	if v.kind != StringKind {
		return "", false
	}
	return v.str, true
}

// AsBool returns the Bool payload, or ok=false if v is not a Bool.
func (v Value) AsBool() (bool, bool) {
	if v.kind != BoolKind {
		return false, false
	}
	return v.boolean, true
}

// AsClass returns the Class descriptor, or ok=false if v is not a Class.
func (v Value) AsClass() (*Class, bool) {
	if v.kind != ClassKind {
		return nil, false
	}
	return v.class, true
}

// AsInstance returns the Instance, or ok=false if v is not an Instance.
func (v Value) AsInstance() (*Instance, bool) {
	if v.kind != InstanceKind {
		return nil, false
	}
	return v.instance, true
}

// SameVariant reports whether v and o hold the same primitive kind
// (Number, String, or Bool), the condition the comparison rule uses to
// select the builtin ordering instead of dunder dispatch.
func (v Value) SameVariant(o Value) bool {
	switch v.kind {
	case NumberKind, StringKind, BoolKind:
		return v.kind == o.kind
	default:
		return false
	}
}

// Print writes v's textual representation to w, dispatching to
// __str__ for instances that define it and falling back to identity
// printing otherwise, per the object model's print rule.
func (v Value) Print(w io.Writer, ctx *Context) error {
	switch v.kind {
	case NoneKind:
		_, err := io.WriteString(w, "None")
		return err
	case NumberKind:
		_, err := fmt.Fprintf(w, "%d", v.num)
		return err
	case StringKind:
		_, err := io.WriteString(w, v.str)
		return err
	case BoolKind:
		_, err := io.WriteString(w, boolText(v.boolean))
		return err
	case ClassKind:
		_, err := fmt.Fprintf(w, "Class %s", v.class.Name)
		return err
	case InstanceKind:
		return v.instance.Print(w, ctx)
	default:
		panic(fmt.Sprintf("object: invalid Kind: %d", v.kind))
	}
}

func boolText(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// String renders v via Print into a string, the representation used by
// Stringify and by diagnostics.
func (v Value) String(ctx *Context) string {
	var b strings.Builder
	// Print never fails against a strings.Builder.
	_ = v.Print(&b, ctx)
	return b.String()
}
