package object_test

import (
	"strings"
	"testing"

	"github.com/mythonlang/mython/internal/control"
	"github.com/mythonlang/mython/internal/object"
)

// constBody is a method body returning a fixed value, standing in for
// a compiled AST in tests that only exercise dispatch.
type constBody struct{ v object.Value }

func (b constBody) Execute(*object.Closure, *object.Context) (object.Value, control.Signal, error) {
	return b.v, control.None, nil
}

// lookupBody is a method body returning whatever the local closure
// binds under name, used to observe self and argument binding.
type lookupBody struct{ name string }

func (b lookupBody) Execute(env *object.Closure, _ *object.Context) (object.Value, control.Signal, error) {
	v, _ := env.Get(b.name)
	return v, control.None, nil
}

func method(name string, params []string, body object.Executable) object.Method {
	return object.Method{Name: name, Params: params, Body: body}
}

func TestTruthiness(t *testing.T) {
	class := object.NewClass("A", nil, nil)
	inst := object.NewInstance(class, object.NewRegistry())
	cases := map[string]struct {
		v    object.Value
		want bool
	}{
		"None":           {object.None, false},
		"Zero":           {object.NewNumber(0), false},
		"NegativeNumber": {object.NewNumber(-1), true},
		"Number":         {object.NewNumber(57), true},
		"EmptyString":    {object.NewString(""), false},
		"String":         {object.NewString("x"), true},
		"False":          {object.NewBool(false), false},
		"True":           {object.NewBool(true), true},
		"Class":          {object.NewClassValue(class), true},
		"Instance":       {object.NewInstanceValue(inst), true},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if got := c.v.Truthy(); got != c.want {
				t.Errorf("Truthy(%v) = %t, want %t", c.v, got, c.want)
			}
		})
	}
}

func TestAccessors(t *testing.T) {
	v := object.NewNumber(57)
	if n, ok := v.AsNumber(); !ok || n != 57 {
		t.Errorf("AsNumber = %d, %t, want 57, true", n, ok)
	}
	if _, ok := v.AsString(); ok {
		t.Error("AsString succeeded on a Number")
	}
	if _, ok := v.AsInstance(); ok {
		t.Error("AsInstance succeeded on a Number")
	}
	if object.None.IsNone() != true || v.IsNone() {
		t.Error("IsNone misreports")
	}
}

func TestGetMethod(t *testing.T) {
	base := object.NewClass("Base", []object.Method{
		method("greet", nil, constBody{object.NewString("base greet")}),
		method("only_base", nil, constBody{object.None}),
	}, nil)
	derived := object.NewClass("Derived", []object.Method{
		method("greet", nil, constBody{object.NewString("derived greet")}),
	}, base)

	if m, ok := derived.GetMethod("greet"); !ok || m.Body.(constBody).v.String(nil) != "derived greet" {
		t.Error("own method does not shadow the parent's")
	}
	if _, ok := derived.GetMethod("only_base"); !ok {
		t.Error("inherited method not found")
	}
	if _, ok := derived.GetMethod("missing"); ok {
		t.Error("missing method reported as found")
	}
}

func TestHasMethodArity(t *testing.T) {
	class := object.NewClass("A", []object.Method{
		method("f", []string{"x", "y"}, constBody{object.None}),
	}, nil)
	inst := object.NewInstance(class, object.NewRegistry())
	if !inst.HasMethod("f", 2) {
		t.Error("HasMethod(f, 2) = false, want true")
	}
	if inst.HasMethod("f", 1) {
		t.Error("HasMethod(f, 1) = true, want false")
	}
	if inst.HasMethod("g", 0) {
		t.Error("HasMethod(g, 0) = true, want false")
	}
}

func TestCallBindsSelfAndArguments(t *testing.T) {
	class := object.NewClass("A", []object.Method{
		method("me", nil, lookupBody{"self"}),
		method("second", []string{"a", "b"}, lookupBody{"b"}),
	}, nil)
	inst := object.NewInstance(class, object.NewRegistry())
	ctx := object.NewContext(&strings.Builder{})

	got, err := inst.Call("me", nil, ctx)
	if err != nil {
		t.Fatalf("Call(me): %v", err)
	}
	if bound, ok := got.AsInstance(); !ok || bound != inst {
		t.Errorf("self is not bound to the receiver: %v", got)
	}

	got, err = inst.Call("second", []object.Value{object.NewNumber(1), object.NewNumber(2)}, ctx)
	if err != nil {
		t.Fatalf("Call(second): %v", err)
	}
	if n, _ := got.AsNumber(); n != 2 {
		t.Errorf("second formal bound to %v, want 2", got)
	}

	if _, err = inst.Call("second", []object.Value{object.NewNumber(1)}, ctx); err == nil {
		t.Error("wrong arity did not error")
	} else if _, ok := err.(*object.RuntimeError); !ok {
		t.Errorf("wrong arity error is %T, want *object.RuntimeError", err)
	}
	if _, err = inst.Call("missing", nil, ctx); err == nil {
		t.Error("missing method did not error")
	}
}

func TestPrint(t *testing.T) {
	plain := object.NewClass("Plain", nil, nil)
	strful := object.NewClass("Strful", []object.Method{
		method("__str__", nil, constBody{object.NewString("custom")}),
	}, nil)
	reg := object.NewRegistry()
	ctx := object.NewContext(&strings.Builder{})

	var b strings.Builder
	if err := object.NewClassValue(plain).Print(&b, ctx); err != nil {
		t.Fatal(err)
	}
	if b.String() != "Class Plain" {
		t.Errorf("class prints %q, want %q", b.String(), "Class Plain")
	}

	b.Reset()
	if err := object.NewInstanceValue(object.NewInstance(plain, reg)).Print(&b, ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(b.String(), "<Plain instance at ") {
		t.Errorf("instance without __str__ prints %q, want an identity fallback", b.String())
	}

	b.Reset()
	if err := object.NewInstanceValue(object.NewInstance(strful, reg)).Print(&b, ctx); err != nil {
		t.Fatal(err)
	}
	if b.String() != "custom" {
		t.Errorf("instance with __str__ prints %q, want %q", b.String(), "custom")
	}

	cases := map[string]struct {
		v    object.Value
		want string
	}{
		"None":   {object.None, "None"},
		"Number": {object.NewNumber(-8), "-8"},
		"String": {object.NewString("hi"), "hi"},
		"True":   {object.NewBool(true), "True"},
		"False":  {object.NewBool(false), "False"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if got := c.v.String(ctx); got != c.want {
				t.Errorf("String() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestPrimitiveComparison(t *testing.T) {
	ctx := object.NewContext(&strings.Builder{})
	cases := map[string]struct {
		cmp        object.Comparator
		lhs, rhs   object.Value
		want       bool
		wantErr    bool
	}{
		"EqualNumbers":      {object.Equal, object.NewNumber(2), object.NewNumber(2), true, false},
		"UnequalNumbers":    {object.Equal, object.NewNumber(2), object.NewNumber(3), false, false},
		"LessNumbers":       {object.Less, object.NewNumber(2), object.NewNumber(3), true, false},
		"LessStringsByte":   {object.Less, object.NewString("abc"), object.NewString("abd"), true, false},
		"LessStringsPrefix": {object.Less, object.NewString("ab"), object.NewString("abc"), true, false},
		"EqualStrings":      {object.Equal, object.NewString("hi"), object.NewString("hi"), true, false},
		"LessBools":         {object.Less, object.NewBool(false), object.NewBool(true), true, false},
		"EqualBools":        {object.Equal, object.NewBool(true), object.NewBool(true), true, false},
		"NotEqual":          {object.NotEqual, object.NewNumber(2), object.NewNumber(3), true, false},
		"Greater":           {object.Greater, object.NewNumber(3), object.NewNumber(2), true, false},
		"GreaterEqualPair":  {object.Greater, object.NewNumber(2), object.NewNumber(2), false, false},
		"LessOrEqualEq":     {object.LessOrEqual, object.NewNumber(2), object.NewNumber(2), true, false},
		"LessOrEqualLt":     {object.LessOrEqual, object.NewNumber(1), object.NewNumber(2), true, false},
		"GreaterOrEqualGt":  {object.GreaterOrEqual, object.NewNumber(3), object.NewNumber(2), true, false},
		"MixedVariants":     {object.Equal, object.NewNumber(1), object.NewString("1"), false, true},
		"NoneOperands":      {object.Less, object.None, object.None, false, true},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := c.cmp(c.lhs, c.rhs, ctx)
			if c.wantErr {
				if err == nil {
					t.Fatal("expected a runtime error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != c.want {
				t.Errorf("got %t, want %t", got, c.want)
			}
		})
	}
}

// TestComparisonLaws verifies a == b iff not (a != b) over comparable
// pairs, with the derived comparators staying consistent with Equal
// and Less.
func TestComparisonLaws(t *testing.T) {
	ctx := object.NewContext(&strings.Builder{})
	values := []object.Value{
		object.NewNumber(-1), object.NewNumber(0), object.NewNumber(1),
		object.NewString(""), object.NewString("a"), object.NewString("b"),
		object.NewBool(false), object.NewBool(true),
	}
	for _, a := range values {
		for _, b := range values {
			if !a.SameVariant(b) {
				continue
			}
			eq, err := object.Equal(a, b, ctx)
			if err != nil {
				t.Fatal(err)
			}
			ne, err := object.NotEqual(a, b, ctx)
			if err != nil {
				t.Fatal(err)
			}
			if eq == ne {
				t.Errorf("Equal and NotEqual agree for %v, %v", a, b)
			}
			lt, _ := object.Less(a, b, ctx)
			gt, _ := object.Greater(a, b, ctx)
			le, _ := object.LessOrEqual(a, b, ctx)
			ge, _ := object.GreaterOrEqual(a, b, ctx)
			if gt != (!lt && !eq) {
				t.Errorf("Greater inconsistent for %v, %v", a, b)
			}
			if le != !gt {
				t.Errorf("LessOrEqual inconsistent for %v, %v", a, b)
			}
			if ge != !lt {
				t.Errorf("GreaterOrEqual inconsistent for %v, %v", a, b)
			}
		}
	}
}

func TestInstanceComparisonDispatch(t *testing.T) {
	ctx := object.NewContext(&strings.Builder{})
	reg := object.NewRegistry()
	cmpClass := object.NewClass("Cmp", []object.Method{
		method("__eq__", []string{"rhs"}, constBody{object.NewBool(true)}),
		method("__lt__", []string{"rhs"}, constBody{object.NewBool(false)}),
	}, nil)
	inst := object.NewInstanceValue(object.NewInstance(cmpClass, reg))

	eq, err := object.Equal(inst, object.NewNumber(1), ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !eq {
		t.Error("__eq__ result not used")
	}
	lt, err := object.Less(inst, object.NewNumber(1), ctx)
	if err != nil {
		t.Fatal(err)
	}
	if lt {
		t.Error("__lt__ result not used")
	}
	// Greater derives from both dunders: not less and not equal.
	gt, err := object.Greater(inst, object.NewNumber(1), ctx)
	if err != nil {
		t.Fatal(err)
	}
	if gt {
		t.Error("Greater should be false when __eq__ is true")
	}

	bare := object.NewInstanceValue(object.NewInstance(object.NewClass("Bare", nil, nil), reg))
	if _, err := object.Equal(bare, bare, ctx); err == nil {
		t.Error("comparing an instance without __eq__ did not error")
	}
	if _, err := object.Less(bare, bare, ctx); err == nil {
		t.Error("comparing an instance without __lt__ did not error")
	}
}

func TestReachableSurvivesCycles(t *testing.T) {
	class := object.NewClass("Node", nil, nil)
	reg := object.NewRegistry()
	a := object.NewInstance(class, reg)
	b := object.NewInstance(class, reg)
	object.NewInstance(class, reg) // never reachable from the root

	// Field assignment closes a cycle: a.next = b, b.next = a.
	a.Fields.Set("next", object.NewInstanceValue(b))
	b.Fields.Set("next", object.NewInstanceValue(a))

	root := object.NewClosure()
	root.Set("a", object.NewInstanceValue(a))

	if got := object.Reachable(root); got != 2 {
		t.Errorf("Reachable = %d, want 2", got)
	}
	if got := reg.Live(); got != 3 {
		t.Errorf("Live = %d, want 3", got)
	}
}
