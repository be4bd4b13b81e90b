package object

// Comparator is a named binary predicate over two values, used by the
// Comparison AST node: dispatch to a dunder method when the left side
// is an instance, otherwise compare same-variant primitives directly.
type Comparator func(lhs, rhs Value, ctx *Context) (bool, error)

func cannotCompare() error {
	return &RuntimeError{Msg: "cannot compare objects"}
}

// Equal implements __eq__ dispatch or primitive equality.
func Equal(lhs, rhs Value, ctx *Context) (bool, error) {
	if inst, ok := lhs.AsInstance(); ok {
		if !inst.HasMethod(EqMethod, 1) {
			return false, cannotCompare()
		}
		result, err := inst.Call(EqMethod, []Value{rhs}, ctx)
		if err != nil {
			return false, err
		}
		return result.Truthy(), nil
	}
	if !lhs.SameVariant(rhs) {
		return false, cannotCompare()
	}
	switch lhs.Kind() {
	case NumberKind:
		a, _ := lhs.AsNumber()
		b, _ := rhs.AsNumber()
		return a == b, nil
	case StringKind:
		a, _ := lhs.AsString()
		b, _ := rhs.AsString()
		return a == b, nil
	case BoolKind:
		a, _ := lhs.AsBool()
		b, _ := rhs.AsBool()
		return a == b, nil
	default:
		return false, cannotCompare()
	}
}

// Less implements __lt__ dispatch or primitive ordering. String
// comparison is lexicographic byte order, Go's native string <.
func Less(lhs, rhs Value, ctx *Context) (bool, error) {
	if inst, ok := lhs.AsInstance(); ok {
		if !inst.HasMethod(LtMethod, 1) {
			return false, cannotCompare()
		}
		result, err := inst.Call(LtMethod, []Value{rhs}, ctx)
		if err != nil {
			return false, err
		}
		return result.Truthy(), nil
	}
	if !lhs.SameVariant(rhs) {
		return false, cannotCompare()
	}
	switch lhs.Kind() {
	case NumberKind:
		a, _ := lhs.AsNumber()
		b, _ := rhs.AsNumber()
		return a < b, nil
	case StringKind:
		a, _ := lhs.AsString()
		b, _ := rhs.AsString()
		return a < b, nil
	case BoolKind:
		a, _ := lhs.AsBool()
		b, _ := rhs.AsBool()
		return !a && b, nil
	default:
		return false, cannotCompare()
	}
}

// NotEqual, Greater, LessOrEqual, and GreaterOrEqual are all derived
// from Equal and Less, per the object model's derivation rules. This
// structurally guarantees that a == b holds exactly when a != b does
// not, and that the ordering comparators agree with Equal and Less,
// rather than re-deriving them ad hoc at each call site. Deriving
// Greater from both Less and Equal calls an instance's dunder methods
// twice; accepted rather than cached.
func NotEqual(lhs, rhs Value, ctx *Context) (bool, error) {
	eq, err := Equal(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

func Greater(lhs, rhs Value, ctx *Context) (bool, error) {
	lt, err := Less(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	eq, err := Equal(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !lt && !eq, nil
}

func LessOrEqual(lhs, rhs Value, ctx *Context) (bool, error) {
	gt, err := Greater(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !gt, nil
}

func GreaterOrEqual(lhs, rhs Value, ctx *Context) (bool, error) {
	lt, err := Less(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !lt, nil
}
