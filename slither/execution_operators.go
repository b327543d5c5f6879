package slither

// IsTrue reports the truthiness of v. It is total: every value kind has
// a defined answer and IsTrue never errors. None is false; Number is
// true iff nonzero; String is true iff non-empty; Bool is its own value;
// Class and Instance are always false (this dialect has no __bool__).
func IsTrue(v Value) bool {
	switch v.Kind() {
	case KindNone:
		return false
	case KindNumber:
		n, _ := v.AsNumber()
		return n != 0
	case KindString:
		s, _ := v.AsString()
		return s != ""
	case KindBool:
		b, _ := v.AsBool()
		return b
	default:
		return false
	}
}

// Equal compares two present operands. Number/String/Bool compare by
// value when both sides share that kind. Two None operands are equal.
// If lhs is an Instance with a one-argument __eq__, dispatch to it and
// require a Bool result. Any other combination is a runtime error;
// equality here is not symmetric-fallback, only the left operand's
// class is ever consulted.
func Equal(lhs, rhs Value, ctx *Context, pos Position) (bool, error) {
	if lhs.Kind() == KindNone && rhs.Kind() == KindNone {
		return true, nil
	}
	if lhs.Kind() == rhs.Kind() {
		switch lhs.Kind() {
		case KindNumber:
			a, _ := lhs.AsNumber()
			b, _ := rhs.AsNumber()
			return a == b, nil
		case KindString:
			a, _ := lhs.AsString()
			b, _ := rhs.AsString()
			return a == b, nil
		case KindBool:
			a, _ := lhs.AsBool()
			b, _ := rhs.AsBool()
			return a == b, nil
		}
	}
	if inst, ok := lhs.AsInstance(); ok && inst.Class.HasMethod("__eq__", 1) {
		result, err := callMethod(inst, "__eq__", []Value{rhs}, ctx, pos)
		if err != nil {
			return false, err
		}
		b, ok := result.AsBool()
		if !ok {
			return false, newRuntimeError(ctx, pos, "__eq__ must return a Bool, got %s", result.Kind())
		}
		return b, nil
	}
	return false, newRuntimeError(ctx, pos, "cannot compare %s and %s for equality", lhs.Kind(), rhs.Kind())
}

// Less compares lhs < rhs. Same-kind Number/String/Bool use natural
// order (false < true). If lhs is an Instance with a one-argument
// __lt__, dispatch to it. Any other combination is a runtime error.
func Less(lhs, rhs Value, ctx *Context, pos Position) (bool, error) {
	if lhs.Kind() == rhs.Kind() {
		switch lhs.Kind() {
		case KindNumber:
			a, _ := lhs.AsNumber()
			b, _ := rhs.AsNumber()
			return a < b, nil
		case KindString:
			a, _ := lhs.AsString()
			b, _ := rhs.AsString()
			return a < b, nil
		case KindBool:
			a, _ := lhs.AsBool()
			b, _ := rhs.AsBool()
			return !a && b, nil
		}
	}
	if inst, ok := lhs.AsInstance(); ok && inst.Class.HasMethod("__lt__", 1) {
		result, err := callMethod(inst, "__lt__", []Value{rhs}, ctx, pos)
		if err != nil {
			return false, err
		}
		b, ok := result.AsBool()
		if !ok {
			return false, newRuntimeError(ctx, pos, "__lt__ must return a Bool, got %s", result.Kind())
		}
		return b, nil
	}
	return false, newRuntimeError(ctx, pos, "cannot order %s and %s", lhs.Kind(), rhs.Kind())
}

// NotEqual, Greater, LessOrEqual, and GreaterOrEqual are all derived
// pointwise from Equal and Less, per spec: a ≠ b ≡ ¬(a=b); a > b ≡
// ¬(a<b) ∧ ¬(a=b); a ≤ b ≡ ¬(a>b); a ≥ b ≡ ¬(a<b). A type that supplies
// __lt__ and __eq__ therefore gets every relational operator for free.

func NotEqual(lhs, rhs Value, ctx *Context, pos Position) (bool, error) {
	eq, err := Equal(lhs, rhs, ctx, pos)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

func Greater(lhs, rhs Value, ctx *Context, pos Position) (bool, error) {
	lt, err := Less(lhs, rhs, ctx, pos)
	if err != nil {
		return false, err
	}
	eq, err := Equal(lhs, rhs, ctx, pos)
	if err != nil {
		return false, err
	}
	return !lt && !eq, nil
}

func LessOrEqual(lhs, rhs Value, ctx *Context, pos Position) (bool, error) {
	gt, err := Greater(lhs, rhs, ctx, pos)
	if err != nil {
		return false, err
	}
	return !gt, nil
}

func GreaterOrEqual(lhs, rhs Value, ctx *Context, pos Position) (bool, error) {
	lt, err := Less(lhs, rhs, ctx, pos)
	if err != nil {
		return false, err
	}
	return !lt, nil
}

func evalComparison(e *ComparisonExpr, scope *Scope, ctx *Context) (Value, error) {
	lhs, err := evalExpression(e.Lhs, scope, ctx)
	if err != nil {
		return Value{}, err
	}
	rhs, err := evalExpression(e.Rhs, scope, ctx)
	if err != nil {
		return Value{}, err
	}
	var result bool
	switch e.Op {
	case OpEq:
		result, err = Equal(lhs, rhs, ctx, e.position)
	case OpNotEq:
		result, err = NotEqual(lhs, rhs, ctx, e.position)
	case OpLess:
		result, err = Less(lhs, rhs, ctx, e.position)
	case OpLessOrEq:
		result, err = LessOrEqual(lhs, rhs, ctx, e.position)
	case OpGreater:
		result, err = Greater(lhs, rhs, ctx, e.position)
	case OpGreaterOrEq:
		result, err = GreaterOrEqual(lhs, rhs, ctx, e.position)
	default:
		return Value{}, newRuntimeError(ctx, e.position, "unhandled comparison operator")
	}
	if err != nil {
		return Value{}, err
	}
	return NewBool(result), nil
}

func evalBinary(e *BinaryExpr, scope *Scope, ctx *Context) (Value, error) {
	lhs, err := evalExpression(e.Lhs, scope, ctx)
	if err != nil {
		return Value{}, err
	}
	rhs, err := evalExpression(e.Rhs, scope, ctx)
	if err != nil {
		return Value{}, err
	}

	if e.Op == OpAdd {
		if a, ok := lhs.AsString(); ok {
			if b, ok := rhs.AsString(); ok {
				return NewString(a + b), nil
			}
		}
	}

	if a, ok := lhs.AsNumber(); ok {
		if b, ok := rhs.AsNumber(); ok {
			switch e.Op {
			case OpAdd:
				return NewNumber(a + b), nil
			case OpSub:
				return NewNumber(a - b), nil
			case OpMult:
				return NewNumber(a * b), nil
			case OpDiv:
				if b == 0 {
					return Value{}, newRuntimeError(ctx, e.position, "division by zero")
				}
				return NewNumber(a / b), nil
			}
		}
	}

	if e.Op == OpAdd {
		if inst, ok := lhs.AsInstance(); ok && inst.Class.HasMethod("__add__", 1) {
			return callMethod(inst, "__add__", []Value{rhs}, ctx, e.position)
		}
	}

	return Value{}, newRuntimeError(ctx, e.position, "unsupported operand types for %s: %s and %s", binaryOpName(e.Op), lhs.Kind(), rhs.Kind())
}

func binaryOpName(op BinaryOp) string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMult:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "?"
	}
}
