package slither

import (
	"fmt"
	"strconv"
)

// stringifyValue renders v the way Print and Stringify both do: a
// canonical textual form per kind, with Instance recursing through
// __str__ only when it takes zero arguments and only when its result is
// itself a Number, String, Class, or Instance (anything else falls back
// to the opaque handle form).
func stringifyValue(v Value, ctx *Context, pos Position) (string, error) {
	switch v.Kind() {
	case KindNone:
		return "None", nil
	case KindNumber:
		n, _ := v.AsNumber()
		return strconv.FormatInt(int64(n), 10), nil
	case KindString:
		s, _ := v.AsString()
		return s, nil
	case KindBool:
		b, _ := v.AsBool()
		if b {
			return "True", nil
		}
		return "False", nil
	case KindClass:
		c, _ := v.AsClass()
		return "Class " + c.Name, nil
	case KindInstance:
		inst, _ := v.AsInstance()
		if inst.Class.HasMethod("__str__", 0) {
			result, err := callMethod(inst, "__str__", nil, ctx, pos)
			if err != nil {
				return "", err
			}
			switch result.Kind() {
			case KindNumber, KindString, KindClass, KindInstance:
				return stringifyValue(result, ctx, pos)
			}
		}
		return fmt.Sprintf("<instance of %s>", inst.Class.Name), nil
	default:
		return "", newRuntimeError(ctx, pos, "cannot stringify value of kind %s", v.Kind())
	}
}

// callMethod resolves and invokes name on inst with args, building the
// fresh flat scope a method call sees (self plus formals, nothing else)
// and guarding against unbounded recursion. The caller is responsible
// for having already verified arity with HasMethod where that produces a
// clearer error message; callMethod re-checks defensively.
func callMethod(inst *Instance, name string, args []Value, ctx *Context, pos Position) (Value, error) {
	m := inst.Class.GetMethod(name)
	if m == nil || len(m.Params) != len(args) {
		return Value{}, newRuntimeError(ctx, pos, "class %s has no method %q accepting %d argument(s)", inst.Class.Name, name, len(args))
	}
	if err := ctx.pushFrame(name, pos); err != nil {
		return Value{}, err
	}
	defer ctx.popFrame()

	scope := newCallScope(inst, m.Params, args)
	return evalStatement(m.Body, scope, ctx)
}

func evalMethodCall(e *MethodCallExpr, scope *Scope, ctx *Context) (Value, error) {
	recv, err := evalExpression(e.Receiver, scope, ctx)
	if err != nil {
		return Value{}, err
	}
	inst, ok := recv.AsInstance()
	if !ok {
		return Value{}, newRuntimeError(ctx, e.position, "cannot call method %s on a non-instance %s value", e.Method, recv.Kind())
	}
	args, err := evalArgs(e.Args, scope, ctx)
	if err != nil {
		return Value{}, err
	}
	if !inst.Class.HasMethod(e.Method, len(args)) {
		return Value{}, newRuntimeError(ctx, e.position, "class %s has no method %q accepting %d argument(s)", inst.Class.Name, e.Method, len(args))
	}
	return callMethod(inst, e.Method, args, ctx, e.position)
}

func evalNewInstance(e *NewInstanceExpr, scope *Scope, ctx *Context) (Value, error) {
	classVal, err := evalExpression(e.Class, scope, ctx)
	if err != nil {
		return Value{}, err
	}
	class, ok := classVal.AsClass()
	if !ok {
		return Value{}, newRuntimeError(ctx, e.position, "cannot instantiate a non-class %s value", classVal.Kind())
	}
	args, err := evalArgs(e.Args, scope, ctx)
	if err != nil {
		return Value{}, err
	}
	inst := NewInstanceOf(class)
	if class.HasMethod("__init__", len(args)) {
		if _, err := callMethod(inst, "__init__", args, ctx, e.position); err != nil {
			return Value{}, err
		}
	}
	return NewInstanceValue(inst), nil
}

func evalArgs(exprs []Expression, scope *Scope, ctx *Context) ([]Value, error) {
	args := make([]Value, len(exprs))
	for i, a := range exprs {
		v, err := evalExpression(a, scope, ctx)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}
