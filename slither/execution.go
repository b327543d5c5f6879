package slither

import "io"

const defaultRecursionLimit = 256

// Context is the ambient state threaded through every Eval call: the
// output stream print writes to, the call-stack snapshot used for
// diagnostics and the recursion guard, and the original source text (for
// rendering code-frame snippets in RuntimeErrors). The output stream is
// the only thing a running program can observe through Context; the
// rest is host bookkeeping invisible to success-path semantics.
type Context struct {
	Output         io.Writer
	source         string
	callStack      []StackFrame
	recursionLimit int
}

func newContext(output io.Writer, source string, recursionLimit int) *Context {
	if recursionLimit <= 0 {
		recursionLimit = defaultRecursionLimit
	}
	return &Context{Output: output, source: source, recursionLimit: recursionLimit}
}

func (ctx *Context) pushFrame(method string, pos Position) error {
	if len(ctx.callStack) >= ctx.recursionLimit {
		return newRuntimeError(ctx, pos, "recursion limit exceeded calling %s", method)
	}
	ctx.callStack = append(ctx.callStack, StackFrame{Method: method, Pos: pos})
	return nil
}

func (ctx *Context) popFrame() {
	ctx.callStack = ctx.callStack[:len(ctx.callStack)-1]
}

// evalStatement evaluates stmt against scope and ctx, following the
// central-dispatch style: one type switch total over the statement node
// catalogue, rather than a per-node Eval method. errReturn propagates
// out of every case here except MethodBodyStmt's.
func evalStatement(stmt Statement, scope *Scope, ctx *Context) (Value, error) {
	switch s := stmt.(type) {
	case *CompoundStmt:
		for _, child := range s.Stmts {
			if _, err := evalStatement(child, scope, ctx); err != nil {
				return Value{}, err
			}
		}
		return NewNone(), nil

	case *ExprStmt:
		return evalExpression(s.X, scope, ctx)

	case *PrintStmt:
		parts := make([]string, len(s.Args))
		for i, arg := range s.Args {
			v, err := evalExpression(arg, scope, ctx)
			if err != nil {
				return Value{}, err
			}
			str, err := stringifyValue(v, ctx, s.position)
			if err != nil {
				return Value{}, err
			}
			parts[i] = str
		}
		if err := writePrintLine(ctx, parts); err != nil {
			return Value{}, newRuntimeError(ctx, s.position, "print: %v", err)
		}
		return NewNone(), nil

	case *ReturnStmt:
		v, err := evalExpression(s.Value, scope, ctx)
		if err != nil {
			return Value{}, err
		}
		if v.IsNone() {
			// A None-valued return does not unwind; execution continues
			// past it.
			return NewNone(), nil
		}
		return Value{}, &errReturn{value: v, pos: s.position}

	case *IfElseStmt:
		cond, err := evalExpression(s.Cond, scope, ctx)
		if err != nil {
			return Value{}, err
		}
		if IsTrue(cond) {
			return evalStatement(s.Then, scope, ctx)
		}
		if s.Else != nil {
			return evalStatement(s.Else, scope, ctx)
		}
		return NewNone(), nil

	case *ClassDefStmt:
		if s.ParentName != "" && s.Class.Parent == nil {
			pv, ok := scope.Get(s.ParentName)
			if !ok {
				return Value{}, newRuntimeError(ctx, s.position, "undefined parent class %q", s.ParentName)
			}
			parent, ok := pv.AsClass()
			if !ok {
				return Value{}, newRuntimeError(ctx, s.position, "%q is not a class", s.ParentName)
			}
			s.Class.Parent = parent
		}
		v := NewClassValue(s.Class)
		scope.Set(s.Class.Name, v)
		return v, nil

	case *MethodBodyStmt:
		_, err := evalStatement(s.Body, scope, ctx)
		if err != nil {
			if ret, ok := err.(*errReturn); ok {
				return ret.value, nil
			}
			return Value{}, err
		}
		return NewNone(), nil

	default:
		return Value{}, newRuntimeError(ctx, stmt.Pos(), "unhandled statement node %T", stmt)
	}
}

// evalExpression evaluates expr against scope and ctx.
func evalExpression(expr Expression, scope *Scope, ctx *Context) (Value, error) {
	switch e := expr.(type) {
	case *NumericConst:
		return NewNumber(e.Value), nil
	case *StringConst:
		return NewString(e.Value), nil
	case *BoolConst:
		return NewBool(e.Value), nil
	case *NoneConst:
		return NewNone(), nil

	case *VariableValue:
		return evalVariableValue(e, scope, ctx)

	case *Assignment:
		v, err := evalExpression(e.Value, scope, ctx)
		if err != nil {
			return Value{}, err
		}
		scope.Set(e.Name, v)
		return v, nil

	case *FieldAssignment:
		targetVal, err := evalVariableValue(e.Target, scope, ctx)
		if err != nil {
			return Value{}, err
		}
		inst, ok := targetVal.AsInstance()
		if !ok {
			return Value{}, newRuntimeError(ctx, e.position, "cannot assign field %s on a non-instance %s value", e.Field, targetVal.Kind())
		}
		v, err := evalExpression(e.Value, scope, ctx)
		if err != nil {
			return Value{}, err
		}
		inst.Fields[e.Field] = v
		return v, nil

	case *MethodCallExpr:
		return evalMethodCall(e, scope, ctx)

	case *NewInstanceExpr:
		return evalNewInstance(e, scope, ctx)

	case *StringifyExpr:
		v, err := evalExpression(e.X, scope, ctx)
		if err != nil {
			return Value{}, err
		}
		str, err := stringifyValue(v, ctx, e.position)
		if err != nil {
			return Value{}, err
		}
		return NewString(str), nil

	case *BinaryExpr:
		return evalBinary(e, scope, ctx)

	case *LogicalExpr:
		lhs, err := evalExpression(e.Lhs, scope, ctx)
		if err != nil {
			return Value{}, err
		}
		rhs, err := evalExpression(e.Rhs, scope, ctx)
		if err != nil {
			return Value{}, err
		}
		switch e.Op {
		case OpOr:
			return NewBool(IsTrue(lhs) || IsTrue(rhs)), nil
		case OpAnd:
			return NewBool(IsTrue(lhs) && IsTrue(rhs)), nil
		}
		return Value{}, newRuntimeError(ctx, e.position, "unhandled logical operator")

	case *NotExpr:
		v, err := evalExpression(e.X, scope, ctx)
		if err != nil {
			return Value{}, err
		}
		return NewBool(!IsTrue(v)), nil

	case *ComparisonExpr:
		return evalComparison(e, scope, ctx)

	default:
		return Value{}, newRuntimeError(ctx, expr.Pos(), "unhandled expression node %T", expr)
	}
}

func evalVariableValue(e *VariableValue, scope *Scope, ctx *Context) (Value, error) {
	head := e.Path[0]
	cur, ok := scope.Get(head)
	if !ok {
		return Value{}, newRuntimeError(ctx, e.position, "undefined name %q", head)
	}
	for _, segment := range e.Path[1:] {
		inst, ok := cur.AsInstance()
		if !ok {
			return Value{}, newRuntimeError(ctx, e.position, "cannot read field %s of a non-instance %s value", segment, cur.Kind())
		}
		cur, ok = inst.Fields[segment]
		if !ok {
			return Value{}, newRuntimeError(ctx, e.position, "instance of %s has no field %q", inst.Class.Name, segment)
		}
	}
	return cur, nil
}

func writePrintLine(ctx *Context, parts []string) error {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += " "
		}
		out += p
	}
	out += "\n"
	_, err := io.WriteString(ctx.Output, out)
	return err
}
