package interp

import (
	"github.com/minilang-dev/minilang/builtin"
	"github.com/minilang-dev/minilang/function"
	"github.com/minilang-dev/minilang/object"
	"github.com/minilang-dev/minilang/parser"
)

func (in *Interpreter) evalExpr(expr parser.Expr) (object.Value, *Error) {
	switch e := expr.(type) {
	case *parser.NumberLit:
		return &object.Number{Value: e.Value}, nil
	case *parser.StringLit:
		return &object.String{Value: e.Value}, nil
	case *parser.BoolLit:
		return object.NativeBool(e.Value), nil
	case *parser.Ident:
		v, ok := in.Env.Lookup(e.Name)
		if !ok {
			return nil, newError(Name, e.Ln, "unknown name %q", e.Name)
		}
		return v, nil
	case *parser.ArrayLit:
		return in.evalArrayLit(e)
	case *parser.UnaryExpr:
		return in.evalUnary(e)
	case *parser.BinaryExpr:
		return in.evalBinaryExpr(e)
	case *parser.CallExpr:
		return in.evalCall(e)
	case *parser.IndexExpr:
		return in.evalIndex(e)
	default:
		return nil, newError(Parse, expr.Line(), "unhandled expression type %T", expr)
	}
}

func (in *Interpreter) evalArrayLit(e *parser.ArrayLit) (object.Value, *Error) {
	elems := make([]object.Value, len(e.Elements))
	for i, elemExpr := range e.Elements {
		v, err := in.evalExpr(elemExpr)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return &object.Array{Elements: elems}, nil
}

func (in *Interpreter) evalUnary(e *parser.UnaryExpr) (object.Value, *Error) {
	v, err := in.evalExpr(e.Operand)
	if err != nil {
		return nil, err
	}
	switch e.Op {
	case "-":
		n, ok := v.(*object.Number)
		if !ok {
			return nil, newError(Type, e.Ln, "unary - expects a Number, got %s", v.Type())
		}
		return &object.Number{Value: -n.Value}, nil
	case "not":
		b, ok := v.(*object.Bool)
		if !ok {
			return nil, newError(Type, e.Ln, "unary not expects a Bool, got %s", v.Type())
		}
		return object.NativeBool(!object.IsTruthy(b)), nil
	default:
		return nil, newError(Type, e.Ln, "unsupported unary operator %q", e.Op)
	}
}

// evalBinaryExpr handles `and`/`or` short-circuiting directly (the right
// operand must not even be evaluated when the left decides the result,
// per spec.md §4.4) and defers every other operator to evalBinary.
func (in *Interpreter) evalBinaryExpr(e *parser.BinaryExpr) (object.Value, *Error) {
	if e.Op == "and" || e.Op == "or" {
		return in.evalShortCircuit(e)
	}

	left, err := in.evalExpr(e.LHS)
	if err != nil {
		return nil, err
	}
	right, err := in.evalExpr(e.RHS)
	if err != nil {
		return nil, err
	}
	return in.evalBinary(e.Op, left, right, e.Ln)
}

func (in *Interpreter) evalShortCircuit(e *parser.BinaryExpr) (object.Value, *Error) {
	left, err := in.evalExpr(e.LHS)
	if err != nil {
		return nil, err
	}
	lb, ok := left.(*object.Bool)
	if !ok {
		return nil, newError(Type, e.Ln, "%q expects a Bool operand, got %s", e.Op, left.Type())
	}

	if e.Op == "and" && !lb.Value {
		return object.False, nil
	}
	if e.Op == "or" && lb.Value {
		return object.True, nil
	}

	right, err := in.evalExpr(e.RHS)
	if err != nil {
		return nil, err
	}
	rb, ok := right.(*object.Bool)
	if !ok {
		return nil, newError(Type, e.Ln, "%q expects a Bool operand, got %s", e.Op, right.Type())
	}
	return rb, nil
}

func (in *Interpreter) evalIndex(e *parser.IndexExpr) (object.Value, *Error) {
	target, err := in.evalExpr(e.Target)
	if err != nil {
		return nil, err
	}
	idx, err := in.evalExpr(e.Index)
	if err != nil {
		return nil, err
	}

	switch t := target.(type) {
	case *object.Array:
		i, ierr := arrayIndex(t, idx, e.Ln)
		if ierr != nil {
			return nil, ierr
		}
		return t.Elements[i], nil
	case *object.String:
		// DESIGN.md resolves spec.md §9's open question on string
		// indexing in favor of "fails": minilang has no string indexing.
		return nil, newError(Type, e.Ln, "string indexing is not supported")
	default:
		return nil, newError(Type, e.Ln, "cannot index %s", target.Type())
	}
}

// arrayIndex validates idx as an in-range, integral, non-negative index
// into arr and returns it as an int, per spec.md §4.4.
func arrayIndex(arr *object.Array, idx object.Value, line int) (int, *Error) {
	n, ok := idx.(*object.Number)
	if !ok {
		return 0, newError(Index, line, "array index must be a Number, got %s", idx.Type())
	}
	if !isIntegral(n.Value) || n.Value < 0 {
		return 0, newError(Index, line, "array index must be a non-negative integral Number, got %v", n.Value)
	}
	i := int(n.Value)
	if i >= arr.Len() {
		return 0, newError(Index, line, "array index %d out of range (length %d)", i, arr.Len())
	}
	return i, nil
}

func (in *Interpreter) evalCall(e *parser.CallExpr) (object.Value, *Error) {
	callee, err := in.evalExpr(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]object.Value, len(e.Args))
	for i, argExpr := range e.Args {
		v, err := in.evalExpr(argExpr)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch fn := callee.(type) {
	case *builtin.Builtin:
		return in.callBuiltin(fn, args, e.Ln)
	case *function.Function:
		return in.callFunction(fn, args, e.Ln)
	default:
		return nil, newError(Type, e.Ln, "cannot call a value of type %s", callee.Type())
	}
}

func (in *Interpreter) callBuiltin(fn *builtin.Builtin, args []object.Value, line int) (object.Value, *Error) {
	if len(args) != fn.Arity {
		return nil, newError(Arity, line, "%s expects %d argument(s), got %d", fn.Name, fn.Arity, len(args))
	}
	v, callErr := fn.Call(in.Writer, args)
	if callErr != nil {
		return nil, newError(Type, line, "%s", callErr)
	}
	return v, nil
}

func (in *Interpreter) callFunction(fn *function.Function, args []object.Value, line int) (object.Value, *Error) {
	if len(args) != len(fn.Params) {
		return nil, newError(Arity, line, "%s expects %d argument(s), got %d", fn.Name, len(fn.Params), len(args))
	}

	prev := in.PushCall()
	defer in.PopCall(prev)

	for i, param := range fn.Params {
		in.Env.Bind(param, args[i])
	}

	f, err := in.execBlock(fn.Body)
	if err != nil {
		return nil, err
	}
	if f.returning {
		return f.value, nil
	}
	return object.Nil, nil
}
