package interp

import (
	"math"

	"github.com/minilang-dev/minilang/function"
	"github.com/minilang-dev/minilang/object"
)

// evalBinary dispatches a binary operator over two already-evaluated
// operands, table-driven on (op, operand types) per spec.md §4.4's
// operator table. `and`/`or` short-circuit and are handled earlier in
// interp_expressions.go, before the right operand is even evaluated;
// everything reaching here has both operands in hand.
func (in *Interpreter) evalBinary(op string, left, right object.Value, line int) (object.Value, *Error) {
	switch op {
	case "+":
		return evalPlus(left, right, line)
	case "-", "*", "/", "%":
		return evalArithmetic(op, left, right, line)
	case "==":
		return object.NativeBool(valuesEqual(left, right)), nil
	case "!=":
		return object.NativeBool(!valuesEqual(left, right)), nil
	case "<", "<=", ">", ">=":
		return evalRelational(op, left, right, line)
	default:
		return nil, newError(Type, line, "unsupported binary operator %q", op)
	}
}

func evalPlus(left, right object.Value, line int) (object.Value, *Error) {
	switch l := left.(type) {
	case *object.Number:
		r, ok := right.(*object.Number)
		if !ok {
			return nil, typeMismatch("+", left, right, line)
		}
		return &object.Number{Value: l.Value + r.Value}, nil
	case *object.String:
		r, ok := right.(*object.String)
		if !ok {
			return nil, typeMismatch("+", left, right, line)
		}
		return &object.String{Value: l.Value + r.Value}, nil
	case *object.Array:
		r, ok := right.(*object.Array)
		if !ok {
			return nil, typeMismatch("+", left, right, line)
		}
		return l.Concat(r), nil
	default:
		return nil, typeMismatch("+", left, right, line)
	}
}

func evalArithmetic(op string, left, right object.Value, line int) (object.Value, *Error) {
	l, lok := left.(*object.Number)
	r, rok := right.(*object.Number)
	if !lok || !rok {
		return nil, typeMismatch(op, left, right, line)
	}
	switch op {
	case "-":
		return &object.Number{Value: l.Value - r.Value}, nil
	case "*":
		return &object.Number{Value: l.Value * r.Value}, nil
	case "/":
		if r.Value == 0 {
			return nil, newError(Arithmetic, line, "division by zero")
		}
		return &object.Number{Value: l.Value / r.Value}, nil
	case "%":
		if r.Value == 0 {
			return nil, newError(Arithmetic, line, "modulo by zero")
		}
		return &object.Number{Value: math.Mod(l.Value, r.Value)}, nil
	default:
		return nil, newError(Type, line, "unsupported arithmetic operator %q", op)
	}
}

func evalRelational(op string, left, right object.Value, line int) (object.Value, *Error) {
	var cmp int
	switch l := left.(type) {
	case *object.Number:
		r, ok := right.(*object.Number)
		if !ok {
			return nil, typeMismatch(op, left, right, line)
		}
		cmp = compareFloat(l.Value, r.Value)
	case *object.String:
		r, ok := right.(*object.String)
		if !ok {
			return nil, typeMismatch(op, left, right, line)
		}
		cmp = compareString(l.Value, r.Value)
	default:
		return nil, typeMismatch(op, left, right, line)
	}

	switch op {
	case "<":
		return object.NativeBool(cmp < 0), nil
	case "<=":
		return object.NativeBool(cmp <= 0), nil
	case ">":
		return object.NativeBool(cmp > 0), nil
	case ">=":
		return object.NativeBool(cmp >= 0), nil
	default:
		return nil, newError(Type, line, "unsupported relational operator %q", op)
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// valuesEqual implements spec.md §4.4's `==`/`!=` table: structural
// equality for Number/String/Bool/Null; Arrays compare equal only by
// identity; user Functions never compare equal, not even to themselves
// (DESIGN.md resolves the open question of function equality as always
// false — see the Function case below). Cross-type comparisons, and
// built-ins, are always unequal.
func valuesEqual(left, right object.Value) bool {
	switch l := left.(type) {
	case *object.Number:
		r, ok := right.(*object.Number)
		return ok && l.Value == r.Value
	case *object.String:
		r, ok := right.(*object.String)
		return ok && l.Value == r.Value
	case *object.Bool:
		r, ok := right.(*object.Bool)
		return ok && l.Value == r.Value
	case *object.Null:
		_, ok := right.(*object.Null)
		return ok
	case *object.Array:
		r, ok := right.(*object.Array)
		return ok && l == r
	case *function.Function:
		// Always false, per DESIGN.md's resolution of spec.md §9's open
		// question — user functions never compare equal, not even to
		// themselves.
		return false
	default:
		return false
	}
}

func typeMismatch(op string, left, right object.Value, line int) *Error {
	return newError(Type, line, "unsupported operand types for %q: %s and %s", op, left.Type(), right.Type())
}
