package interp

import (
	"github.com/minilang-dev/minilang/environment"
	"github.com/minilang-dev/minilang/function"
	"github.com/minilang-dev/minilang/object"
	"github.com/minilang-dev/minilang/parser"
)

// execBlock executes a statement sequence in order, stopping and
// propagating the first returning flow or error it encounters. Blocks do
// not introduce their own frame — spec.md's three-tier lookup has no
// notion of block scoping, only call-frame scoping.
func (in *Interpreter) execBlock(block *parser.Block) (flow, *Error) {
	for _, stmt := range block.Stmts {
		f, err := in.execStmt(stmt)
		if err != nil {
			return flow{}, err
		}
		if f.returning {
			return f, nil
		}
	}
	return fellThrough(), nil
}

func (in *Interpreter) execStmt(stmt parser.Stmt) (flow, *Error) {
	switch s := stmt.(type) {
	case *parser.LetStmt:
		return in.execLet(s)
	case *parser.AssignStmt:
		return in.execAssign(s)
	case *parser.IndexAssignStmt:
		return in.execIndexAssign(s)
	case *parser.IfStmt:
		return in.execIf(s)
	case *parser.WhileStmt:
		return in.execWhile(s)
	case *parser.ForStmt:
		return in.execFor(s)
	case *parser.FnStmt:
		return in.execFn(s)
	case *parser.ReturnStmt:
		return in.execReturn(s)
	case *parser.ExprStmt:
		_, err := in.evalExpr(s.Expr)
		if err != nil {
			return flow{}, err
		}
		return fellThrough(), nil
	default:
		return flow{}, newError(Parse, stmt.Line(), "unhandled statement type %T", stmt)
	}
}

func (in *Interpreter) execLet(s *parser.LetStmt) (flow, *Error) {
	v, err := in.evalExpr(s.Expr)
	if err != nil {
		return flow{}, err
	}
	in.Env.Bind(s.Name, v)
	return fellThrough(), nil
}

func (in *Interpreter) execAssign(s *parser.AssignStmt) (flow, *Error) {
	v, err := in.evalExpr(s.Expr)
	if err != nil {
		return flow{}, err
	}
	if !in.Env.Assign(s.Name, v) {
		return flow{}, newError(Name, s.Ln, "assignment to unbound name %q", s.Name)
	}
	return fellThrough(), nil
}

func (in *Interpreter) execIndexAssign(s *parser.IndexAssignStmt) (flow, *Error) {
	target, ok := in.Env.Lookup(s.Name)
	if !ok {
		return flow{}, newError(Name, s.Ln, "assignment to unbound name %q", s.Name)
	}
	arr, ok := target.(*object.Array)
	if !ok {
		return flow{}, newError(Type, s.Ln, "cannot index-assign into %s", target.Type())
	}

	idx, err := in.evalExpr(s.Index)
	if err != nil {
		return flow{}, err
	}
	i, ierr := arrayIndex(arr, idx, s.Ln)
	if ierr != nil {
		return flow{}, ierr
	}

	val, err := in.evalExpr(s.Value)
	if err != nil {
		return flow{}, err
	}
	arr.Elements[i] = val
	return fellThrough(), nil
}

func (in *Interpreter) execIf(s *parser.IfStmt) (flow, *Error) {
	cond, err := in.evalBoolCondition(s.Cond)
	if err != nil {
		return flow{}, err
	}
	if cond {
		return in.execBlock(s.Then)
	}
	if s.Else != nil {
		return in.execBlock(s.Else)
	}
	return fellThrough(), nil
}

func (in *Interpreter) execWhile(s *parser.WhileStmt) (flow, *Error) {
	for {
		cond, err := in.evalBoolCondition(s.Cond)
		if err != nil {
			return flow{}, err
		}
		if !cond {
			return fellThrough(), nil
		}
		f, err := in.execBlock(s.Body)
		if err != nil {
			return flow{}, err
		}
		if f.returning {
			return f, nil
		}
	}
}

func (in *Interpreter) execFor(s *parser.ForStmt) (flow, *Error) {
	start, err := in.evalExpr(s.Start)
	if err != nil {
		return flow{}, err
	}
	end, err := in.evalExpr(s.End)
	if err != nil {
		return flow{}, err
	}
	startN, ok := start.(*object.Number)
	if !ok {
		return flow{}, newError(Type, s.Ln, "for range start must be a Number, got %s", start.Type())
	}
	endN, ok := end.(*object.Number)
	if !ok {
		return flow{}, newError(Type, s.Ln, "for range end must be a Number, got %s", end.Type())
	}
	if !isIntegral(startN.Value) || !isIntegral(endN.Value) {
		return flow{}, newError(Type, s.Ln, "for range bounds must be integral Numbers")
	}

	for i := startN.Value; i < endN.Value; i++ {
		in.Env.Bind(s.Name, &object.Number{Value: i})
		f, err := in.execBlock(s.Body)
		if err != nil {
			return flow{}, err
		}
		if f.returning {
			return f, nil
		}
	}
	return fellThrough(), nil
}

func (in *Interpreter) execFn(s *parser.FnStmt) (flow, *Error) {
	in.Env.Bind(s.Name, &function.Function{Name: s.Name, Params: s.Params, Body: s.Body})
	return fellThrough(), nil
}

func (in *Interpreter) execReturn(s *parser.ReturnStmt) (flow, *Error) {
	if s.Expr == nil {
		return returningWith(object.Nil, s.Ln), nil
	}
	v, err := in.evalExpr(s.Expr)
	if err != nil {
		return flow{}, err
	}
	return returningWith(v, s.Ln), nil
}

// evalBoolCondition evaluates cond and enforces spec.md §4.4's "only
// Bool is truthy/falsy" rule for if/while conditions.
func (in *Interpreter) evalBoolCondition(cond parser.Expr) (bool, *Error) {
	v, err := in.evalExpr(cond)
	if err != nil {
		return false, err
	}
	b, ok := v.(*object.Bool)
	if !ok {
		return false, newError(Type, cond.Line(), "condition must be a Bool, got %s", v.Type())
	}
	return object.IsTruthy(b), nil
}

func isIntegral(f float64) bool {
	return f == float64(int64(f))
}

// PushCall activates a fresh call frame for a function activation,
// returning the previous frame so the caller can restore it on every
// exit path, per spec.md §4.4.
func (in *Interpreter) PushCall() *environment.Frame {
	return in.Env.PushFrame(environment.NewFrame())
}

// PopCall restores prev as the active frame.
func (in *Interpreter) PopCall(prev *environment.Frame) {
	in.Env.PopFrame(prev)
}
