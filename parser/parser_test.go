package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLetStatement(t *testing.T) {
	prog, err := New(`let x = 1 + 2`).Parse()
	require.NoError(t, err)
	require.Len(t, prog.Stmts, 1)

	let, ok := prog.Stmts[0].(*LetStmt)
	require.True(t, ok)
	assert.Equal(t, "x", let.Name)

	bin, ok := let.Expr.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Op)
}

func TestParseAssignStatement(t *testing.T) {
	prog, err := New(`x = 5`).Parse()
	require.NoError(t, err)
	require.Len(t, prog.Stmts, 1)

	assign, ok := prog.Stmts[0].(*AssignStmt)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Name)
}

func TestParseIndexAssignStatement(t *testing.T) {
	prog, err := New(`a[0] = 9`).Parse()
	require.NoError(t, err)
	require.Len(t, prog.Stmts, 1)

	stmt, ok := prog.Stmts[0].(*IndexAssignStmt)
	require.True(t, ok)
	assert.Equal(t, "a", stmt.Name)
}

func TestParseIndexExpressionStatementIsNotMistakenForAssignment(t *testing.T) {
	prog, err := New(`a[0] + 1`).Parse()
	require.NoError(t, err)
	require.Len(t, prog.Stmts, 1)

	exprStmt, ok := prog.Stmts[0].(*ExprStmt)
	require.True(t, ok)

	bin, ok := exprStmt.Expr.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Op)

	_, ok = bin.LHS.(*IndexExpr)
	assert.True(t, ok)
}

func TestParseBareExpressionStatement(t *testing.T) {
	prog, err := New(`f(1, 2)`).Parse()
	require.NoError(t, err)
	require.Len(t, prog.Stmts, 1)

	exprStmt, ok := prog.Stmts[0].(*ExprStmt)
	require.True(t, ok)

	call, ok := exprStmt.Expr.(*CallExpr)
	require.True(t, ok)
	assert.Len(t, call.Args, 2)
}

func TestParseIfElseStatement(t *testing.T) {
	prog, err := New(`if x > 0 { print(1) } else { print(2) }`).Parse()
	require.NoError(t, err)
	require.Len(t, prog.Stmts, 1)

	ifStmt, ok := prog.Stmts[0].(*IfStmt)
	require.True(t, ok)
	require.NotNil(t, ifStmt.Then)
	require.NotNil(t, ifStmt.Else)
	assert.Len(t, ifStmt.Then.Stmts, 1)
	assert.Len(t, ifStmt.Else.Stmts, 1)
}

func TestParseChainedElseIf(t *testing.T) {
	prog, err := New(`
if x > 0 {
	print(1)
} else if x < 0 {
	print(2)
} else {
	print(3)
}`).Parse()
	require.NoError(t, err)
	require.Len(t, prog.Stmts, 1)

	outer, ok := prog.Stmts[0].(*IfStmt)
	require.True(t, ok)
	require.Len(t, outer.Else.Stmts, 1)

	inner, ok := outer.Else.Stmts[0].(*IfStmt)
	require.True(t, ok)
	assert.NotNil(t, inner.Else)
}

func TestParseWhileStatement(t *testing.T) {
	prog, err := New(`while x < 10 { x = x + 1 }`).Parse()
	require.NoError(t, err)
	require.Len(t, prog.Stmts, 1)

	while, ok := prog.Stmts[0].(*WhileStmt)
	require.True(t, ok)
	assert.Len(t, while.Body.Stmts, 1)
}

func TestParseForRangeStatement(t *testing.T) {
	prog, err := New(`for i in 0..3 { print(i) }`).Parse()
	require.NoError(t, err)
	require.Len(t, prog.Stmts, 1)

	forStmt, ok := prog.Stmts[0].(*ForStmt)
	require.True(t, ok)
	assert.Equal(t, "i", forStmt.Name)
	assert.IsType(t, &NumberLit{}, forStmt.Start)
	assert.IsType(t, &NumberLit{}, forStmt.End)
}

func TestParseFnStatement(t *testing.T) {
	prog, err := New(`fn add(a, b) { return a + b }`).Parse()
	require.NoError(t, err)
	require.Len(t, prog.Stmts, 1)

	fn, ok := prog.Stmts[0].(*FnStmt)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, []string{"a", "b"}, fn.Params)
	require.Len(t, fn.Body.Stmts, 1)

	ret, ok := fn.Body.Stmts[0].(*ReturnStmt)
	require.True(t, ok)
	assert.NotNil(t, ret.Expr)
}

func TestParseFnWithNoParams(t *testing.T) {
	prog, err := New(`fn greet() { return "hi" }`).Parse()
	require.NoError(t, err)

	fn, ok := prog.Stmts[0].(*FnStmt)
	require.True(t, ok)
	assert.Empty(t, fn.Params)
}

func TestParseBareReturnStatement(t *testing.T) {
	prog, err := New(`fn f() { return }`).Parse()
	require.NoError(t, err)

	fn := prog.Stmts[0].(*FnStmt)
	ret, ok := fn.Body.Stmts[0].(*ReturnStmt)
	require.True(t, ok)
	assert.Nil(t, ret.Expr)
}

func TestParseArrayLiteral(t *testing.T) {
	prog, err := New(`let a = [1, 2, 3]`).Parse()
	require.NoError(t, err)

	let := prog.Stmts[0].(*LetStmt)
	lit, ok := let.Expr.(*ArrayLit)
	require.True(t, ok)
	assert.Len(t, lit.Elements, 3)
}

func TestParseEmptyArrayLiteral(t *testing.T) {
	prog, err := New(`let a = []`).Parse()
	require.NoError(t, err)

	let := prog.Stmts[0].(*LetStmt)
	lit, ok := let.Expr.(*ArrayLit)
	require.True(t, ok)
	assert.Empty(t, lit.Elements)
}

func TestParseArrayLiteralTrailingCommaIsError(t *testing.T) {
	_, err := New(`let a = [1, 2, ]`).Parse()
	assert.Error(t, err)
}

func TestParseOperatorPrecedence(t *testing.T) {
	prog, err := New(`let x = 1 + 2 * 3`).Parse()
	require.NoError(t, err)

	let := prog.Stmts[0].(*LetStmt)
	bin, ok := let.Expr.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Op)

	rhs, ok := bin.RHS.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "*", rhs.Op)
}

func TestParseLogicalShortCircuitPrecedence(t *testing.T) {
	prog, err := New(`let x = a and b or c`).Parse()
	require.NoError(t, err)

	let := prog.Stmts[0].(*LetStmt)
	bin, ok := let.Expr.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "or", bin.Op)
}

func TestParseUnaryNot(t *testing.T) {
	prog, err := New(`let x = not true`).Parse()
	require.NoError(t, err)

	let := prog.Stmts[0].(*LetStmt)
	un, ok := let.Expr.(*UnaryExpr)
	require.True(t, ok)
	assert.Equal(t, "not", un.Op)
}

func TestParseChainedCallAndIndex(t *testing.T) {
	prog, err := New(`f(1)[0]`).Parse()
	require.NoError(t, err)

	exprStmt := prog.Stmts[0].(*ExprStmt)
	idx, ok := exprStmt.Expr.(*IndexExpr)
	require.True(t, ok)
	assert.IsType(t, &CallExpr{}, idx.Target)
}

func TestParseGroupedExpression(t *testing.T) {
	prog, err := New(`let x = (1 + 2) * 3`).Parse()
	require.NoError(t, err)

	let := prog.Stmts[0].(*LetStmt)
	bin, ok := let.Expr.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "*", bin.Op)
	assert.IsType(t, &BinaryExpr{}, bin.LHS)
}

func TestParseUnexpectedTokenIsParseError(t *testing.T) {
	_, err := New(`let x = )`).Parse()
	assert.Error(t, err)
}

func TestParseMissingClosingBraceIsParseError(t *testing.T) {
	_, err := New(`fn f() { return 1`).Parse()
	assert.Error(t, err)
}
