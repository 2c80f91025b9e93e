package parser

import "github.com/minilang-dev/minilang/lexer"

// Precedence levels, lowest-binding first, per spec.md §4.2:
//
//	or/and (same level, left-associative, mixed sequences left-to-right)
//	== !=
//	< <= > >=
//	+ -
//	* / %
//	unary not/- (right-associative by construction, handled in parsePrefix)
//	postfix call/index (left-associative, chainable, handled in parsePostfix)
const (
	LOWEST = iota
	LOGICAL
	EQUALITY
	RELATIONAL
	ADDITIVE
	MULTIPLICATIVE
)

// precedenceOf returns the binding power of an infix operator token, or
// LOWEST if tok does not start an infix expression.
func precedenceOf(t lexer.TokenType) int {
	switch t {
	case lexer.AND, lexer.OR:
		return LOGICAL
	case lexer.EQ, lexer.NOT_EQ:
		return EQUALITY
	case lexer.LT, lexer.LT_EQ, lexer.GT, lexer.GT_EQ:
		return RELATIONAL
	case lexer.PLUS, lexer.MINUS:
		return ADDITIVE
	case lexer.STAR, lexer.SLASH, lexer.PERCENT:
		return MULTIPLICATIVE
	default:
		return LOWEST
	}
}

// parseExpression implements precedence climbing: parse one prefix/unary
// term, then repeatedly fold in infix operators whose precedence exceeds
// minPrec, left-associatively.
func (p *Parser) parseExpression(minPrec int) Expr {
	left := p.parsePrefix()
	if left == nil {
		return nil
	}
	return p.climb(left, minPrec)
}

// climb continues the precedence-climbing loop from an already-parsed
// left operand. Statement-level parsing uses this directly when it has
// built the leading identifier/index expression itself (to resolve the
// assignment-vs-expression-statement ambiguity of spec.md §4.2) and needs
// to fold in any trailing binary operators, e.g. the `+ 1` in `a[0] + 1`
// used as a bare expression statement.
func (p *Parser) climb(left Expr, minPrec int) Expr {
	for precedenceOf(p.cur.Type) > minPrec {
		op := p.cur
		prec := precedenceOf(op.Type)
		p.advance()
		right := p.parseExpression(prec)
		if right == nil {
			return nil
		}
		left = &BinaryExpr{Op: string(op.Type), LHS: left, RHS: right, Ln: op.Line}
	}
	return left
}
