package parser

import "github.com/minilang-dev/minilang/lexer"

// parsePrefix parses a unary/prefix term — a literal, identifier,
// parenthesized expression, array literal, or a unary `-`/`not`
// application — and then folds in any postfix call/index chain, per
// spec.md §4.2's "unary not and unary - (right-associative by
// construction); postfix call(...) and index[...] (left-associative,
// chainable)".
func (p *Parser) parsePrefix() Expr {
	switch p.cur.Type {
	case lexer.MINUS, lexer.NOT:
		op := p.cur
		p.advance()
		operand := p.parsePrefix()
		if operand == nil {
			return nil
		}
		return p.parsePostfix(&UnaryExpr{Op: string(op.Type), Operand: operand, Ln: op.Line})
	default:
		primary := p.parsePrimary()
		if primary == nil {
			return nil
		}
		return p.parsePostfix(primary)
	}
}

// parsePostfix repeatedly applies call `(...)` and index `[...]` postfix
// operators to expr, left-associatively and chainably (e.g. `f(1)[0](2)`).
func (p *Parser) parsePostfix(expr Expr) Expr {
	for {
		switch p.cur.Type {
		case lexer.LPAREN:
			expr = p.parseCallArgs(expr)
		case lexer.LBRACKET:
			expr = p.parseIndex(expr)
		default:
			return expr
		}
		if len(p.Errors) > 0 {
			return nil
		}
	}
}
