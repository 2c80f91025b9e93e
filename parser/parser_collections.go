package parser

import "github.com/minilang-dev/minilang/lexer"

// parseArrayLit parses `[ e, e, ... ]`. An empty array `[]` is permitted;
// a trailing comma is not, per spec.md §4.2.
func (p *Parser) parseArrayLit() Expr {
	open := p.cur
	p.advance() // consume '['

	lit := &ArrayLit{Ln: open.Line}
	if p.curIs(lexer.RBRACKET) {
		p.advance()
		return lit
	}

	for {
		elem := p.parseExpression(LOWEST)
		if elem == nil {
			return nil
		}
		lit.Elements = append(lit.Elements, elem)

		if p.curIs(lexer.COMMA) {
			p.advance()
			if p.curIs(lexer.RBRACKET) {
				p.errorf(p.cur.Line, "trailing comma not permitted in array literal")
				return nil
			}
			continue
		}
		break
	}

	if _, ok := p.expect(lexer.RBRACKET); !ok {
		return nil
	}
	return lit
}

// parseIndex parses the postfix `target[index]` form.
func (p *Parser) parseIndex(target Expr) Expr {
	open := p.cur
	p.advance() // consume '['
	index := p.parseExpression(LOWEST)
	if index == nil {
		return nil
	}
	if _, ok := p.expect(lexer.RBRACKET); !ok {
		return nil
	}
	return &IndexExpr{Target: target, Index: index, Ln: open.Line}
}

// parseCallArgs parses the postfix `callee(args...)` form.
func (p *Parser) parseCallArgs(callee Expr) Expr {
	open := p.cur
	p.advance() // consume '('

	call := &CallExpr{Callee: callee, Ln: open.Line}
	if p.curIs(lexer.RPAREN) {
		p.advance()
		return call
	}

	for {
		arg := p.parseExpression(LOWEST)
		if arg == nil {
			return nil
		}
		call.Args = append(call.Args, arg)

		if p.curIs(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}

	if _, ok := p.expect(lexer.RPAREN); !ok {
		return nil
	}
	return call
}
