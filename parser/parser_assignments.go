package parser

import "github.com/minilang-dev/minilang/lexer"

// parseLetStatement parses `let name = expr`.
func (p *Parser) parseLetStatement() Stmt {
	letTok := p.cur
	p.advance() // consume 'let'

	name, ok := p.expect(lexer.IDENT)
	if !ok {
		return nil
	}
	if _, ok := p.expect(lexer.ASSIGN); !ok {
		return nil
	}
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	return &LetStmt{Name: name.Literal, Expr: expr, Ln: letTok.Line}
}

// parseIdentLedStatement resolves the one-token-lookahead ambiguity
// spec.md §4.2 describes: `IDENT =` starts an assignment, `IDENT [ ... ]
// =` starts an index assignment, anything else beginning with IDENT is
// parsed as a plain expression statement — including `IDENT [ ... ]` on
// its own or as part of a larger expression such as `a[0] + 1`, since
// assignment is not itself an expression. The identifier and any index
// are parsed once, directly, and only reinterpreted as an assignment
// target if `=` immediately follows; otherwise parsing continues as a
// normal postfix/binary expression from the same already-built operand.
func (p *Parser) parseIdentLedStatement() Stmt {
	ident := p.cur

	if p.peekIs(lexer.ASSIGN) {
		p.advance() // consume IDENT
		p.advance() // consume '='
		expr := p.parseExpression(LOWEST)
		if expr == nil {
			return nil
		}
		return &AssignStmt{Name: ident.Literal, Expr: expr, Ln: ident.Line}
	}

	base := Expr(&Ident{Name: ident.Literal, Ln: ident.Line})
	p.advance() // consume IDENT

	if p.curIs(lexer.LBRACKET) {
		indexed := p.parseIndex(base)
		if indexed == nil {
			return nil
		}
		if p.curIs(lexer.ASSIGN) {
			idx := indexed.(*IndexExpr)
			p.advance() // consume '='
			value := p.parseExpression(LOWEST)
			if value == nil {
				return nil
			}
			return &IndexAssignStmt{Name: ident.Literal, Index: idx.Index, Value: value, Ln: ident.Line}
		}
		base = indexed
	}

	full := p.parsePostfix(base)
	if full == nil {
		return nil
	}
	full = p.climb(full, LOWEST)
	if full == nil {
		return nil
	}
	return &ExprStmt{Expr: full, Ln: ident.Line}
}
