package parser

import "github.com/minilang-dev/minilang/lexer"

// parseReturnStatement parses `return expr` or a bare `return`, per
// spec.md §4.4. Minilang statements have no terminator token, so a bare
// return is recognized by the only unambiguous signal available: the
// enclosing block closing immediately after it.
func (p *Parser) parseReturnStatement() Stmt {
	retTok := p.cur
	p.advance() // consume 'return'

	if p.curIs(lexer.RBRACE) {
		return &ReturnStmt{Expr: nil, Ln: retTok.Line}
	}

	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	return &ReturnStmt{Expr: expr, Ln: retTok.Line}
}
