package parser

import "github.com/minilang-dev/minilang/lexer"

// parseIfStatement parses `if cond { ... }` with an optional `else { ... }`
// or chained `else if cond { ... }`, per spec.md §4.2. There are no
// parentheses around the condition.
func (p *Parser) parseIfStatement() Stmt {
	ifTok := p.cur
	p.advance() // consume 'if'

	cond := p.parseExpression(LOWEST)
	if cond == nil {
		return nil
	}

	then := p.parseBlock()
	if then == nil {
		return nil
	}

	stmt := &IfStmt{Cond: cond, Then: then, Ln: ifTok.Line}
	if !p.curIs(lexer.ELSE) {
		return stmt
	}
	p.advance() // consume 'else'

	if p.curIs(lexer.IF) {
		elseIf := p.parseIfStatement()
		if elseIf == nil {
			return nil
		}
		stmt.Else = &Block{Stmts: []Stmt{elseIf}, Ln: elseIf.Line()}
		return stmt
	}

	stmt.Else = p.parseBlock()
	if stmt.Else == nil {
		return nil
	}
	return stmt
}
