package parser

import "github.com/minilang-dev/minilang/lexer"

// parseWhileStatement parses `while cond { body }`. No parentheses around
// the condition, per spec.md §4.2.
func (p *Parser) parseWhileStatement() Stmt {
	whileTok := p.cur
	p.advance() // consume 'while'

	cond := p.parseExpression(LOWEST)
	if cond == nil {
		return nil
	}
	body := p.parseBlock()
	if body == nil {
		return nil
	}
	return &WhileStmt{Cond: cond, Body: body, Ln: whileTok.Line}
}

// parseForStatement parses `for x in a..b { body }`, the only looping
// form over a range of Numbers, per spec.md §4.4.
func (p *Parser) parseForStatement() Stmt {
	forTok := p.cur
	p.advance() // consume 'for'

	name, ok := p.expect(lexer.IDENT)
	if !ok {
		return nil
	}
	if _, ok := p.expect(lexer.IN); !ok {
		return nil
	}

	start := p.parseExpression(LOWEST)
	if start == nil {
		return nil
	}
	if _, ok := p.expect(lexer.DOTDOT); !ok {
		return nil
	}
	end := p.parseExpression(LOWEST)
	if end == nil {
		return nil
	}

	body := p.parseBlock()
	if body == nil {
		return nil
	}
	return &ForStmt{Name: name.Literal, Start: start, End: end, Body: body, Ln: forTok.Line}
}
