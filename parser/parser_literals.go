package parser

import (
	"strconv"

	"github.com/minilang-dev/minilang/lexer"
)

// parsePrimary parses a single primary expression: numeric, string,
// true, false, identifier, parenthesized expression, or array literal,
// per spec.md §4.2's "Primaries" list.
func (p *Parser) parsePrimary() Expr {
	switch p.cur.Type {
	case lexer.NUMBER:
		return p.parseNumberLit()
	case lexer.STRING:
		return p.parseStringLit()
	case lexer.TRUE, lexer.FALSE:
		return p.parseBoolLit()
	case lexer.IDENT:
		tok := p.cur
		p.advance()
		return &Ident{Name: tok.Literal, Ln: tok.Line}
	case lexer.LPAREN:
		return p.parseGroupedExpr()
	case lexer.LBRACKET:
		return p.parseArrayLit()
	default:
		p.errorf(p.cur.Line, "unexpected token %s %q", p.cur.Type, p.cur.Literal)
		return nil
	}
}

func (p *Parser) parseNumberLit() Expr {
	tok := p.cur
	val, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.errorf(tok.Line, "invalid number literal %q", tok.Literal)
		return nil
	}
	p.advance()
	return &NumberLit{Value: val, Ln: tok.Line}
}

func (p *Parser) parseStringLit() Expr {
	tok := p.cur
	p.advance()
	return &StringLit{Value: tok.Literal, Ln: tok.Line}
}

func (p *Parser) parseBoolLit() Expr {
	tok := p.cur
	p.advance()
	return &BoolLit{Value: tok.Type == lexer.TRUE, Ln: tok.Line}
}

func (p *Parser) parseGroupedExpr() Expr {
	p.advance() // consume '('
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if _, ok := p.expect(lexer.RPAREN); !ok {
		return nil
	}
	return expr
}
