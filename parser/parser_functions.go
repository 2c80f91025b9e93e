package parser

import "github.com/minilang-dev/minilang/lexer"

// parseFnStatement parses `fn name(p1, p2, ...) { body }`. Binding the
// name happens at evaluation time, in the active frame — per spec.md
// §4.4, the body is not evaluated until the function is called.
func (p *Parser) parseFnStatement() Stmt {
	fnTok := p.cur
	p.advance() // consume 'fn'

	name, ok := p.expect(lexer.IDENT)
	if !ok {
		return nil
	}
	if _, ok := p.expect(lexer.LPAREN); !ok {
		return nil
	}

	var params []string
	if !p.curIs(lexer.RPAREN) {
		for {
			param, ok := p.expect(lexer.IDENT)
			if !ok {
				return nil
			}
			params = append(params, param.Literal)
			if p.curIs(lexer.COMMA) {
				p.advance()
				continue
			}
			break
		}
	}
	if _, ok := p.expect(lexer.RPAREN); !ok {
		return nil
	}

	body := p.parseBlock()
	if body == nil {
		return nil
	}
	return &FnStmt{Name: name.Literal, Params: params, Body: body, Ln: fnTok.Line}
}
