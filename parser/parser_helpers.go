package parser

import (
	"fmt"

	"github.com/minilang-dev/minilang/lexer"
)

// curIs reports whether the current token has type t.
func (p *Parser) curIs(t lexer.TokenType) bool { return p.cur.Type == t }

// peekIs reports whether the lookahead token has type t.
func (p *Parser) peekIs(t lexer.TokenType) bool { return p.peek.Type == t }

// expect advances past the current token if it has type t, recording a
// parse error and leaving the cursor in place otherwise. Returns the
// consumed token and whether the match succeeded.
func (p *Parser) expect(t lexer.TokenType) (lexer.Token, bool) {
	if !p.curIs(t) {
		p.errorf(p.cur.Line, "expected %s, got %s %q", t, p.cur.Type, p.cur.Literal)
		return lexer.Token{}, false
	}
	tok := p.cur
	p.advance()
	return tok, true
}

// errorf records a parse error without altering parser position; callers
// that need to stop immediately check len(p.Errors) after calling it.
func (p *Parser) errorf(line int, format string, args ...interface{}) {
	p.Errors = append(p.Errors, &ParseError{Line: line, Reason: fmt.Sprintf(format, args...)})
}
