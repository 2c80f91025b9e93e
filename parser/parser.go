package parser

import (
	"fmt"

	"github.com/minilang-dev/minilang/lexer"
)

// ParseError reports a syntax problem at a specific source line, per
// spec.md §7: "Parse error — unexpected token, missing closer, illegal
// statement form. Carries line number of the offending token."
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// Parser is a recursive-descent parser with a precedence climb for
// expressions. Statements and prefix terms are dispatched by switch
// statements over the current token type, and infix binding powers come
// from precedenceOf, over minilang's small operator set.
//
// Syntax errors are recorded in Errors. Parse stops at the first
// top-level statement that records one and returns Errors[0]; nothing
// after that statement is parsed, so later syntax errors are not reported.
type Parser struct {
	lex *lexer.Lexer

	cur  lexer.Token
	peek lexer.Token

	Errors []error
}

// New creates a Parser over src and primes the two-token lookahead.
func New(src string) *Parser {
	p := &Parser{lex: lexer.New(src)}
	p.advance()
	p.advance()
	return p
}

// Parse consumes the entire token stream and returns the program as a
// Block of top-level statements, or the first error encountered.
func (p *Parser) Parse() (*Block, error) {
	prog := &Block{Ln: 1}
	for !p.curIs(lexer.EOF) {
		stmt := p.parseStatement()
		if len(p.Errors) > 0 {
			return prog, p.Errors[0]
		}
		if stmt != nil {
			prog.Stmts = append(prog.Stmts, stmt)
		}
	}
	return prog, nil
}

// advance pulls the next token from the lexer into peek, shifting the
// previous peek into cur. A lexer error is recorded as a parse-level
// error carrying the same line/reason, since from the parser's vantage
// point an unscannable byte is just another reason parsing cannot
// continue past that point.
func (p *Parser) advance() {
	p.cur = p.peek
	tok, err := p.lex.Next()
	if err != nil {
		line := 0
		if lexErr, ok := err.(*lexer.LexError); ok {
			line = lexErr.Line
			p.errorf(line, "%s", lexErr.Reason)
		} else {
			p.errorf(p.cur.Line, "%s", err.Error())
		}
		p.peek = lexer.Token{Type: lexer.EOF, Line: line}
		return
	}
	p.peek = tok
}
