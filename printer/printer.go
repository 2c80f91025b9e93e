// Package printer re-renders a parsed minilang AST back to canonical
// source text, grounded on CWBudde-go-dws's pkg/printer (an AST-driven
// formatter) but sized to minilang's much smaller grammar: one indent
// style, no format/style options. Running Print on its own output is
// idempotent, which is what makes `minilang fmt` a formatter rather
// than just a pretty-printer.
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/minilang-dev/minilang/parser"
)

const indentWidth = 2

// Print renders prog as minilang source text.
func Print(prog *parser.Block) string {
	var b strings.Builder
	for i, stmt := range prog.Stmts {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeStmt(&b, stmt, 0)
	}
	b.WriteByte('\n')
	return b.String()
}

func indent(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat(" ", depth*indentWidth))
}

func writeBlock(b *strings.Builder, blk *parser.Block, depth int) {
	b.WriteString("{\n")
	for _, stmt := range blk.Stmts {
		writeStmt(b, stmt, depth+1)
		b.WriteByte('\n')
	}
	indent(b, depth)
	b.WriteByte('}')
}

func writeStmt(b *strings.Builder, stmt parser.Stmt, depth int) {
	indent(b, depth)
	switch s := stmt.(type) {
	case *parser.LetStmt:
		fmt.Fprintf(b, "let %s = %s", s.Name, exprString(s.Expr))
	case *parser.AssignStmt:
		fmt.Fprintf(b, "%s = %s", s.Name, exprString(s.Expr))
	case *parser.IndexAssignStmt:
		fmt.Fprintf(b, "%s[%s] = %s", s.Name, exprString(s.Index), exprString(s.Value))
	case *parser.IfStmt:
		fmt.Fprintf(b, "if %s ", exprString(s.Cond))
		writeBlock(b, s.Then, depth)
		if s.Else != nil {
			b.WriteString(" else ")
			if elseIf, ok := soleIfStmt(s.Else); ok {
				writeIfTail(b, elseIf, depth)
			} else {
				writeBlock(b, s.Else, depth)
			}
		}
	case *parser.WhileStmt:
		fmt.Fprintf(b, "while %s ", exprString(s.Cond))
		writeBlock(b, s.Body, depth)
	case *parser.ForStmt:
		fmt.Fprintf(b, "for %s in %s..%s ", s.Name, exprString(s.Start), exprString(s.End))
		writeBlock(b, s.Body, depth)
	case *parser.FnStmt:
		fmt.Fprintf(b, "fn %s(%s) ", s.Name, strings.Join(s.Params, ", "))
		writeBlock(b, s.Body, depth)
	case *parser.ReturnStmt:
		if s.Expr == nil {
			b.WriteString("return")
		} else {
			fmt.Fprintf(b, "return %s", exprString(s.Expr))
		}
	case *parser.ExprStmt:
		b.WriteString(exprString(s.Expr))
	default:
		fmt.Fprintf(b, "/* unknown statement %T */", stmt)
	}
}

// soleIfStmt reports whether blk is the synthetic single-statement block
// the parser wraps an `else if` chain in, so fmt can print `} else if`
// instead of `} else {\n  if ...`.
func soleIfStmt(blk *parser.Block) (*parser.IfStmt, bool) {
	if len(blk.Stmts) != 1 {
		return nil, false
	}
	ifStmt, ok := blk.Stmts[0].(*parser.IfStmt)
	return ifStmt, ok
}

func writeIfTail(b *strings.Builder, s *parser.IfStmt, depth int) {
	fmt.Fprintf(b, "if %s ", exprString(s.Cond))
	writeBlock(b, s.Then, depth)
	if s.Else != nil {
		b.WriteString(" else ")
		if elseIf, ok := soleIfStmt(s.Else); ok {
			writeIfTail(b, elseIf, depth)
		} else {
			writeBlock(b, s.Else, depth)
		}
	}
}

func exprString(e parser.Expr) string {
	switch v := e.(type) {
	case *parser.NumberLit:
		return strconv.FormatFloat(v.Value, 'g', -1, 64)
	case *parser.StringLit:
		return strconv.Quote(v.Value)
	case *parser.BoolLit:
		if v.Value {
			return "true"
		}
		return "false"
	case *parser.Ident:
		return v.Name
	case *parser.ArrayLit:
		parts := make([]string, len(v.Elements))
		for i, el := range v.Elements {
			parts[i] = exprString(el)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *parser.UnaryExpr:
		if v.Op == "not" {
			return "not " + exprString(v.Operand)
		}
		return v.Op + exprString(v.Operand)
	case *parser.BinaryExpr:
		return exprString(v.LHS) + " " + v.Op + " " + exprString(v.RHS)
	case *parser.CallExpr:
		args := make([]string, len(v.Args))
		for i, a := range v.Args {
			args[i] = exprString(a)
		}
		return exprString(v.Callee) + "(" + strings.Join(args, ", ") + ")"
	case *parser.IndexExpr:
		return exprString(v.Target) + "[" + exprString(v.Index) + "]"
	default:
		return fmt.Sprintf("/* unknown expr %T */", e)
	}
}
