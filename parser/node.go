// Package parser turns a minilang token stream into an AST: one
// program, a Block of top-level statements, per source file, per spec.md §4.2.
package parser

import "github.com/minilang-dev/minilang/lexer"

// Node is implemented by every AST node, mostly so diagnostics can always
// recover the source line a node came from.
type Node interface {
	Line() int
}

// Stmt is the sum type spec.md §3 "AST / Statements" closes over: Let,
// Assign, IndexAssign, If, While, For, Fn, Return, ExprStmt.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is the sum type spec.md §3 "AST / Expressions" closes over.
type Expr interface {
	Node
	exprNode()
}

// Block is an ordered sequence of statements delimited by `{` and `}`
// (spec.md §4.2). Blocks do not introduce a new frame (spec.md §4.3).
type Block struct {
	Stmts []Stmt
	Ln    int
}

func (b *Block) Line() int { return b.Ln }

// ---- Statements ----

// LetStmt is `let name = expr`.
type LetStmt struct {
	Name string
	Expr Expr
	Ln   int
}

func (s *LetStmt) stmtNode() {}
func (s *LetStmt) Line() int { return s.Ln }

// AssignStmt is `name = expr`.
type AssignStmt struct {
	Name string
	Expr Expr
	Ln   int
}

func (s *AssignStmt) stmtNode() {}
func (s *AssignStmt) Line() int { return s.Ln }

// IndexAssignStmt is `name[index] = value`.
type IndexAssignStmt struct {
	Name  string
	Index Expr
	Value Expr
	Ln    int
}

func (s *IndexAssignStmt) stmtNode() {}
func (s *IndexAssignStmt) Line() int { return s.Ln }

// IfStmt is `if cond { ... } else { ... }`; Else is nil when absent.
type IfStmt struct {
	Cond Expr
	Then *Block
	Else *Block
	Ln   int
}

func (s *IfStmt) stmtNode() {}
func (s *IfStmt) Line() int { return s.Ln }

// WhileStmt is `while cond { ... }`.
type WhileStmt struct {
	Cond Expr
	Body *Block
	Ln   int
}

func (s *WhileStmt) stmtNode() {}
func (s *WhileStmt) Line() int { return s.Ln }

// ForStmt is `for name in start..end { ... }`.
type ForStmt struct {
	Name  string
	Start Expr
	End   Expr
	Body  *Block
	Ln    int
}

func (s *ForStmt) stmtNode() {}
func (s *ForStmt) Line() int { return s.Ln }

// FnStmt is `fn name(params) { body }`.
type FnStmt struct {
	Name   string
	Params []string
	Body   *Block
	Ln     int
}

func (s *FnStmt) stmtNode() {}
func (s *FnStmt) Line() int { return s.Ln }

// ReturnStmt is `return expr` or bare `return`; Expr is nil for the bare
// form (the call yields Null, per spec.md §4.3).
type ReturnStmt struct {
	Expr Expr
	Ln   int
}

func (s *ReturnStmt) stmtNode() {}
func (s *ReturnStmt) Line() int { return s.Ln }

// ExprStmt wraps a bare expression evaluated for effect.
type ExprStmt struct {
	Expr Expr
	Ln   int
}

func (s *ExprStmt) stmtNode() {}
func (s *ExprStmt) Line() int { return s.Ln }

// ---- Expressions ----

// NumberLit is a numeric literal carrying its parsed float64 value.
type NumberLit struct {
	Value float64
	Ln    int
}

func (e *NumberLit) exprNode() {}
func (e *NumberLit) Line() int { return e.Ln }

// StringLit is a string literal carrying its unescaped byte contents.
type StringLit struct {
	Value string
	Ln    int
}

func (e *StringLit) exprNode() {}
func (e *StringLit) Line() int { return e.Ln }

// BoolLit is `true` or `false`.
type BoolLit struct {
	Value bool
	Ln    int
}

func (e *BoolLit) exprNode() {}
func (e *BoolLit) Line() int { return e.Ln }

// Ident is a bare identifier reference.
type Ident struct {
	Name string
	Ln   int
}

func (e *Ident) exprNode() {}
func (e *Ident) Line() int { return e.Ln }

// ArrayLit is `[ e, e, ... ]`, empty arrays permitted, no trailing comma.
type ArrayLit struct {
	Elements []Expr
	Ln       int
}

func (e *ArrayLit) exprNode() {}
func (e *ArrayLit) Line() int { return e.Ln }

// BinaryExpr is `lhs op rhs` for the operator set spec.md §3 lists:
// + - * / % == != < <= > >= and or.
type BinaryExpr struct {
	Op  string
	LHS Expr
	RHS Expr
	Ln  int
}

func (e *BinaryExpr) exprNode() {}
func (e *BinaryExpr) Line() int { return e.Ln }

// UnaryExpr is `op operand` for op in {-, not}.
type UnaryExpr struct {
	Op      string
	Operand Expr
	Ln      int
}

func (e *UnaryExpr) exprNode() {}
func (e *UnaryExpr) Line() int { return e.Ln }

// CallExpr is `callee(args...)`; Callee is a general expression so that
// chained calls like `f()()` parse, per spec.md §4.2's postfix-call rule.
type CallExpr struct {
	Callee Expr
	Args   []Expr
	Ln     int
}

func (e *CallExpr) exprNode() {}
func (e *CallExpr) Line() int { return e.Ln }

// IndexExpr is `target[index]`.
type IndexExpr struct {
	Target Expr
	Index  Expr
	Ln     int
}

func (e *IndexExpr) exprNode() {}
func (e *IndexExpr) Line() int { return e.Ln }

// tokenLine returns the source line of tok; parseStatement uses it for
// the line of an expression statement that begins with a token other
// than an identifier.
func tokenLine(tok lexer.Token) int { return tok.Line }
