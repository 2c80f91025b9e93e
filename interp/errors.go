package interp

import "fmt"

// Kind closes over the eight error categories spec.md §7 names. Lex and
// Parse errors are raised below this package: minilang.Run returns them
// as *parser.ParseError (a lexer error is recorded as one), not as *Error.
// Within interp, Parse only marks an AST node type the evaluator does not
// handle, and Lex is not used.
type Kind string

const (
	Lex         Kind = "lex"
	Parse       Kind = "parse"
	Name        Kind = "name"
	Type        Kind = "type"
	Arity       Kind = "arity"
	Index       Kind = "index"
	Arithmetic  Kind = "arithmetic"
	ControlFlow Kind = "control-flow"
)

// Error is the runtime diagnostic produced by the interpreter, mirroring
// the teacher's *objects.Error{Message} shape with typed Kind and Line
// fields added so callers can inspect the category and line without
// parsing the message text. Error renders "line <line>: <kind>:
// <message>"; the CLI's run command prefixes that with the file path.
type Error struct {
	Kind    Kind
	Line    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s: %s", e.Line, e.Kind, e.Message)
}

func newError(kind Kind, line int, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Line: line, Message: fmt.Sprintf(format, args...)}
}
