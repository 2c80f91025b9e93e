// Package interp is the tree-walking evaluator: it consumes a parser.Block
// and an environment.Env, executing statements for effect and evaluating
// expressions to object.Value, per spec.md §4.3/§4.4. Grounded on the
// teacher's eval.Evaluator, generalized to the three-tier "active frame,
// global frame, built-ins" lookup spec.md calls for instead of go-mix's
// closure-capturing scope chain.
package interp

import (
	"io"

	"github.com/minilang-dev/minilang/builtin"
	"github.com/minilang-dev/minilang/environment"
	"github.com/minilang-dev/minilang/parser"
)

// Interpreter holds the evaluation state for one Run: the environment
// (active/global frames + built-ins) and the output writer `print` writes
// to, mirroring the teacher's Evaluator.Writer field.
type Interpreter struct {
	Env    *environment.Env
	Writer io.Writer
}

// New returns an Interpreter with a fresh global frame and the built-ins
// table of builtin.Table, writing print output to w.
func New(w io.Writer) *Interpreter {
	return &Interpreter{
		Env:    environment.New(builtin.Table()),
		Writer: w,
	}
}

// Run executes prog's top-level statements against the interpreter's
// global frame. A `return` reaching the top level fails with a
// ControlFlow error, per spec.md §4.4 ("a return at the top level fails
// with a 'return outside function' error").
func (in *Interpreter) Run(prog *parser.Block) error {
	f, err := in.execBlock(prog)
	if err != nil {
		return err
	}
	if f.returning {
		return newError(ControlFlow, f.line, "return outside function")
	}
	return nil
}
