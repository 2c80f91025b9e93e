// Package function holds the user-defined Function value, kept separate
// from object to avoid an import cycle with parser (a Function body is an
// AST block).
package function

import (
	"fmt"
	"strings"

	"github.com/minilang-dev/minilang/object"
	"github.com/minilang-dev/minilang/parser"
)

// Function is a first-class, non-capturing user function, per spec.md
// §4.4: it carries its parameter names and its body AST only — no
// reference to the frame it was defined in. Minilang has no closures.
type Function struct {
	Name   string
	Params []string
	Body   *parser.Block
}

func (f *Function) Type() object.Type { return object.FUNCTION }

// String implements spec.md §6's print-formatting rule for Function: "an
// implementation-defined marker".
func (f *Function) String() string {
	return fmt.Sprintf("<fn %s(%s)>", f.Name, strings.Join(f.Params, ", "))
}
