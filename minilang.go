// Package minilang implements spec.md's public entry point: run a program
// and report either clean completion or the first diagnostic encountered,
// collapsing go-mix's file-mode/REPL-mode main.go down to the single
// `run(source)` operation spec.md §6 specifies. File reading, exit-code
// wiring, and the REPL are external collaborators layered on top in
// cmd/minilang and repl.
package minilang

import (
	"io"

	"github.com/minilang-dev/minilang/interp"
	"github.com/minilang-dev/minilang/parser"
)

// Run lexes, parses, and executes source, writing any `print` output to w.
// It returns the first lex, parse, or runtime error encountered, or nil on
// clean completion.
func Run(source string, w io.Writer) error {
	prog, err := parser.New(source).Parse()
	if err != nil {
		return err
	}
	return interp.New(w).Run(prog)
}
