// Command minilang is the interpreter's command-line front end: run,
// lex, parse, fmt, and repl, each a cobra subcommand in cmd/minilang/cmd.
package main

import (
	"fmt"
	"os"

	"github.com/minilang-dev/minilang/cmd/minilang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
