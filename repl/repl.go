// Package repl implements minilang's interactive Read-Eval-Print Loop,
// adapted directly from the teacher's repl.Repl: same readline/color
// stack, same banner/prompt shape, re-pointed at minilang's parser and
// interp instead of go-mix's parser/eval. Unlike go-mix (which echoes
// every expression's result), minilang has exactly one output channel —
// `print` — so the REPL only ever prints what a line's `print` calls
// write, plus any error.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/minilang-dev/minilang/interp"
	"github.com/minilang-dev/minilang/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the banner/prompt configuration for one interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string

	// Color disables ANSI colorization when false, so piped output and
	// golden-file tests never pick up escape codes.
	Color bool

	// HistoryFile is the readline history path; empty disables
	// persistent history.
	HistoryFile string
}

// NewRepl creates a Repl with colorization enabled by default; callers
// gate that from the command layer via golang.org/x/term.IsTerminal.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt, Color: true}
}

func (r *Repl) fprint(c *color.Color, writer io.Writer, format string, a ...interface{}) {
	if !r.Color {
		fmt.Fprintf(writer, format, a...)
		return
	}
	c.Fprintf(writer, format, a...)
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	r.fprint(blueColor, writer, "%s\n", r.Line)
	r.fprint(greenColor, writer, "%s\n", r.Banner)
	r.fprint(blueColor, writer, "%s\n", r.Line)
	r.fprint(yellowColor, writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License+"\n")
	r.fprint(blueColor, writer, "%s\n", r.Line)
	r.fprint(cyanColor, writer, "%s\n", "Welcome to minilang!")
	r.fprint(cyanColor, writer, "%s\n", "Type your code and press enter")
	r.fprint(cyanColor, writer, "%s\n", "Type '.exit' to quit")
	r.fprint(cyanColor, writer, "%s\n", "Use up/down arrows to navigate command history")
	r.fprint(blueColor, writer, "%s\n", r.Line)
}

// Start runs the REPL main loop: read a line, parse and execute it
// against a persistent Interpreter (so `let`/`fn` bindings survive
// across lines), print any error, repeat until '.exit' or EOF.
func (r *Repl) Start(writer io.Writer) error {
	r.PrintBannerInfo(writer)

	cfg := &readline.Config{Prompt: r.Prompt}
	if r.HistoryFile != "" {
		cfg.HistoryFile = r.HistoryFile
	}
	rl, err := readline.NewEx(cfg)
	if err != nil {
		return err
	}
	defer rl.Close()

	in := interp.New(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			io.WriteString(writer, "Good Bye!\n")
			return nil
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			io.WriteString(writer, "Good Bye!\n")
			return nil
		}
		rl.SaveHistory(line)

		r.evalLine(writer, line, in)
	}
}

func (r *Repl) evalLine(writer io.Writer, line string, in *interp.Interpreter) {
	prog, err := parser.New(line).Parse()
	if err != nil {
		r.fprint(redColor, writer, "%s\n", err)
		return
	}
	if err := in.Run(prog); err != nil {
		r.fprint(redColor, writer, "%s\n", err)
	}
}
