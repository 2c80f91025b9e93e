package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"

	"github.com/minilang-dev/minilang/parser"
	"github.com/minilang-dev/minilang/printer"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a minilang source file and print its AST",
	Args:  cobra.ExactArgs(1),
	RunE:  parseFile,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "emit the top-level statement list as JSON")
}

func parseFile(_ *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return exitErrorf("reading %s: %w", args[0], err)
	}

	prog, err := parser.New(string(src)).Parse()
	if err != nil {
		return err
	}

	if parseJSON {
		doc, err := programJSON(prog)
		if err != nil {
			return err
		}
		fmt.Println(doc)
		return nil
	}
	fmt.Print(printer.Print(prog))
	return nil
}

// programJSON renders the top-level statement list as a JSON array of
// {kind, line, text} records, text being that statement's canonical
// rendering via printer.Print run on a single-statement block.
func programJSON(prog *parser.Block) (string, error) {
	doc := "[]"
	for i, stmt := range prog.Stmts {
		single := &parser.Block{Stmts: []parser.Stmt{stmt}, Ln: stmt.Line()}

		var err error
		doc, err = sjson.Set(doc, fmt.Sprintf("%d.kind", i), fmt.Sprintf("%T", stmt))
		if err != nil {
			return "", err
		}
		doc, err = sjson.Set(doc, fmt.Sprintf("%d.line", i), stmt.Line())
		if err != nil {
			return "", err
		}
		doc, err = sjson.Set(doc, fmt.Sprintf("%d.text", i), printer.Print(single))
		if err != nil {
			return "", err
		}
	}
	return doc, nil
}
