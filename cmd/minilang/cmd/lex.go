package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"

	"github.com/minilang-dev/minilang/lexer"
)

var lexJSON bool

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a minilang source file and print its token stream",
	Args:  cobra.ExactArgs(1),
	RunE:  lexFile,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().BoolVar(&lexJSON, "json", false, "emit the token stream as JSON")
}

func lexFile(_ *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return exitErrorf("reading %s: %w", args[0], err)
	}

	lex := lexer.New(string(src))

	if lexJSON {
		doc, err := tokensJSON(lex)
		if err != nil {
			return err
		}
		fmt.Println(doc)
		return nil
	}
	return printTokens(lex)
}

func printTokens(lex *lexer.Lexer) error {
	for {
		tok, err := lex.Next()
		if err != nil {
			return err
		}
		fmt.Printf("%-10s %-12q @%d\n", tok.Type, tok.Literal, tok.Line)
		if tok.Type == lexer.EOF {
			return nil
		}
	}
}

// tokensJSON drains lex and assembles its token stream into a JSON array
// of {type, literal, line} records, one sjson.Set per field per token.
func tokensJSON(lex *lexer.Lexer) (string, error) {
	doc := "[]"
	i := 0
	for {
		tok, err := lex.Next()
		if err != nil {
			return "", err
		}

		var setErr error
		doc, setErr = sjson.Set(doc, fmt.Sprintf("%d.type", i), string(tok.Type))
		if setErr != nil {
			return "", setErr
		}
		doc, setErr = sjson.Set(doc, fmt.Sprintf("%d.literal", i), tok.Literal)
		if setErr != nil {
			return "", setErr
		}
		doc, setErr = sjson.Set(doc, fmt.Sprintf("%d.line", i), tok.Line)
		if setErr != nil {
			return "", setErr
		}
		i++

		if tok.Type == lexer.EOF {
			return doc, nil
		}
	}
}
