// Package cmd wires minilang's pipeline stages up as cobra subcommands,
// grounded directly on CWBudde-go-dws's cmd/dwscript/cmd layout: one file
// per subcommand, a shared rootCmd, package-level flag variables bound in
// each init().
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "minilang",
	Short: "minilang interpreter",
	Long: `minilang is a small dynamically-typed scripting language.

This CLI exposes the interpreter's pipeline stages directly:
  minilang run file.mini     execute a program
  minilang lex file.mini     dump its token stream
  minilang parse file.mini   dump its AST
  minilang fmt file.mini     re-print it in canonical form
  minilang repl              start an interactive session`,
	Version: "0.1.0",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitErrorf(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}
