package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minilang-dev/minilang/parser"
	"github.com/minilang-dev/minilang/printer"
)

var (
	fmtWrite bool
	fmtList  bool
	fmtDiff  bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Reformat minilang source files in canonical form",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write result to the source file instead of stdout")
	fmtCmd.Flags().BoolVarP(&fmtList, "list", "l", false, "list files whose formatting would change")
	fmtCmd.Flags().BoolVarP(&fmtDiff, "diff", "d", false, "show lines that would change")
}

func runFmt(_ *cobra.Command, args []string) error {
	if fmtWrite && fmtList {
		return exitErrorf("cannot use -w and -l together")
	}

	hadErrors := false
	for _, path := range args {
		if err := formatFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			hadErrors = true
		}
	}
	if hadErrors {
		return exitErrorf("formatting failed for one or more files")
	}
	return nil
}

func formatFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	prog, err := parser.New(string(src)).Parse()
	if err != nil {
		return err
	}
	formatted := printer.Print(prog)
	changed := formatted != string(src)

	switch {
	case fmtList:
		if changed {
			fmt.Println(path)
		}
	case fmtDiff:
		if changed {
			printDiff(path, string(src), formatted)
		}
	case fmtWrite:
		if changed {
			return os.WriteFile(path, []byte(formatted), 0o644)
		}
	default:
		fmt.Print(formatted)
	}
	return nil
}

func printDiff(path, original, formatted string) {
	origLines := bytes.Split([]byte(original), []byte("\n"))
	newLines := bytes.Split([]byte(formatted), []byte("\n"))

	max := len(origLines)
	if len(newLines) > max {
		max = len(newLines)
	}

	fmt.Printf("--- %s\n", path)
	for i := 0; i < max; i++ {
		var o, n []byte
		if i < len(origLines) {
			o = origLines[i]
		}
		if i < len(newLines) {
			n = newLines[i]
		}
		if !bytes.Equal(o, n) {
			if len(o) > 0 {
				fmt.Printf("- %s\n", o)
			}
			if len(n) > 0 {
				fmt.Printf("+ %s\n", n)
			}
		}
	}
}
