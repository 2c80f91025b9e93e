package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/minilang-dev/minilang"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a minilang source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runFile,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runFile(_ *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return exitErrorf("reading %s: %w", args[0], err)
	}

	if err := minilang.Run(string(src), os.Stdout); err != nil {
		return exitErrorf("%s: %w", args[0], err)
	}
	return nil
}
