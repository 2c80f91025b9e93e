package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/minilang-dev/minilang/config"
	"github.com/minilang-dev/minilang/repl"
)

const (
	banner  = "minilang"
	version = "0.1.0"
	author  = "minilang-dev"
	license = "MIT"
	line    = "----------------------------------------------------------------"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive minilang session",
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	r := repl.NewRepl(banner, version, author, line, license, cfg.Prompt)
	r.HistoryFile = cfg.HistoryFile
	switch cfg.Color {
	case config.ColorOn:
		r.Color = true
	case config.ColorOff:
		r.Color = false
	default:
		r.Color = term.IsTerminal(int(os.Stdout.Fd()))
	}

	return r.Start(os.Stdout)
}
