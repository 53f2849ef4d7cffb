package main

import (
	"flag"
	"fmt"
	"os"

	ui "github.com/gizak/termui/v3"

	"github.com/corvidae/bitchess/internal/cli"
	"github.com/corvidae/bitchess/internal/engine"
	"github.com/corvidae/bitchess/internal/tui"
)

func main() {
	spectate := flag.Bool("tui", false, "watch a bot-vs-bot game in a terminal spectator view instead of the REPL")
	flag.Parse()

	if *spectate {
		runTUI()
		return
	}
	runREPL()
}

func runREPL() {
	cli.New(os.Stdin, os.Stdout).Run()
}

func runTUI() {
	if err := ui.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "bitchess: failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer ui.Close()

	tui.New(engine.New()).Run()
}
