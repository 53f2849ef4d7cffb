// Package cli implements the line-oriented REPL: the human-facing
// surface over internal/engine's Facade, playing a two-player-or-bot
// game from the terminal. Grounded on cmd/mess/main.go for the
// board-printing shape and internal/engine/cmd/d.go for treating the
// position's own String() as the thing a command replies with.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mitchellh/colorstring"
	"github.com/mitchellh/go-wordwrap"

	"github.com/corvidae/bitchess/internal/engine"
)

const helpText = "Commands: move <from><to> (e.g. move e2e4), bot, undo, reset, board, help, quit. " +
	"Squares are algebraic, lowercase file then rank, e.g. e2."

// REPL reads one command per line from in and writes replies to out,
// driving a single Engine until in is exhausted or "quit" is read.
type REPL struct {
	Engine *engine.Engine
	in     *bufio.Scanner
	out    io.Writer
}

// New returns a REPL wired to a fresh Engine.
func New(in io.Reader, out io.Writer) *REPL {
	return &REPL{
		Engine: engine.New(),
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run drives the REPL loop to completion.
func (r *REPL) Run() {
	r.printBoard()
	r.prompt()
	for r.in.Scan() {
		line := strings.TrimSpace(r.in.Text())
		if line == "" {
			r.prompt()
			continue
		}
		if !r.dispatch(line) {
			return
		}
		r.prompt()
	}
}

func (r *REPL) dispatch(line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case "quit", "exit":
		r.say("[yellow]goodbye")
		return false
	case "help":
		fmt.Fprintln(r.out, wordwrap.WrapString(helpText, 72))
	case "board":
		r.printBoard()
	case "reset":
		r.Engine.ResetBoard()
		r.say("[green]board reset")
		r.printBoard()
	case "undo":
		if r.Engine.Undo() {
			r.say("[green]move undone")
		} else {
			r.say("[red]nothing to undo")
		}
		r.printBoard()
	case "bot":
		r.playBot()
	case "move":
		if len(fields) < 2 {
			r.say("[red]usage: move <from><to>")
			break
		}
		r.playMove(fields[1])
	default:
		r.say(fmt.Sprintf("[red]unrecognized command %q, try 'help'", fields[0]))
	}
	return true
}

func (r *REPL) playMove(coords string) {
	from, to, ok := parseCoords(coords)
	if !ok {
		r.say(fmt.Sprintf("[red]could not parse move %q", coords))
		return
	}
	if !r.Engine.PlayerMove(from[0], from[1], to[0], to[1]) {
		r.say("[red]illegal move")
		return
	}
	r.printBoard()
}

func (r *REPL) playBot() {
	m, ok := r.Engine.GenerateBotReply()
	if !ok {
		r.say("[yellow]the bot has no legal moves")
		return
	}
	r.say(fmt.Sprintf("[cyan]bot plays its %s to square %d", m.Piece.Kind, m.ToSquare()))
	r.printBoard()
}

func (r *REPL) printBoard() {
	fmt.Fprint(r.out, r.Engine.Position().String())
	r.say(fmt.Sprintf("[blue]%s to move", r.Engine.SideToMove()))
}

func (r *REPL) prompt() {
	fmt.Fprint(r.out, colorstring.Color("[default]> "))
}

// say writes a colorstring-formatted line. Known color tags become ANSI
// escape codes whether or not out interprets them; nothing is stripped.
func (r *REPL) say(v string) {
	fmt.Fprintln(r.out, colorstring.Color(v))
}

// parseCoords parses a four-character algebraic move like "e2e4" into
// [rank,file] pairs, zero-indexed.
func parseCoords(s string) (from, to [2]int, ok bool) {
	if len(s) != 4 {
		return from, to, false
	}
	from, ok1 := parseSquare(s[0:2])
	to, ok2 := parseSquare(s[2:4])
	return from, to, ok1 && ok2
}

func parseSquare(s string) ([2]int, bool) {
	if len(s) != 2 {
		return [2]int{}, false
	}
	file := s[0] - 'a'
	if file > 7 {
		return [2]int{}, false
	}
	rank, err := strconv.Atoi(string(s[1]))
	if err != nil || rank < 1 || rank > 8 {
		return [2]int{}, false
	}
	return [2]int{rank - 1, int(file)}, true
}
