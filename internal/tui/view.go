// Package tui implements a terminal spectator view over an Engine: a
// small termui/v3 UI that renders the board and steps the bot forward
// on keypress, for watching bot-vs-bot games play out. Grounded on
// internal/engine/cmd/d.go's idiom of treating the position's own
// String() as the thing a command displays — this just renders that
// same string inside a widget instead of printing it to stdout.
package tui

import (
	"fmt"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"

	"github.com/corvidae/bitchess/internal/engine"
)

// View drives a termui event loop over an Engine until the user quits.
type View struct {
	Engine *engine.Engine

	board  *widgets.Paragraph
	status *widgets.Paragraph
}

// New wires a View to an existing Engine. Call Run to start the event
// loop; ui.Init/ui.Close are the caller's responsibility so tests and
// callers that embed the view in a larger UI stay in control of the
// terminal.
func New(e *engine.Engine) *View {
	board := widgets.NewParagraph()
	board.Title = "bitchess"
	board.SetRect(0, 0, 26, 11)

	status := widgets.NewParagraph()
	status.Title = "status"
	status.SetRect(0, 11, 26, 15)

	return &View{Engine: e, board: board, status: status}
}

// Run starts the termui event loop: "n" steps the bot one reply
// forward, "r" resets the board, "q" or Ctrl-C quits. It assumes
// ui.Init has already succeeded.
func (v *View) Run() {
	v.render()
	events := ui.PollEvents()
	for e := range events {
		switch e.ID {
		case "q", "<C-c>":
			return
		case "n":
			v.step()
		case "r":
			v.Engine.ResetBoard()
			v.render()
		}
	}
}

func (v *View) step() {
	m, ok := v.Engine.GenerateBotReply()
	if !ok {
		v.status.Text = "no legal moves — game over"
		v.render()
		return
	}
	v.status.Text = fmt.Sprintf("played %s to square %d", m.Piece.Kind, m.ToSquare())
	v.render()
}

func (v *View) render() {
	v.board.Text = v.Engine.Position().String()
	if v.status.Text == "" {
		v.status.Text = idleStatus(v.Engine)
	}
	ui.Render(v.board, v.status)
}

// idleStatus is the status line shown before anything has happened
// yet, factored out so it can be unit tested without a real terminal.
func idleStatus(e *engine.Engine) string {
	return fmt.Sprintf("%s to move — n: step, r: reset, q: quit", e.SideToMove())
}
