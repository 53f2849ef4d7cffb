// Package engine is the Facade spec.md §4.9 describes: the only
// surface the CLI, TUI and tuner drive, wrapping the game/move-gen/
// legality/search stack behind four calls.
package engine

import (
	"github.com/corvidae/bitchess/internal/game"
	"github.com/corvidae/bitchess/internal/legality"
	"github.com/corvidae/bitchess/internal/move"
	"github.com/corvidae/bitchess/internal/movegen"
	"github.com/corvidae/bitchess/internal/piece"
	"github.com/corvidae/bitchess/internal/search"
	"github.com/corvidae/bitchess/internal/square"
)

// Engine is the Facade: everything outside this package talks to a
// game through these four operations. Side-to-move belongs here, not
// to game.Game or search — make/unmake and search never touch it.
type Engine struct {
	g *game.Game
}

// New returns an Engine set up for a fresh game, White to move.
func New() *Engine {
	return &Engine{g: game.New()}
}

// Position exposes the underlying position for read-only callers (the
// CLI's board renderer, the TUI's spectator view).
func (e *Engine) Position() interface {
	String() string
} {
	return e.g.Pos
}

// SideToMove reports which color is on the move.
func (e *Engine) SideToMove() piece.Color {
	if e.g.Pos.WhitesTurn {
		return piece.White
	}
	return piece.Black
}

// PlayerMove attempts to play the move from (fromRank,fromFile) to
// (toRank,toFile) for whichever color currently has the move. It
// returns false — and leaves the position untouched — if no legal
// move matches those squares, per spec.md §4.9.
func (e *Engine) PlayerMove(fromRank, fromFile, toRank, toFile int) bool {
	from := square.New(fromRank, fromFile)
	to := square.New(toRank, toFile)
	color := e.SideToMove()

	if c, ok := e.g.Pos.ColorAt(from); !ok || c != color {
		return false
	}

	pseudo := movegen.ForPieceAt(e.g.Pos, from)
	legal := legality.Filter(e.g.Pos, e.g, pseudo, color)

	for _, m := range legal {
		if m.FromSquare() == from && m.ToSquare() == to {
			e.g.Make(m)
			e.g.Pos.WhitesTurn = !e.g.Pos.WhitesTurn
			return true
		}
	}
	return false
}

// GenerateBotReply searches a fixed-depth reply for whichever color
// currently has the move and plays it. It returns the move played, or
// false if that color has no legal moves (checkmate or stalemate).
func (e *Engine) GenerateBotReply() (move.Record, bool) {
	color := e.SideToMove()
	m, ok := search.Root(e.g.Pos, e.g, color)
	if !ok {
		return move.Record{}, false
	}
	e.g.Make(m)
	e.g.Pos.WhitesTurn = !e.g.Pos.WhitesTurn
	return m, true
}

// ResetBoard restores the standard opening and clears history.
func (e *Engine) ResetBoard() {
	e.g = game.New()
}

// Undo reverts the most recently played move, human or bot, and
// restores the side to move to whoever made it. It is a no-op if no
// moves have been made.
func (e *Engine) Undo() bool {
	if len(e.g.History) == 0 {
		return false
	}
	e.g.Unmake()
	e.g.Pos.WhitesTurn = !e.g.Pos.WhitesTurn
	return true
}
