// Package game implements make/unmake over a position and the move
// history stack it relies on (spec.md §4.5 MakeUnmake, §3 MoveHistory).
package game

import (
	"github.com/corvidae/bitchess/internal/move"
	"github.com/corvidae/bitchess/internal/piece"
	"github.com/corvidae/bitchess/internal/position"
)

// Material values used to augment a move's Score with the value of
// whatever it captured, for move ordering (spec.md §4.5). King is
// deliberately absent — it is never a legal capture target.
var Material = map[piece.Kind]int{
	piece.Pawn:   10,
	piece.Knight: 28,
	piece.Bishop: 28,
	piece.Rook:   40,
	piece.Queen:  70,
}

// Game pairs a Position with the move history stack that make/unmake
// shares across human moves and search recursion.
type Game struct {
	Pos     *position.Position
	History []move.Record
}

// New returns a Game starting from the standard opening.
func New() *Game {
	return &Game{Pos: position.New()}
}

// Make pushes r onto the history stack and applies it. Side-to-move is
// never touched here — only the Facade toggles it on externally visible
// moves (spec.md §4.5).
func (g *Game) Make(r move.Record) {
	r.Score = captureBonus(r)
	g.History = append(g.History, r)

	if r.Castle {
		rookBB := g.Pos.BitboardFor(piece.Rook, r.Piece.Color)
		*rookBB &^= r.From
		*rookBB |= r.To

		kingBB := g.Pos.BitboardFor(piece.King, r.CastleColor)
		*kingBB &^= r.KingFrom
		*kingBB |= r.KingTo
	} else {
		if r.HasCapture {
			capturedBB := g.Pos.BitboardFor(r.Captured.Kind, r.Captured.Color)
			*capturedBB &^= r.To
		}
		movingBB := g.Pos.BitboardFor(r.Piece.Kind, r.Piece.Color)
		*movingBB &^= r.From
		*movingBB |= r.To
	}

	g.Pos.UpdateOccupancy()
}

func captureBonus(r move.Record) int {
	if !r.HasCapture {
		return r.Score
	}
	return r.Score + Material[r.Captured.Kind]
}

// Unmake pops the top of the history stack and inverts Make exactly.
// It is the caller's responsibility to only call Unmake when the stack
// is non-empty and the last make/unmake pair is properly nested.
func (g *Game) Unmake() {
	n := len(g.History)
	r := g.History[n-1]
	g.History = g.History[:n-1]

	if r.Castle {
		kingBB := g.Pos.BitboardFor(piece.King, r.CastleColor)
		*kingBB &^= r.KingTo
		*kingBB |= r.KingFrom

		rookBB := g.Pos.BitboardFor(piece.Rook, r.Piece.Color)
		*rookBB &^= r.To
		*rookBB |= r.From
	} else {
		movingBB := g.Pos.BitboardFor(r.Piece.Kind, r.Piece.Color)
		*movingBB &^= r.To
		*movingBB |= r.From

		if r.HasCapture {
			capturedBB := g.Pos.BitboardFor(r.Captured.Kind, r.Captured.Color)
			*capturedBB |= r.To
		}
	}

	g.Pos.UpdateOccupancy()
}
