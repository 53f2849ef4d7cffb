// Package move implements the MoveRecord shape used across generation,
// legality filtering, make/unmake, and search.
package move

import (
	"sort"

	"github.com/corvidae/bitchess/internal/bitboard"
	"github.com/corvidae/bitchess/internal/piece"
)

// Record captures everything make/unmake needs to apply and undo a
// single move. It addresses bitboard slots by (Kind, Color) tag rather
// than by raw pointer, per spec.md §9 ("Pointer-into-position
// patterns") — this removes the aliasing between a Record and a
// Position that the original source relied on.
type Record struct {
	Piece piece.Piece

	From bitboard.Board // exactly one bit set
	To   bitboard.Board // exactly one bit set

	Captured   piece.Piece
	HasCapture bool

	Castle      bool
	CastleColor piece.Color
	KingFrom    bitboard.Board
	KingTo      bitboard.Board

	// Score is populated by move ordering / search bookkeeping and is
	// never part of position state.
	Score int
}

// FromSquare and ToSquare decode the single-bit From/To bitboards back
// into square indices, for callers that want integer squares.
func (r Record) FromSquare() int { return r.From.FirstOne() }
func (r Record) ToSquare() int   { return r.To.FirstOne() }

// List is an ordered collection of move records.
type List []Record

// SortByScoreDescending sorts the list in place, highest Score first.
// This is the only ordering heuristic the search uses (spec.md §4.8).
func (l List) SortByScoreDescending() {
	sort.SliceStable(l, func(i, j int) bool {
		return l[i].Score > l[j].Score
	})
}
