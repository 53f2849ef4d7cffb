package search_test

import (
	"testing"

	"github.com/corvidae/bitchess/internal/game"
	"github.com/corvidae/bitchess/internal/piece"
	"github.com/corvidae/bitchess/internal/position"
	"github.com/corvidae/bitchess/internal/search"
)

func TestRootFindsAMoveFromTheOpening(t *testing.T) {
	g := game.New()
	g.Pos.WhitesTurn = false // Black to move, as the engine always searches its own reply

	m, ok := search.Root(g.Pos, g, piece.Black)
	if !ok {
		t.Fatalf("expected a legal move from the opening position")
	}
	if m.Piece.Color != piece.Black {
		t.Fatalf("expected the root move to belong to Black, got %v", m.Piece.Color)
	}
}

func TestRootReturnsFalseWithNoLegalMoves(t *testing.T) {
	// Black king boxed in and checkmated by a white queen and rook.
	p := &position.Position{}
	p.BitboardFor(piece.King, piece.Black).Set(63) // h8
	p.BitboardFor(piece.King, piece.White).Set(45) // f6
	p.BitboardFor(piece.Queen, piece.White).Set(masks("g7"))
	p.BitboardFor(piece.Rook, piece.White).Set(masks("h1"))
	p.UpdateOccupancy()

	g := &game.Game{Pos: p}
	_, ok := search.Root(p, g, piece.Black)
	if ok {
		t.Fatalf("expected no legal moves for a checkmated king")
	}
}

func masks(s string) int {
	file := int(s[0] - 'a')
	rank := int(s[1]-'0') - 1
	return rank*8 + file
}
