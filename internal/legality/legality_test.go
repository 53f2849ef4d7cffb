package legality_test

import (
	"testing"

	"github.com/corvidae/bitchess/internal/game"
	"github.com/corvidae/bitchess/internal/legality"
	"github.com/corvidae/bitchess/internal/movegen"
	"github.com/corvidae/bitchess/internal/piece"
	"github.com/corvidae/bitchess/internal/position"
)

func TestFilterKeepsAllLegalMovesFromOpening(t *testing.T) {
	g := game.New()
	pseudo := movegen.ForColor(g.Pos, piece.White)
	legal := legality.Filter(g.Pos, g, pseudo, piece.White)

	// No move from the opening position can expose White's own king,
	// so legality filtering should be a no-op here.
	if len(legal) != len(pseudo) {
		t.Fatalf("expected all %d pseudo-legal opening moves to be legal, got %d", len(pseudo), len(legal))
	}
}

func TestFilterRejectsMoveThatExposesKing(t *testing.T) {
	p := &position.Position{}
	p.BitboardFor(piece.King, piece.White).Set(4)  // e1
	p.BitboardFor(piece.Rook, piece.White).Set(12) // e2, pinned
	p.BitboardFor(piece.Rook, piece.Black).Set(60) // e8
	p.UpdateOccupancy()

	g := &game.Game{Pos: p}
	pseudo := movegen.ForPieceAt(p, 12) // the pinned rook's own moves
	legal := legality.Filter(p, g, pseudo, piece.White)

	for _, m := range legal {
		if m.ToSquare() != 20 && m.ToSquare() != 28 && m.ToSquare() != 36 &&
			m.ToSquare() != 44 && m.ToSquare() != 52 && m.ToSquare() != 60 {
			t.Fatalf("pinned rook should only be able to move along the e-file, got move to %d", m.ToSquare())
		}
	}
	if len(legal) == 0 {
		t.Fatalf("expected the pinned rook to retain at least its along-the-pin moves")
	}
}
