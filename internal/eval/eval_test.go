package eval

import (
	"testing"

	"github.com/corvidae/bitchess/internal/piece"
	"github.com/corvidae/bitchess/internal/position"
)

func TestQuickBareKingsIsZero(t *testing.T) {
	p := &position.Position{}
	p.BitboardFor(piece.King, piece.White).Set(4)
	p.BitboardFor(piece.King, piece.Black).Set(60)
	p.UpdateOccupancy()

	if got := Quick(p); got != 0 {
		t.Fatalf("expected two bare, unscored kings to net to 0, got %d", got)
	}
}

// The double-count-own-pieces quirk (spec.md §9) means Quick has no
// reason to land on 0 at the standard opening even though the position
// itself is materially and positionally symmetric between the colors:
// Black's pieces are counted twice (once at 4x, once subtracted back
// out) while White's are only ever subtracted, so the two sides do not
// cancel.
func TestQuickOpeningIsNotSymmetric(t *testing.T) {
	p := position.New()
	if got := Quick(p); got == 0 {
		t.Fatalf("expected the double-count quirk to bias the opening score away from 0, got %d", got)
	}
}

func TestQuickRewardsBlackMaterialAdvantage(t *testing.T) {
	p := &position.Position{}
	p.BitboardFor(piece.King, piece.White).Set(4)
	p.BitboardFor(piece.King, piece.Black).Set(60)
	p.BitboardFor(piece.Queen, piece.Black).Set(59)
	p.UpdateOccupancy()

	if got := Quick(p); got <= 0 {
		t.Fatalf("expected a Black queen up to score positive for Black, got %d", got)
	}
}

func TestFullPenalizesHangingBlackPiece(t *testing.T) {
	p := &position.Position{}
	p.BitboardFor(piece.King, piece.White).Set(0)  // a1
	p.BitboardFor(piece.King, piece.Black).Set(63) // h8
	p.BitboardFor(piece.Queen, piece.Black).Set(28) // e4, undefended
	p.BitboardFor(piece.Rook, piece.White).Set(4)   // e1, attacks e4
	p.UpdateOccupancy()

	quick := Quick(p)
	full := Full(p)
	if full >= quick {
		t.Fatalf("expected Full to penalize the hanging queen below Quick's score: quick=%d full=%d", quick, full)
	}
}

func TestFullLeavesSupportedPieceAlone(t *testing.T) {
	p := &position.Position{}
	p.BitboardFor(piece.King, piece.White).Set(0)
	p.BitboardFor(piece.King, piece.Black).Set(63)
	p.BitboardFor(piece.Rook, piece.Black).Set(28) // e4, defended by the pawn on d5
	p.BitboardFor(piece.Pawn, piece.Black).Set(35) // d5 supports e4
	p.BitboardFor(piece.Rook, piece.White).Set(4)  // e1, attacks e4 with an even trade
	p.UpdateOccupancy()

	quick := Quick(p)
	full := Full(p)
	if full != quick {
		t.Fatalf("expected an evenly-defended rook to incur no penalty: quick=%d full=%d", quick, full)
	}
}
