package move_test

import (
	"testing"

	"github.com/corvidae/bitchess/internal/bitboard"
	"github.com/corvidae/bitchess/internal/move"
	"github.com/corvidae/bitchess/internal/piece"
)

func TestFromSquareToSquare(t *testing.T) {
	r := move.Record{From: bitboard.Of(12), To: bitboard.Of(28)}
	if r.FromSquare() != 12 {
		t.Fatalf("expected FromSquare() == 12, got %d", r.FromSquare())
	}
	if r.ToSquare() != 28 {
		t.Fatalf("expected ToSquare() == 28, got %d", r.ToSquare())
	}
}

func TestSortByScoreDescending(t *testing.T) {
	list := move.List{
		{Piece: piece.Piece{Kind: piece.Pawn}, Score: -100},
		{Piece: piece.Piece{Kind: piece.Queen}, Score: 100},
		{Piece: piece.Piece{Kind: piece.Rook}, Score: 0},
	}
	list.SortByScoreDescending()

	want := []int{100, 0, -100}
	for i, w := range want {
		if list[i].Score != w {
			t.Fatalf("position %d: got score %d, want %d", i, list[i].Score, w)
		}
	}
}
