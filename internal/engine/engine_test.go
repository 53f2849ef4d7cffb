package engine_test

import (
	"testing"

	"github.com/corvidae/bitchess/internal/engine"
	"github.com/corvidae/bitchess/internal/piece"
)

func TestPlayerMovePlaysALegalPawnPush(t *testing.T) {
	e := engine.New()
	if e.SideToMove() != piece.White {
		t.Fatalf("expected White to move first")
	}
	if !e.PlayerMove(1, 4, 3, 4) { // e2-e4
		t.Fatalf("expected e2-e4 to be a legal opening move")
	}
	if e.SideToMove() != piece.Black {
		t.Fatalf("expected the side to move to flip to Black after a played move")
	}
}

func TestPlayerMoveRejectsIllegalMove(t *testing.T) {
	e := engine.New()
	if e.PlayerMove(1, 4, 4, 4) { // e2-e5, too far for an opening push
		t.Fatalf("expected an illegal pawn push to be rejected")
	}
	if e.SideToMove() != piece.White {
		t.Fatalf("a rejected move must not change the side to move")
	}
}

func TestPlayerMoveRejectsWrongColorPiece(t *testing.T) {
	e := engine.New()
	if e.PlayerMove(6, 4, 4, 4) { // e7-e5, a Black pawn, with White to move
		t.Fatalf("expected moving the opponent's piece to be rejected")
	}
	if e.SideToMove() != piece.White {
		t.Fatalf("a rejected move must not change the side to move")
	}
}

func TestGenerateBotReplyPlaysAMove(t *testing.T) {
	e := engine.New()
	if !e.PlayerMove(1, 4, 3, 4) { // e2-e4
		t.Fatalf("setup move should be legal")
	}
	m, ok := e.GenerateBotReply()
	if !ok {
		t.Fatalf("expected the bot to find a reply from the opening")
	}
	if m.Piece.Color != piece.Black {
		t.Fatalf("expected the bot's reply to belong to Black")
	}
	if e.SideToMove() != piece.White {
		t.Fatalf("expected the side to move to flip back to White after the bot's reply")
	}
}

func TestUndoReversesTheLastMove(t *testing.T) {
	e := engine.New()
	e.PlayerMove(1, 4, 3, 4)
	if !e.Undo() {
		t.Fatalf("expected Undo to succeed after a played move")
	}
	if e.SideToMove() != piece.White {
		t.Fatalf("expected Undo to restore White to move")
	}
	if e.Undo() {
		t.Fatalf("expected Undo on an empty history to report false")
	}
}

func TestResetBoardRestoresTheOpening(t *testing.T) {
	e := engine.New()
	e.PlayerMove(1, 4, 3, 4)
	e.ResetBoard()
	if e.SideToMove() != piece.White {
		t.Fatalf("expected ResetBoard to restore White to move")
	}
}
