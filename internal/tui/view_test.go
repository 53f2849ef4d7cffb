package tui

import (
	"strings"
	"testing"

	"github.com/corvidae/bitchess/internal/engine"
)

func TestIdleStatusNamesTheSideToMove(t *testing.T) {
	e := engine.New()
	if got := idleStatus(e); !strings.Contains(got, "white") {
		t.Fatalf("expected the idle status to name white as the side to move, got %q", got)
	}
}
