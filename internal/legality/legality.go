// Package legality filters pseudo-legal moves down to legal ones: the
// sole legality gate beyond generation, per spec.md §4.6.
package legality

import (
	"github.com/corvidae/bitchess/internal/attack"
	"github.com/corvidae/bitchess/internal/move"
	"github.com/corvidae/bitchess/internal/piece"
	"github.com/corvidae/bitchess/internal/position"
)

// MakeUnmake is the minimal interface legality needs to simulate a
// move: apply it, observe check, then undo it exactly.
type MakeUnmake interface {
	Make(r move.Record)
	Unmake()
}

// Filter keeps only the candidates that, once made, do not leave
// color's king attacked. It makes and unmakes each candidate in turn on
// pos, via mu, so pos must be left bit-identical once Filter returns.
func Filter(pos *position.Position, mu MakeUnmake, candidates move.List, color piece.Color) move.List {
	var legal move.List
	for _, m := range candidates {
		mu.Make(m)
		inCheck := attack.IsInCheck(pos, color)
		mu.Unmake()
		if !inCheck {
			legal = append(legal, m)
		}
	}
	return legal
}
