// Package eval implements static position scoring: material plus
// piece-square tables, and a fuller threat-aware variant layered on top,
// per spec.md §4.7.
package eval

import (
	"github.com/corvidae/bitchess/internal/attack"
	"github.com/corvidae/bitchess/internal/movegen"
	"github.com/corvidae/bitchess/internal/piece"
	"github.com/corvidae/bitchess/internal/position"
	"github.com/corvidae/bitchess/internal/square"
)

// Quick returns the static score of pos from Black's point of view (the
// engine plays Black). For every occupied square it adds material+PST
// weighted 4x when the piece is Black's, then unconditionally subtracts
// the piece's plain material value again regardless of color — a
// faithful reproduction of the source's own double-counting of its own
// pieces (spec.md §9 Design Notes flags this as a known quirk, not a
// bug to silently fix). A flat piece-count term, weighted 2, is added
// last.
func Quick(pos *position.Position) int {
	score := 0
	friendlies, enemies := 0, 0

	for sq := 0; sq < square.N; sq++ {
		k := pos.PieceAt(sq)
		if k == piece.None {
			continue
		}
		c, _ := pos.ColorAt(sq)

		v := Material[k] + PST(k, sq, c)
		if c == piece.Black {
			score += v * 4
			friendlies++
		} else {
			enemies++
		}
		score -= Material[k]
	}

	score += 2 * (friendlies - enemies)
	return score
}

// Full layers a threat/support penalty for Black's own hanging pieces
// on top of Quick, per spec.md §4.7: a piece under attack with no
// recapture loses 2x its material, or 4x if the cheapest attacker
// costs more than 13 above it; a
// defended piece only loses 2x when that same delta still clears a
// slightly higher bar. This is the evaluator the search actually calls
// at leaf nodes, since it is the only evaluator wired to the Facade
// (spec.md §9 open question, resolved in SPEC_FULL.md §4).
func Full(pos *position.Position) int {
	score := Quick(pos)

	for sq := 0; sq < square.N; sq++ {
		k := pos.PieceAt(sq)
		if k == piece.None || k == piece.King {
			continue
		}
		c, _ := pos.ColorAt(sq)
		if c != piece.Black {
			continue
		}

		if !attack.IsSquareAttacked(pos, sq, piece.White) {
			continue
		}
		supported := attack.IsSquareAttacked(pos, sq, piece.Black)

		cheapest, found := cheapestAttackerMaterial(pos, sq, piece.White)
		delta := 0
		if found {
			delta = cheapest - Material[k]
		}

		switch {
		case !supported && found && delta > 13:
			score -= 4 * Material[k]
		case !supported:
			score -= 2 * Material[k]
		case found && delta > 12:
			score -= 2 * Material[k]
		}
	}

	return score
}

// cheapestAttackerMaterial finds the lowest material value among
// byColor's pieces that can capture on sq, by reusing the same move
// generator the rest of the engine does rather than duplicating its
// geometry.
func cheapestAttackerMaterial(pos *position.Position, sq int, byColor piece.Color) (int, bool) {
	best := 0
	found := false
	for _, m := range movegen.ForColor(pos, byColor) {
		if m.ToSquare() != sq || !m.HasCapture {
			continue
		}
		v := Material[m.Piece.Kind]
		if !found || v < best {
			best = v
			found = true
		}
	}
	return best, found
}
