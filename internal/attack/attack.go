// Package attack implements square-attack detection: "is square S
// attacked by color C?", used for check tests and evaluator threat
// terms, per spec.md §4.4.
package attack

import (
	"github.com/corvidae/bitchess/internal/piece"
	"github.com/corvidae/bitchess/internal/position"
	"github.com/corvidae/bitchess/internal/square"
)

var knightOffsets = [8]int{-17, -15, -10, -6, 6, 10, 15, 17}
var kingOffsets = [8]int{1, -1, 8, -8, 7, 9, -7, -9}
var bishopDirs = [4]int{7, 9, -7, -9}
var rookDirs = [4]int{1, -1, 8, -8}

// IsSquareAttacked reports whether any piece of byColor could capture a
// piece standing on sq, checking in the order spec.md §4.4 lays out:
// pawns, knights, king, diagonal rays, orthogonal rays.
func IsSquareAttacked(pos *position.Position, sq int, byColor piece.Color) bool {
	if pawnAttacks(pos, sq, byColor) {
		return true
	}
	if knightAttacks(pos, sq, byColor) {
		return true
	}
	if kingAttacks(pos, sq, byColor) {
		return true
	}
	if rayAttacks(pos, sq, byColor, bishopDirs[:], true, piece.Bishop) {
		return true
	}
	return rayAttacks(pos, sq, byColor, rookDirs[:], false, piece.Rook)
}

// IsInCheck reports whether color c's king is attacked by the opposing
// color.
func IsInCheck(pos *position.Position, c piece.Color) bool {
	king := pos.Pieces[c][piece.King]
	if king == 0 {
		return false
	}
	return IsSquareAttacked(pos, king.FirstOne(), c.Other())
}

func pawnAttacks(pos *position.Position, sq int, byColor piece.Color) bool {
	pawns := pos.Pieces[byColor][piece.Pawn]

	var offsets [2]int
	if byColor == piece.White {
		offsets = [2]int{-7, -9}
	} else {
		offsets = [2]int{7, 9}
	}
	for _, off := range offsets {
		from := sq + off
		if !square.OnBoard(from) {
			continue
		}
		if abs(square.File(from)-square.File(sq)) != 1 {
			continue
		}
		if pawns.IsSet(from) {
			return true
		}
	}
	return false
}

func knightAttacks(pos *position.Position, sq int, byColor piece.Color) bool {
	knights := pos.Pieces[byColor][piece.Knight]
	for _, off := range knightOffsets {
		from := sq + off
		if !square.OnBoard(from) {
			continue
		}
		dr := abs(square.Rank(from) - square.Rank(sq))
		df := abs(square.File(from) - square.File(sq))
		if !((dr == 1 && df == 2) || (dr == 2 && df == 1)) {
			continue
		}
		if knights.IsSet(from) {
			return true
		}
	}
	return false
}

func kingAttacks(pos *position.Position, sq int, byColor piece.Color) bool {
	king := pos.Pieces[byColor][piece.King]
	for _, off := range kingOffsets {
		from := sq + off
		if !square.OnBoard(from) {
			continue
		}
		dr := abs(square.Rank(from) - square.Rank(sq))
		df := abs(square.File(from) - square.File(sq))
		if dr > 1 || df > 1 {
			continue
		}
		if king.IsSet(from) {
			return true
		}
	}
	return false
}

// rayAttacks walks each direction from sq; the first occupied square on
// a ray is an attacker of kind (or the enemy queen) iff it belongs to
// byColor, otherwise it blocks the ray.
func rayAttacks(pos *position.Position, sq int, byColor piece.Color, dirs []int, diagonal bool, kind piece.Kind) bool {
	startRank, startFile := square.Rank(sq), square.File(sq)
	sliders := pos.Pieces[byColor][kind] | pos.Pieces[byColor][piece.Queen]

	for _, dir := range dirs {
		target := sq + dir
		for square.OnBoard(target) {
			tr, tf := square.Rank(target), square.File(target)

			if diagonal {
				if abs(tr-startRank) != abs(tf-startFile) {
					break
				}
			} else {
				if (dir == 1 || dir == -1) && tr != startRank {
					break
				}
				if (dir == 8 || dir == -8) && tf != startFile {
					break
				}
			}

			if pos.Occupied.IsSet(target) {
				if sliders.IsSet(target) {
					return true
				}
				break // any other occupant blocks the ray
			}
			target += dir
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
