// Package movegen implements pseudo-legal move generation for all six
// piece kinds, plus the castling shortcut attached to rook generation,
// per spec.md §4.3. Anti-wrap and blocker rules are applied inline with
// each generator rather than factored into a shared ray-walker, matching
// the per-piece-kind generator shape of the source this spec distills
// (original_source/ChessBoard.cpp's generate*Moves family).
package movegen

import (
	"github.com/corvidae/bitchess/internal/bitboard"
	"github.com/corvidae/bitchess/internal/move"
	"github.com/corvidae/bitchess/internal/piece"
	"github.com/corvidae/bitchess/internal/position"
	"github.com/corvidae/bitchess/internal/square"
)

func bbOf(sq int) bitboard.Board {
	return bitboard.Of(sq)
}

var knightOffsets = [8]int{-17, -15, -10, -6, 6, 10, 15, 17}
var kingOffsets = [8]int{1, -1, 8, -8, 7, 9, -7, -9}
var bishopDirs = [4]int{7, 9, -7, -9}
var rookDirs = [4]int{1, -1, 8, -8}
var queenDirs = [8]int{7, 9, -7, -9, 1, -1, 8, -8}

// ForPieceAt generates the pseudo-legal moves of whichever piece
// occupies sq. Returns an empty list if sq is empty.
func ForPieceAt(pos *position.Position, sq int) move.List {
	k := pos.PieceAt(sq)
	if k == piece.None {
		return nil
	}
	c, _ := pos.ColorAt(sq)
	return forPiece(pos, sq, k, c)
}

// ForColor generates the pseudo-legal moves of every piece belonging to
// color c.
func ForColor(pos *position.Position, c piece.Color) move.List {
	var all move.List
	own := pos.WhitePieces
	if c == piece.Black {
		own = pos.BlackPieces
	}
	for sq := 0; sq < square.N; sq++ {
		if !own.IsSet(sq) {
			continue
		}
		k := pos.PieceAt(sq)
		all = append(all, forPiece(pos, sq, k, c)...)
	}
	return all
}

func forPiece(pos *position.Position, sq int, k piece.Kind, c piece.Color) move.List {
	switch k {
	case piece.Pawn:
		return pawnMoves(pos, sq, c)
	case piece.Knight:
		return knightMoves(pos, sq, c)
	case piece.Bishop:
		return rayMoves(pos, sq, c, piece.Bishop, bishopDirs[:], true)
	case piece.Rook:
		moves := rayMoves(pos, sq, c, piece.Rook, rookDirs[:], false)
		moves = append(moves, castlingShortcut(pos, sq, c)...)
		return moves
	case piece.Queen:
		return rayMoves(pos, sq, c, piece.Queen, queenDirs[:], false)
	case piece.King:
		return kingMoves(pos, sq, c)
	default:
		return nil
	}
}

func capturedAt(pos *position.Position, sq int, enemyColor piece.Color) (piece.Piece, bool) {
	if !pos.Occupied.IsSet(sq) {
		return piece.Piece{}, false
	}
	k := pos.PieceAt(sq)
	return piece.Piece{Kind: k, Color: enemyColor}, true
}

// enemyCapturedAt is like capturedAt but only reports a hit when the
// occupant actually belongs to the opposing color. Pawn captures need
// this distinction since an own-color occupant must make the diagonal
// step inadmissible rather than a (wrong) capture of one's own piece.
func enemyCapturedAt(pos *position.Position, sq int, enemyColor piece.Color) (piece.Piece, bool) {
	enemyOccupied := pos.BlackPieces
	if enemyColor == piece.White {
		enemyOccupied = pos.WhitePieces
	}
	if !enemyOccupied.IsSet(sq) {
		return piece.Piece{}, false
	}
	return piece.Piece{Kind: pos.PieceAt(sq), Color: enemyColor}, true
}

func pawnMoves(pos *position.Position, sq int, c piece.Color) move.List {
	var out move.List
	dir := 8
	startRank := 1
	if c == piece.Black {
		dir = -8
		startRank = 6
	}
	single := sq + dir
	if square.OnBoard(single) && !pos.IsOccupied(single) {
		out = append(out, move.Record{
			Piece: piece.Piece{Kind: piece.Pawn, Color: c},
			From:  bbOf(sq), To: bbOf(single),
		})

		if square.Rank(sq) == startRank {
			double := sq + 2*dir
			if !pos.IsOccupied(double) {
				out = append(out, move.Record{
					Piece: piece.Piece{Kind: piece.Pawn, Color: c},
					From:  bbOf(sq), To: bbOf(double),
				})
			}
		}
	}

	var attackOffsets [2]int
	if c == piece.White {
		attackOffsets = [2]int{7, 9}
	} else {
		attackOffsets = [2]int{-9, -7}
	}
	for _, off := range attackOffsets {
		target := sq + off
		if !square.OnBoard(target) {
			continue
		}
		if abs(square.File(target)-square.File(sq)) != 1 {
			continue
		}
		captured, ok := enemyCapturedAt(pos, target, c.Other())
		if !ok {
			continue
		}
		out = append(out, move.Record{
			Piece: piece.Piece{Kind: piece.Pawn, Color: c},
			From:  bbOf(sq), To: bbOf(target),
			Captured: captured, HasCapture: true,
		})
	}
	return out
}

func knightMoves(pos *position.Position, sq int, c piece.Color) move.List {
	var out move.List
	ownOccupied := pos.WhitePieces
	if c == piece.Black {
		ownOccupied = pos.BlackPieces
	}
	for _, off := range knightOffsets {
		target := sq + off
		if !square.OnBoard(target) {
			continue
		}
		dr := abs(square.Rank(target) - square.Rank(sq))
		df := abs(square.File(target) - square.File(sq))
		if !((dr == 1 && df == 2) || (dr == 2 && df == 1)) {
			continue
		}
		if ownOccupied.IsSet(target) {
			continue
		}
		captured, isCap := capturedAt(pos, target, c.Other())
		out = append(out, move.Record{
			Piece: piece.Piece{Kind: piece.Knight, Color: c},
			From:  bbOf(sq), To: bbOf(target),
			Captured: captured, HasCapture: isCap,
		})
	}
	return out
}

func kingMoves(pos *position.Position, sq int, c piece.Color) move.List {
	var out move.List
	ownOccupied := pos.WhitePieces
	if c == piece.Black {
		ownOccupied = pos.BlackPieces
	}
	for _, off := range kingOffsets {
		target := sq + off
		if !square.OnBoard(target) {
			continue
		}
		dr := abs(square.Rank(target) - square.Rank(sq))
		df := abs(square.File(target) - square.File(sq))
		if dr > 1 || df > 1 {
			continue // anti-wrap: a king step never spans more than one rank/file
		}
		if ownOccupied.IsSet(target) {
			continue
		}
		captured, isCap := capturedAt(pos, target, c.Other())
		out = append(out, move.Record{
			Piece: piece.Piece{Kind: piece.King, Color: c},
			From:  bbOf(sq), To: bbOf(target),
			Captured: captured, HasCapture: isCap,
		})
	}
	return out
}

// rayMoves walks each direction in dirs from sq until it goes off
// board, would wrap around a board edge (a diagonal step must keep
// equal rank and file distance, an orthogonal step its rank or file),
// hits an own piece (stop, no move) or an enemy piece (emit capture,
// stop). Directions ±7 and ±9 are always walked as diagonals, so the
// queen's mixed direction set is checked per direction.
func rayMoves(pos *position.Position, sq int, c piece.Color, k piece.Kind, dirs []int, diagonal bool) move.List {
	var out move.List
	ownOccupied := pos.WhitePieces
	if c == piece.Black {
		ownOccupied = pos.BlackPieces
	}
	startRank, startFile := square.Rank(sq), square.File(sq)

	for _, dir := range dirs {
		diag := diagonal || dir == 7 || dir == 9 || dir == -7 || dir == -9
		target := sq + dir
		for square.OnBoard(target) {
			tr, tf := square.Rank(target), square.File(target)
			dr, df := abs(tr-startRank), abs(tf-startFile)

			if diag {
				if dr != df {
					break
				}
			} else {
				// orthogonal ray: horizontal steps must stay on the
				// same rank, vertical steps on the same file
				if (dir == 1 || dir == -1) && tr != startRank {
					break
				}
				if (dir == 8 || dir == -8) && tf != startFile {
					break
				}
			}

			if ownOccupied.IsSet(target) {
				break
			}

			captured, isCap := capturedAt(pos, target, c.Other())
			out = append(out, move.Record{
				Piece: piece.Piece{Kind: k, Color: c},
				From:  bbOf(sq), To: bbOf(target),
				Captured: captured, HasCapture: isCap,
			})

			if isCap {
				break
			}
			target += dir
		}
	}
	return out
}

// castleSlot describes one of the four castling shortcuts. Squares
// are indices; Between lists the squares that must be empty.
type castleSlot struct {
	rookFrom, rookTo int
	kingFrom, kingTo int
	between          [2]int
}

var castleSlots = map[piece.Color]map[int]castleSlot{
	piece.White: {
		0: {rookFrom: 0, rookTo: 5, kingFrom: 4, kingTo: 6, between: [2]int{5, 6}},  // a1 rook -> f1, king e1->g1
		7: {rookFrom: 7, rookTo: 2, kingFrom: 4, kingTo: 1, between: [2]int{2, 1}},  // h1 rook -> c1, king e1->b1
	},
	piece.Black: {
		56: {rookFrom: 56, rookTo: 61, kingFrom: 60, kingTo: 62, between: [2]int{61, 62}}, // a8 rook -> f8, king e8->g8
		63: {rookFrom: 63, rookTo: 58, kingFrom: 60, kingTo: 57, between: [2]int{58, 57}}, // h8 rook -> c8, king e8->b8
	},
}

// castlingShortcut emits the special rook-as-castle move described by
// spec.md §4.3. It does not check whether intermediate squares are
// attacked, nor whether the king or rook have previously moved — that
// is the source's own ambiguity, flagged (not fixed) in spec.md §9.
func castlingShortcut(pos *position.Position, rookSq int, c piece.Color) move.List {
	slot, ok := castleSlots[c][rookSq]
	if !ok {
		return nil
	}
	if pos.PieceAt(slot.kingFrom) != piece.King {
		return nil
	}
	kingColor, ok := pos.ColorAt(slot.kingFrom)
	if !ok || kingColor != c {
		return nil
	}
	for _, sq := range slot.between {
		if pos.IsOccupied(sq) {
			return nil
		}
	}
	return move.List{{
		Piece:       piece.Piece{Kind: piece.Rook, Color: c},
		From:        bbOf(slot.rookFrom),
		To:          bbOf(slot.rookTo),
		Castle:      true,
		CastleColor: c,
		KingFrom:    bbOf(slot.kingFrom),
		KingTo:      bbOf(slot.kingTo),
	}}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
