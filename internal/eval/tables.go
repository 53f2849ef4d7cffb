package eval

import "github.com/corvidae/bitchess/internal/piece"

// Material gives each piece kind's value; King is intentionally absent
// (scored as zero) since it is never captured, per spec.md §4.7.
var Material = map[piece.Kind]int{
	piece.Pawn:   10,
	piece.Knight: 28,
	piece.Bishop: 28,
	piece.Rook:   40,
	piece.Queen:  70,
}

// Piece-square tables, 64 entries, row-major from White's perspective,
// index 0 = a1 (rank*8+file, matching internal/square's numbering).
// Black's PST lookup mirrors the index with 63-s.
//
// Pawn and Knight are reproduced byte-for-byte from spec.md §6. Bishop,
// Rook and Queen are not recoverable from original_source/ChessBoard.cpp
// (only the pawn and knight tables survive there) — spec.md §9 flags
// this as an open question; these three are authored fresh (Bishop and
// Queen centre-weighted like Knight, Rook with a seventh-rank bonus and
// an edge-file malus), and are the tuning target of internal/tuning.
var pst = [piece.NKinds][64]int{
	piece.Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		3, 2, 1, -1, -1, -1, 1, 2,
		2, 2, 4, 6, 6, 4, 2, 2,
		1, 1, 2, 5, 5, 2, 1, 1,
		0, 0, 1, 3, 3, 1, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 5, 5, 5, 5, 5, 5, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	piece.Knight: {
		-5, -2, -2, -2, -2, -2, -2, -5,
		-2, 0, 0, 3, 3, 0, 0, -2,
		-2, 0, 3, 6, 6, 3, 0, -2,
		-2, 3, 6, 8, 8, 6, 3, -2,
		-2, 3, 6, 8, 8, 6, 3, -2,
		-2, 0, 3, 6, 6, 3, 0, -2,
		-2, 0, 0, 3, 3, 0, 0, -2,
		-5, -2, -2, -2, -2, -2, -2, -5,
	},
	piece.Bishop: {
		-2, -1, -1, -1, -1, -1, -1, -2,
		-1, 0, 0, 0, 0, 0, 0, -1,
		-1, 0, 1, 2, 2, 1, 0, -1,
		-1, 1, 2, 2, 2, 2, 1, -1,
		-1, 1, 2, 2, 2, 2, 1, -1,
		-1, 0, 1, 2, 2, 1, 0, -1,
		-1, 0, 0, 0, 0, 0, 0, -1,
		-2, -1, -1, -1, -1, -1, -1, -2,
	},
	piece.Rook: {
		0, 0, 0, 0, 0, 0, 0, 0,
		-1, 0, 0, 0, 0, 0, 0, -1,
		-1, 0, 0, 0, 0, 0, 0, -1,
		-1, 0, 0, 0, 0, 0, 0, -1,
		-1, 0, 0, 0, 0, 0, 0, -1,
		-1, 0, 0, 0, 0, 0, 0, -1,
		2, 2, 2, 2, 2, 2, 2, 2,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	piece.Queen: {
		-2, -1, -1, -1, -1, -1, -1, -2,
		-1, 0, 0, 0, 0, 0, 0, -1,
		-1, 0, 1, 1, 1, 1, 0, -1,
		-1, 0, 1, 2, 2, 1, 0, -1,
		-1, 0, 1, 2, 2, 1, 0, -1,
		-1, 0, 1, 1, 1, 1, 0, -1,
		-1, 0, 0, 0, 0, 0, 0, -1,
		-2, -1, -1, -1, -1, -1, -1, -2,
	},
	piece.King: {}, // not scored
}

// PST returns the piece-square value for kind k on square s for color
// c, mirroring the index for Black as spec.md §4.7 specifies.
func PST(k piece.Kind, s int, c piece.Color) int {
	if c == piece.Black {
		s = 63 - s
	}
	return pst[k][s]
}

// TuneTable returns a mutable pointer into the PST data for the tuner
// (internal/tuning) to nudge. Only Bishop, Rook and Queen are meant to
// be tuned — Pawn and Knight are fixed by spec.md §6.
func TuneTable(k piece.Kind) *[64]int {
	return &pst[k]
}
