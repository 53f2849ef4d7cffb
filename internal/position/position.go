// Package position implements the bitboard board representation:
// twelve piece bitboards plus the derived occupancy caches, exactly the
// Position component of spec.md §4.2.
package position

import (
	"strings"

	"github.com/corvidae/bitchess/internal/bitboard"
	"github.com/corvidae/bitchess/internal/piece"
	"github.com/corvidae/bitchess/internal/square"
)

// Position holds the twelve piece bitboards and their derived caches.
// The derived fields are recomputed by UpdateOccupancy after every
// mutation and must never be trusted as authoritative on their own.
type Position struct {
	Pieces [2][piece.NKinds]bitboard.Board

	WhitePieces bitboard.Board
	BlackPieces bitboard.Board
	Occupied    bitboard.Board

	WhitesTurn bool
}

// New returns a Position set up for the standard opening.
func New() *Position {
	p := &Position{}
	p.ResetBoard()
	return p
}

// ResetBoard restores the standard initial layout (spec.md §3).
func (p *Position) ResetBoard() {
	p.Pieces = [2][piece.NKinds]bitboard.Board{
		piece.White: {
			piece.Pawn:   0xFF00,
			piece.Knight: 0x42,
			piece.Bishop: 0x24,
			piece.Rook:   0x81,
			piece.Queen:  0x08,
			piece.King:   0x10,
		},
		piece.Black: {
			piece.Pawn:   0x00FF000000000000,
			piece.Knight: 0x4200000000000000,
			piece.Bishop: 0x2400000000000000,
			piece.Rook:   0x8100000000000000,
			piece.Queen:  0x0800000000000000,
			piece.King:   0x1000000000000000,
		},
	}
	p.WhitesTurn = true
	p.UpdateOccupancy()
}

// UpdateOccupancy recomputes the derived occupancy bitboards from the
// twelve piece bitboards. Must run after every mutation.
func (p *Position) UpdateOccupancy() {
	p.WhitePieces = bitboard.Empty
	p.BlackPieces = bitboard.Empty
	for k := piece.Pawn; k < piece.None; k++ {
		p.WhitePieces |= p.Pieces[piece.White][k]
		p.BlackPieces |= p.Pieces[piece.Black][k]
	}
	p.Occupied = p.WhitePieces | p.BlackPieces
}

// BitboardFor returns a mutable handle to the bitboard for the given
// kind and color.
func (p *Position) BitboardFor(k piece.Kind, c piece.Color) *bitboard.Board {
	return &p.Pieces[c][k]
}

// PieceAt returns the kind occupying sq, or piece.None if empty.
func (p *Position) PieceAt(sq int) piece.Kind {
	for k := piece.Pawn; k < piece.None; k++ {
		if p.Pieces[piece.White][k].IsSet(sq) || p.Pieces[piece.Black][k].IsSet(sq) {
			return k
		}
	}
	return piece.None
}

// ColorAt returns the color occupying sq. The second return is false if
// sq is empty.
func (p *Position) ColorAt(sq int) (piece.Color, bool) {
	switch {
	case p.WhitePieces.IsSet(sq):
		return piece.White, true
	case p.BlackPieces.IsSet(sq):
		return piece.Black, true
	default:
		return 0, false
	}
}

// IsOccupied reports whether sq holds any piece.
func (p *Position) IsOccupied(sq int) bool {
	return p.Occupied.IsSet(sq)
}

// String renders the position as an 8x8 ASCII grid, rank 8 first.
func (p *Position) String() string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sq := square.New(rank, file)
			k := p.PieceAt(sq)
			if k == piece.None {
				b.WriteString(" .")
				continue
			}
			c, _ := p.ColorAt(sq)
			b.WriteByte(' ')
			b.WriteString(k.Letter(c))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
