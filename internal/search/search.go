// Package search implements fixed-depth negamax with alpha-beta pruning
// over the move generator, legality filter and evaluator, per spec.md
// §4.8. It has no timeout and no iterative deepening on the path the
// Facade actually calls — both are flagged, not added, per spec.md §9.
package search

import (
	"github.com/corvidae/bitchess/internal/attack"
	"github.com/corvidae/bitchess/internal/eval"
	"github.com/corvidae/bitchess/internal/legality"
	"github.com/corvidae/bitchess/internal/move"
	"github.com/corvidae/bitchess/internal/movegen"
	"github.com/corvidae/bitchess/internal/piece"
	"github.com/corvidae/bitchess/internal/position"
)

// Depth is the fixed search depth (spec.md §4.8 — no iterative
// deepening, no time control).
const Depth = 4

const (
	captureBonus   = 100
	capturePenalty = -100

	// infinity bounds alpha-beta without risking the overflow that
	// negating a true MinInt/MaxInt sentinel would cause.
	infinity = 1 << 30
)

// MakeUnmake is the minimal interface search needs to recurse over a
// position: apply a move, undo it, same contract legality.Filter uses.
type MakeUnmake interface {
	Make(r move.Record)
	Unmake()
}

// Root runs a fixed-depth search from pos for color, the side to move.
// Either color may be searched; scores are taken from color's point of
// view. It returns the best move found, or false if color has no legal
// moves.
func Root(pos *position.Position, mu MakeUnmake, color piece.Color) (move.Record, bool) {
	candidates := legality.Filter(pos, mu, movegen.ForColor(pos, color), color)
	if len(candidates) == 0 {
		return move.Record{}, false
	}

	order(pos, candidates, color)
	candidates.SortByScoreDescending()

	best := candidates[0]
	bestScore := -infinity
	alpha, beta := -infinity, infinity

	for _, m := range candidates {
		mu.Make(m)
		score := -negamax(pos, mu, color.Other(), Depth-1, -beta, -alpha)
		mu.Unmake()

		if score > bestScore {
			bestScore = score
			best = m
			best.Score = score
		}
		if score > alpha {
			alpha = score
		}
	}

	return best, true
}

// negamax returns the score of pos from color's point of view, searched
// to depth plies with alpha-beta pruning. At depth 0 it falls back to
// the static evaluator (always from Black's perspective, so White's
// negamax score is the negation of Full).
func negamax(pos *position.Position, mu MakeUnmake, color piece.Color, depth, alpha, beta int) int {
	if depth == 0 {
		return fromSideToMove(pos, color)
	}

	candidates := legality.Filter(pos, mu, movegen.ForColor(pos, color), color)
	// No explicit stalemate/checkmate detection below the root, matching
	// spec.md §4.8: an empty candidate list here just leaves best at
	// alpha and lets the sentinel bound propagate up, same as any other
	// branch that fails to improve on alpha. Only Root treats an empty
	// list specially, per spec.md §9.
	order(pos, candidates, color)
	candidates.SortByScoreDescending()

	best := alpha
	for _, m := range candidates {
		mu.Make(m)
		score := -negamax(pos, mu, color.Other(), depth-1, -beta, -best)
		mu.Unmake()

		if score > best {
			best = score
		}
		if best >= beta {
			break
		}
	}
	return best
}

func fromSideToMove(pos *position.Position, color piece.Color) int {
	if color == piece.Black {
		return eval.Full(pos)
	}
	return -eval.Full(pos)
}

// order assigns a move-ordering Score to each candidate ahead of a
// search or sort: captures landing on a square the opponent doesn't
// recapture are promoted, captures into a defended square are demoted.
// This is the search's only ordering heuristic (spec.md §4.8).
func order(pos *position.Position, candidates move.List, color piece.Color) {
	for i := range candidates {
		if !candidates[i].HasCapture {
			continue
		}
		if attack.IsSquareAttacked(pos, candidates[i].ToSquare(), color.Other()) {
			candidates[i].Score = capturePenalty
		} else {
			candidates[i].Score = captureBonus
		}
	}
}
