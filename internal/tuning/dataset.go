// Package tuning implements a small coordinate-descent PST tuner for
// the Bishop, Rook and Queen tables (the three spec.md §9 flags as
// authored fresh rather than recovered from source), grounded on
// raklaptudirm-mess's pkg/search/eval/classical/tuner/tuner.go — the
// only place in the teacher's own tree that imports progressbar and
// go-echarts. There is no midgame/endgame phase split here since
// internal/eval has none to tune.
package tuning

import (
	"math"

	"github.com/corvidae/bitchess/internal/eval"
	"github.com/corvidae/bitchess/internal/position"
)

// Sample pairs a position with its known game result from White's
// point of view: 1 for a White win, 0 for a Black win, 0.5 for a draw.
type Sample struct {
	Pos    *position.Position
	Result float64
}

// Dataset is a labeled collection of samples to tune against.
type Dataset []Sample

// sigmoid maps a centipawn-ish static score to a win probability. The
// 400 scale factor is arbitrary, same role as the teacher's K but
// folded into a fixed divisor rather than tuned jointly with K.
func sigmoid(k, score float64) float64 {
	return 1 / (1 + math.Exp(-k*score/400))
}

// score statically evaluates a sample's position from White's point of
// view; eval.Full is always computed from Black's, so White's score is
// its negation.
func score(p *position.Position) float64 {
	return float64(-eval.Full(p))
}

// computeE returns the dataset's mean squared error against k.
func (d Dataset) computeE(k float64) float64 {
	if len(d) == 0 {
		return 0
	}
	var total float64
	for _, s := range d {
		diff := s.Result - sigmoid(k, score(s.Pos))
		total += diff * diff
	}
	return total / float64(len(d))
}

// ComputeK searches for the K that minimizes mean squared error via
// coarse-to-fine coordinate search, mirroring the teacher's
// Dataset.ComputeK shape without requiring its exact step schedule.
func (d Dataset) ComputeK(precision int) float64 {
	best, bestE := 0.0, math.MaxFloat64
	step := 1.0
	for p := 0; p < precision; p++ {
		improved := true
		for improved {
			improved = false
			for _, candidate := range [2]float64{best - step, best + step} {
				if candidate < 0 {
					continue
				}
				if e := d.computeE(candidate); e < bestE {
					bestE = e
					best = candidate
					improved = true
				}
			}
		}
		step /= 10
	}
	return best
}
