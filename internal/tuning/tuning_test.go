package tuning

import (
	"testing"

	"github.com/corvidae/bitchess/internal/piece"
	"github.com/corvidae/bitchess/internal/position"
)

func sample(result float64) Sample {
	p := &position.Position{}
	p.BitboardFor(piece.King, piece.White).Set(4)
	p.BitboardFor(piece.King, piece.Black).Set(60)
	p.UpdateOccupancy()
	return Sample{Pos: p, Result: result}
}

func TestComputeKConverges(t *testing.T) {
	d := Dataset{sample(1), sample(0), sample(0.5)}
	k := d.ComputeK(3)
	if k < 0 {
		t.Fatalf("expected a non-negative K, got %v", k)
	}
}

func TestTuneRunsWithoutPanicking(t *testing.T) {
	d := Dataset{sample(1), sample(0)}
	tuner := Tuner{
		Config:  Config{KPrecision: 2, MaxEpochs: 1},
		Dataset: d,
	}
	tuner.Tune()
}
