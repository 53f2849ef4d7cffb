package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/corvidae/bitchess/internal/piece"
	"github.com/corvidae/bitchess/internal/position"
	"github.com/corvidae/bitchess/internal/tuning"
)

func main() {
	epochs := flag.Int("epochs", 20, "number of coordinate-descent passes over the tunable PSTs")
	kPrecision := flag.Int("k-precision", 4, "refinement rounds when searching for K (step 1, then 0.1, and so on)")
	errorPlot := flag.String("error-plot", "error-plot.html", "path to write the per-epoch error chart to")
	flag.Parse()

	dataset := placeholderDataset()
	if len(dataset) == 0 {
		fmt.Fprintln(os.Stderr, "bitchess-tune: empty dataset, nothing to tune")
		os.Exit(1)
	}

	t := tuning.Tuner{
		Config: tuning.Config{
			KPrecision: *kPrecision,
			MaxEpochs:  *epochs,
			ErrorPlot:  *errorPlot,
		},
		Dataset: dataset,
	}
	t.Tune()
}

// placeholderDataset stands in for a PGN-derived dataset: a handful of
// won, lost and drawn-looking positions. A real run replaces this with
// positions and outcomes loaded from played games.
func placeholderDataset() tuning.Dataset {
	whiteUp := position.New()
	*whiteUp.BitboardFor(piece.Queen, piece.Black) = 0
	whiteUp.UpdateOccupancy()

	blackUp := position.New()
	*blackUp.BitboardFor(piece.Queen, piece.White) = 0
	blackUp.UpdateOccupancy()

	return tuning.Dataset{
		{Pos: position.New(), Result: 0.5},
		{Pos: whiteUp, Result: 1},
		{Pos: blackUp, Result: 0},
	}
}
