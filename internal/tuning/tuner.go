package tuning

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/schollz/progressbar/v3"

	"github.com/corvidae/bitchess/internal/eval"
	"github.com/corvidae/bitchess/internal/piece"
)

// TunedKinds are the piece-square tables this tuner is allowed to
// touch — Pawn and Knight are fixed by spec.md §6 and excluded.
var TunedKinds = [3]piece.Kind{piece.Bishop, piece.Rook, piece.Queen}

// Config controls a tuning run.
type Config struct {
	KPrecision int
	MaxEpochs  int
	ErrorPlot  string // file path for the per-epoch error chart; "" disables it
}

// Tuner runs coordinate descent over the tunable PST entries against a
// fixed dataset, nudging each entry by ±1 in whichever direction lowers
// mean squared error.
type Tuner struct {
	Config  Config
	Dataset Dataset
	K       float64
}

// Tune runs Config.MaxEpochs passes over every tunable PST entry,
// reporting progress the way the teacher's tuner does: a progress bar
// per epoch and a re-rendered error-over-epoch line chart on disk.
func (t *Tuner) Tune() {
	fmt.Println("tuner: computing optimal value of K")
	t.K = t.Dataset.ComputeK(t.Config.KPrecision)
	fmt.Printf("tuner: K = %v\n", t.K)

	errorEpochs := make([]string, 0, t.Config.MaxEpochs+1)
	errorValues := make([]opts.LineData, 0, t.Config.MaxEpochs+1)

	record := func(epoch int) {
		e := t.Dataset.computeE(t.K)
		fmt.Printf("tuner: E = %v\n", e)
		errorEpochs = append(errorEpochs, strconv.Itoa(epoch))
		errorValues = append(errorValues, opts.LineData{Value: e})
		t.renderErrorPlot(errorEpochs, errorValues)
	}

	record(0)

	entries := len(TunedKinds) * 64
	for epoch := 1; epoch <= t.Config.MaxEpochs; epoch++ {
		fmt.Printf("tuner: started new epoch (%d/%d)\n", epoch, t.Config.MaxEpochs)

		bar := progressbar.NewOptions(
			entries,
			progressbar.OptionSetElapsedTime(true),
			progressbar.OptionSetItsString("entry"),
			progressbar.OptionSetPredictTime(true),
			progressbar.OptionSetRenderBlankState(true),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
		)

		for _, k := range TunedKinds {
			table := eval.TuneTable(k)
			for sq := 0; sq < 64; sq++ {
				t.nudge(table, sq)
				_ = bar.Add(1)
			}
		}
		_ = bar.Close()

		record(epoch)
	}
}

// nudge moves table[sq] by ±1, whichever direction lowers the
// dataset's mean squared error, and leaves it unchanged if neither
// does (a local optimum for that entry).
func (t *Tuner) nudge(table *[64]int, sq int) {
	original := table[sq]

	table[sq] = original + 1
	up := t.Dataset.computeE(t.K)

	table[sq] = original - 1
	down := t.Dataset.computeE(t.K)

	table[sq] = original
	base := t.Dataset.computeE(t.K)

	switch {
	case up < base && up <= down:
		table[sq] = original + 1
	case down < base:
		table[sq] = original - 1
	}
}

func (t *Tuner) renderErrorPlot(epochs []string, values []opts.LineData) {
	if t.Config.ErrorPlot == "" {
		return
	}
	plot := charts.NewLine()
	plot.SetXAxis(epochs).AddSeries("Error", values)

	f, err := os.Create(t.Config.ErrorPlot)
	if err != nil {
		fmt.Printf("tuner: could not open error plot file: %v\n", err)
		return
	}
	defer f.Close()
	_ = plot.Render(f)
}
