package report

import (
	"math"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sinebench/internal/bench"
	"github.com/san-kum/sinebench/internal/strategy"
)

// Sample evaluates s over the benchmark sweep.
func Sample(s strategy.Strategy) []float64 {
	data := make([]float64, bench.Sweep)
	for a := bench.MinDegree; a <= bench.MaxDegree; a++ {
		data[a-bench.MinDegree] = s.Sine(a)
	}
	return data
}

// PlotStrategy charts the strategy's output against degree.
func PlotStrategy(s strategy.Strategy, height int) string {
	return asciigraph.Plot(Sample(s),
		asciigraph.Height(height),
		asciigraph.Width(bench.Sweep),
		asciigraph.Caption(s.Label()+" (0..89 degrees)"),
	)
}

// PlotError charts |s(a) - ref(a)| against degree.
func PlotError(s strategy.Strategy, ref strategy.Strategy, height int) string {
	got, want := Sample(s), Sample(ref)
	diff := make([]float64, len(got))
	for i := range got {
		diff[i] = math.Abs(got[i] - want[i])
	}
	return asciigraph.Plot(diff,
		asciigraph.Height(height),
		asciigraph.Width(bench.Sweep),
		asciigraph.Caption(s.Label()+" absolute error vs "+ref.Label()),
	)
}
