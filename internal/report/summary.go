package report

import (
	"math"

	"github.com/san-kum/sinebench/internal/bench"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates one strategy's timings over repeated suite runs.
type Summary struct {
	Name      string
	Label     string
	Runs      int
	Calls     int
	Mean      float64
	StdDev    float64
	Min       float64
	Max       float64
	NsPerCall float64
	Last      float64
}

// Summarize groups results by strategy name, keeping first-seen order.
// Timings are in seconds.
func Summarize(runs [][]bench.Result) []Summary {
	var order []string
	seconds := make(map[string][]float64)
	latest := make(map[string]bench.Result)

	for _, run := range runs {
		for _, r := range run {
			if _, ok := seconds[r.Name]; !ok {
				order = append(order, r.Name)
			}
			seconds[r.Name] = append(seconds[r.Name], r.Seconds())
			latest[r.Name] = r
		}
	}

	out := make([]Summary, 0, len(order))
	for _, name := range order {
		xs := seconds[name]
		r := latest[name]

		mean, std := stat.MeanStdDev(xs, nil)
		if len(xs) < 2 {
			std = 0
		}
		s := Summary{
			Name:   name,
			Label:  r.Label,
			Runs:   len(xs),
			Calls:  r.Calls,
			Mean:   mean,
			StdDev: std,
			Min:    floats.Min(xs),
			Max:    floats.Max(xs),
			Last:   r.Last,
		}
		if r.Calls > 0 {
			s.NsPerCall = mean * 1e9 / float64(r.Calls)
		}
		out = append(out, s)
	}
	return out
}

// Relative returns each summary's mean divided by the fastest mean per
// call. A strategy with no measurable time maps to 1.
func Relative(sums []Summary) []float64 {
	best := math.Inf(1)
	for _, s := range sums {
		if s.NsPerCall > 0 && s.NsPerCall < best {
			best = s.NsPerCall
		}
	}
	out := make([]float64, len(sums))
	for i, s := range sums {
		if math.IsInf(best, 1) || s.NsPerCall == 0 {
			out[i] = 1
			continue
		}
		out[i] = s.NsPerCall / best
	}
	return out
}
