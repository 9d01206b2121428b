package report

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/san-kum/sinebench/internal/fpcheck"
	"github.com/san-kum/sinebench/internal/strategy"
	"gonum.org/v1/gonum/stat"
)

// Accuracy compares a strategy to a reference over the sweep.
type Accuracy struct {
	Name       string
	Label      string
	MaxAbsErr  float64
	MeanAbsErr float64
	WorstAt    int
	Invalid    int
}

func Measure(s, ref strategy.Strategy) Accuracy {
	got, want := Sample(s), Sample(ref)
	acc := Accuracy{Name: s.Name(), Label: s.Label(), WorstAt: -1}

	errs := make([]float64, 0, len(got))
	for i := range got {
		if fpcheck.IsNaNOrInfinity(got[i]) {
			acc.Invalid++
			continue
		}
		e := math.Abs(got[i] - want[i])
		errs = append(errs, e)
		if e > acc.MaxAbsErr || acc.WorstAt < 0 {
			acc.MaxAbsErr = e
			acc.WorstAt = i
		}
	}
	if len(errs) > 0 {
		acc.MeanAbsErr = stat.Mean(errs, nil)
	}
	return acc
}

func WriteAccuracy(w io.Writer, rows []Accuracy) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STRATEGY\tMAX_ABS_ERR\tMEAN_ABS_ERR\tWORST_DEG\tINVALID")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%.3e\t%.3e\t%d\t%d\n", r.Name, r.MaxAbsErr, r.MeanAbsErr, r.WorstAt, r.Invalid)
	}
	return tw.Flush()
}
