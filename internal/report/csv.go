package report

import (
	"io"

	"github.com/gocarina/gocsv"
	"github.com/san-kum/sinebench/internal/bench"
)

// Record is one CSV row per strategy per run.
type Record struct {
	Run         int     `csv:"run"`
	Strategy    string  `csv:"strategy"`
	Label       string  `csv:"label"`
	Repetitions int     `csv:"repetitions"`
	Calls       int     `csv:"calls"`
	Seconds     float64 `csv:"seconds"`
	Last        float64 `csv:"last"`
}

func Records(runs [][]bench.Result) []*Record {
	var out []*Record
	for i, run := range runs {
		for _, r := range run {
			out = append(out, &Record{
				Run:         i + 1,
				Strategy:    r.Name,
				Label:       r.Label,
				Repetitions: r.Repetitions,
				Calls:       r.Calls,
				Seconds:     r.Seconds(),
				Last:        r.Last,
			})
		}
	}
	return out
}

func WriteCSV(w io.Writer, runs [][]bench.Result) error {
	records := Records(runs)
	return gocsv.Marshal(&records, w)
}

func ReadCSV(r io.Reader) ([]*Record, error) {
	var records []*Record
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, err
	}
	return records, nil
}
