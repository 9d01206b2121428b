// Package report formats benchmark results and table diagnostics.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/sinebench/internal/bench"
	"github.com/san-kum/sinebench/internal/lut"
)

// Printer writes the plain per-strategy report: the last computed value on
// one line, then "<Label> time elapsed: <seconds>".
type Printer struct {
	w         io.Writer
	precision int
}

func NewPrinter(w io.Writer, precision int) *Printer {
	return &Printer{w: w, precision: precision}
}

func (p *Printer) Result(r bench.Result) error {
	if _, err := fmt.Fprintf(p.w, "%.*f\n", p.precision, r.Last); err != nil {
		return err
	}
	_, err := fmt.Fprintf(p.w, "%s time elapsed: %.*f\n", r.Label, p.precision, r.Seconds())
	return err
}

// FormatTable lays the table out nine entries per line.
func FormatTable(t *lut.Table, precision int) string {
	var b strings.Builder
	for i, v := range t.Values() {
		fmt.Fprintf(&b, "%.*f,", precision, v)
		if (i+1)%9 == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	return b.String()
}
