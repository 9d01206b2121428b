package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var columns = []struct {
	title string
	width int
}{
	{"STRATEGY", 14},
	{"RUNS", 6},
	{"MEAN s", 12},
	{"STDDEV s", 12},
	{"MIN s", 12},
	{"NS/CALL", 10},
	{"REL", 8},
	{"LAST", 10},
}

// fastest marks the rows with the lowest measured time per call. Rows
// with no measurable time are never marked.
func fastest(sums []Summary) []bool {
	rel := Relative(sums)
	out := make([]bool, len(sums))
	for i, s := range sums {
		out[i] = s.NsPerCall > 0 && rel[i] == 1
	}
	return out
}

func cell(style lipgloss.Style, width int, s string) string {
	return style.Width(width).Render(s)
}

// RenderTable draws the summaries as a bordered table. The fastest
// strategy per call is highlighted.
func RenderTable(sums []Summary, precision int) string {
	rel := Relative(sums)
	best := fastest(sums)

	var rows []string
	var header []string
	for _, c := range columns {
		header = append(header, cell(HeaderCell, c.width, c.title))
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, header...))

	for i, s := range sums {
		label := LabelCell
		if best[i] {
			label = Fastest
		}
		vals := []string{
			cell(label, columns[0].width, s.Label),
			cell(ValueCell, columns[1].width, fmt.Sprintf("%d", s.Runs)),
			cell(ValueCell, columns[2].width, fmt.Sprintf("%.*f", precision, s.Mean)),
			cell(ValueCell, columns[3].width, fmt.Sprintf("%.*f", precision, s.StdDev)),
			cell(ValueCell, columns[4].width, fmt.Sprintf("%.*f", precision, s.Min)),
			cell(ValueCell, columns[5].width, fmt.Sprintf("%.2f", s.NsPerCall)),
			cell(ValueCell, columns[6].width, fmt.Sprintf("%.2fx", rel[i])),
			cell(ValueCell, columns[7].width, fmt.Sprintf("%.*f", precision, s.Last)),
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, vals...))
	}

	body := strings.Join(rows, "\n")
	return Panel.Render(Title.Render("sine strategies") + "\n\n" + body)
}
