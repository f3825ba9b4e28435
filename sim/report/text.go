// Package report renders station snapshots for people and tools: column-aligned text,
// JSON lines and XLSX workbooks. Every reporter implements sim.Reporter.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pumpsim/pumpsim/sim"
)

// Column titles of the text report, two lines each.
var headerLines = []string{
	" Current  Total  NoQueue  Car->Car  Average  Number  Average  Pump   Total     Lost",
	"  Time     Cars  Fraction    Time    Litres  Balked   Wait    Usage  Profit   Profit",
}

// TextReporter writes one fixed-width row per snapshot, preceded by a header.
// The header is bold when w is a terminal.
type TextReporter struct {
	w           io.Writer
	headerStyle lipgloss.Style
	wroteHeader bool
}

// NewTextReporter creates a reporter writing to w.
func NewTextReporter(w io.Writer) *TextReporter {
	renderer := lipgloss.NewRenderer(w)
	return &TextReporter{
		w:           w,
		headerStyle: renderer.NewStyle().Bold(true),
	}
}

// WriteIntro prints the run's pump count and stream seeds.
func (r *TextReporter) WriteIntro(numPumps int, seeds sim.Seeds) error {
	_, err := fmt.Fprintf(r.w, "This simulation run uses %d pumps and the following random number seeds:\n %d %d %d %d\n",
		numPumps, seeds.Arrival, seeds.Litres, seeds.Balking, seeds.Service)
	return err
}

// WriteHeader prints the column titles. Report calls it before the first row.
func (r *TextReporter) WriteHeader() error {
	r.wroteHeader = true
	for _, line := range headerLines {
		if _, err := fmt.Fprintln(r.w, r.headerStyle.Render(line)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(r.w, strings.Repeat("-", 79))
	return err
}

// Report writes the snapshot as one row.
func (r *TextReporter) Report(s sim.Snapshot) error {
	if !r.wroteHeader {
		if err := r.WriteHeader(); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(r.w, FormatRow(s))
	return err
}

// FormatRow renders a snapshot in the text report's column layout.
func FormatRow(s sim.Snapshot) string {
	var b strings.Builder
	b.WriteString(fmtFloat(s.Time, 8, 0))
	b.WriteString(fmtInt(s.TotalArrivals, 7))
	b.WriteString(fmtFloat(s.NoQueueFraction, 8, 3))
	b.WriteString(fmtMeasure(s.CarToCarTime, 9, 3))
	b.WriteString(fmtMeasure(s.AverageLitres, 10, 3))
	b.WriteString(fmtInt(s.Balked, 8))
	b.WriteString(fmtMeasure(s.AverageWait, 9, 3))
	b.WriteString(fmtFloat(s.PumpUsage, 8, 3))
	b.WriteString(fmtFloat(s.TotalProfit, 9, 2))
	b.WriteString(fmtFloat(s.LostProfit, 9, 2))
	return b.String()
}

func fmtFloat(v float64, width, precision int) string {
	return fmt.Sprintf("%*.*f", width, precision, v)
}

func fmtInt(v, width int) string {
	return fmt.Sprintf("%*d", width, v)
}

func fmtMeasure(m sim.Measure, width, precision int) string {
	if !m.Known {
		return fmt.Sprintf("%*s", width, m.String())
	}
	return fmtFloat(m.Value, width, precision)
}
