package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pumpsim/pumpsim/sim"
)

func sampleSnapshot() sim.Snapshot {
	return sim.Snapshot{
		Time:            3600,
		TotalArrivals:   70,
		NoQueueFraction: 0.5,
		CarToCarTime:    sim.Known(51.428571),
		AverageLitres:   sim.Known(35.25),
		Balked:          3,
		AverageWait:     sim.Known(12.5),
		PumpUsage:       0.75,
		TotalProfit:     42.5,
		LostProfit:      1.25,
	}
}

func TestFormatRow_ColumnLayout(t *testing.T) {
	want := "    3600" + "     70" + "   0.500" + "   51.429" + "    35.250" +
		"       3" + "   12.500" + "   0.750" + "    42.50" + "     1.25"
	assert.Equal(t, want, FormatRow(sampleSnapshot()))
}

func TestFormatRow_UnknownRightAligned(t *testing.T) {
	// GIVEN a snapshot before any sale completed
	snap := sampleSnapshot()
	snap.AverageWait = sim.Unknown

	// WHEN formatted
	row := FormatRow(snap)

	// THEN the wait column holds Unknown in its width and the row keeps its length
	assert.Contains(t, row, "       3  Unknown   0.750")
	assert.Equal(t, len(FormatRow(sampleSnapshot())), len(row))
}

func TestTextReporter_WritesIntroHeaderAndRows(t *testing.T) {
	// GIVEN a text reporter on a buffer
	var buf bytes.Buffer
	r := NewTextReporter(&buf)

	// WHEN the intro and two snapshots are written
	require.NoError(t, r.WriteIntro(2, sim.Seeds{Arrival: 1, Litres: 2, Balking: 3, Service: 4}))
	require.NoError(t, r.Report(sampleSnapshot()))
	require.NoError(t, r.Report(sampleSnapshot()))

	// THEN the header appears once, between the intro and the rows
	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "This simulation run uses 2 pumps and the following random number seeds:", lines[0])
	assert.Equal(t, " 1 2 3 4", lines[1])
	assert.Contains(t, lines[2], "NoQueue")
	assert.Contains(t, lines[3], "Fraction")
	assert.Equal(t, strings.Repeat("-", 79), lines[4])
	assert.Equal(t, FormatRow(sampleSnapshot()), lines[5])
	assert.Equal(t, 1, strings.Count(out, "Car->Car"))
}
