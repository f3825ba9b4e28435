package report

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pumpsim/pumpsim/sim"
)

func TestXLSXReporter_WritesWorkbook(t *testing.T) {
	// GIVEN an XLSX reporter
	path := filepath.Join(t.TempDir(), "station.xlsx")
	r, err := NewXLSXReporter(path)
	require.NoError(t, err)

	// WHEN two snapshots are reported and the workbook is closed
	first := sampleSnapshot()
	second := sampleSnapshot()
	second.TotalArrivals = 71
	second.AverageWait = sim.Unknown
	require.NoError(t, r.Report(first))
	require.NoError(t, r.Report(second))
	require.NoError(t, r.Close())

	// THEN the saved workbook has one sheet with the header and a row per snapshot
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{XLSXSheet}, f.GetSheetList())

	rows, err := f.GetRows(XLSXSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, XLSXColumns, rows[0])
	assert.Equal(t, "3600", rows[1][0])
	assert.Equal(t, "70", rows[1][1])
	assert.Equal(t, "71", rows[2][1])
	assert.Equal(t, "Unknown", rows[2][6])
}

func TestXLSXReporter_BadPath_CloseErrors(t *testing.T) {
	r, err := NewXLSXReporter(filepath.Join(t.TempDir(), "missing", "dir", "station.xlsx"))
	require.NoError(t, err)
	require.NoError(t, r.Report(sampleSnapshot()))
	assert.Error(t, r.Close())
}
