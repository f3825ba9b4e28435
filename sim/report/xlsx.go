package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pumpsim/pumpsim/sim"
)

// XLSXSheet is the name of the worksheet holding snapshots.
const XLSXSheet = "Snapshots"

// XLSXColumns are the header cells of the snapshot worksheet.
var XLSXColumns = []string{
	"Current Time", "Total Cars", "NoQueue Fraction", "Car->Car Time", "Average Litres",
	"Number Balked", "Average Wait", "Pump Usage", "Total Profit", "Lost Profit",
}

// XLSXReporter collects snapshots into a workbook, one row each, and saves it on Close.
// Undefined ratios are written as the string "Unknown".
type XLSXReporter struct {
	path string
	file *excelize.File
	row  int
}

// NewXLSXReporter creates a workbook that Close saves to path.
func NewXLSXReporter(path string) (*XLSXReporter, error) {
	f := excelize.NewFile()
	idx, err := f.NewSheet(XLSXSheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("removing default sheet: %w", err)
	}

	header := make([]interface{}, len(XLSXColumns))
	for i, c := range XLSXColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(XLSXSheet, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("writing header: %w", err)
	}
	return &XLSXReporter{path: path, file: f, row: 1}, nil
}

// Report appends the snapshot as the next row.
func (r *XLSXReporter) Report(s sim.Snapshot) error {
	r.row++
	cell, err := excelize.CoordinatesToCellName(1, r.row)
	if err != nil {
		return err
	}
	values := []interface{}{
		s.Time,
		s.TotalArrivals,
		s.NoQueueFraction,
		cellValue(s.CarToCarTime),
		cellValue(s.AverageLitres),
		s.Balked,
		cellValue(s.AverageWait),
		s.PumpUsage,
		s.TotalProfit,
		s.LostProfit,
	}
	if err := r.file.SetSheetRow(XLSXSheet, cell, &values); err != nil {
		return fmt.Errorf("writing row %d: %w", r.row, err)
	}
	return nil
}

// Close saves the workbook and releases it.
func (r *XLSXReporter) Close() error {
	if err := r.file.SaveAs(r.path); err != nil {
		r.file.Close()
		return fmt.Errorf("saving %s: %w", r.path, err)
	}
	return r.file.Close()
}

func cellValue(m sim.Measure) interface{} {
	if !m.Known {
		return m.String()
	}
	return m.Value
}
