package export

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"
)

// ExportExcel writes the report to an xlsx workbook with Summary, Bins,
// Items and Leftovers sheets.
func ExportExcel(path string, r Report) error {
	if len(r.Bins) == 0 {
		return fmt.Errorf("no bins to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), "Summary"); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	summary := [][]interface{}{
		{"Run", r.RunID},
		{"Generated", r.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"Container", formatDims(r.Container)},
		{"Bins used", len(r.Bins)},
		{"Lower bound", r.Estimate.BinsNeededMin},
		{"Items", r.ItemCount},
		{"Efficiency %", round2(r.Efficiency)},
		{"Scalar", string(r.Settings.Scalar)},
		{"Tolerance", r.Settings.Tolerance},
	}
	if err := writeRows(f, "Summary", summary); err != nil {
		return err
	}

	bins := [][]interface{}{{"Bin", "ID", "Items", "Used volume", "Total volume", "Efficiency %"}}
	for _, b := range r.Bins {
		bins = append(bins, []interface{}{b.Index, b.ID, len(b.Items), b.UsedVolume, b.TotalVolume, round2(b.Efficiency)})
	}
	if err := writeSheet(f, "Bins", bins); err != nil {
		return err
	}

	items := [][]interface{}{{"Bin", "Position", "Item", "Shortest", "Middle", "Longest", "Volume"}}
	for _, b := range r.Bins {
		for j, it := range b.Items {
			items = append(items, []interface{}{b.Index, j + 1, it.ID, it.Dims[0], it.Dims[1], it.Dims[2], it.Volume})
		}
	}
	if err := writeSheet(f, "Items", items); err != nil {
		return err
	}

	leftovers := [][]interface{}{{"Bin", "Shortest", "Middle", "Longest", "Volume"}}
	for _, l := range r.Leftovers {
		leftovers = append(leftovers, []interface{}{l.BinIndex + 1, l.Dims[0], l.Dims[1], l.Dims[2], l.Volume()})
	}
	if err := writeSheet(f, "Leftovers", leftovers); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, name string, rows [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}
	return writeRows(f, name, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
