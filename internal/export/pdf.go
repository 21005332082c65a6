package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
)

// itemColor represents an RGB color for a packed item.
type itemColor struct {
	R, G, B int
}

var itemColors = []itemColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	barHeight    = 18.0
	rowHeight    = 5.0
	drawAreaTop  = marginTop + headerHeight + 8.0
)

// ExportPDF generates a PDF report. Each bin is rendered on its own page
// with a fill bar and an item table, followed by a summary page.
func ExportPDF(path string, r Report) error {
	if len(r.Bins) == 0 {
		return fmt.Errorf("no bins to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for _, bin := range r.Bins {
		pdf.AddPage()
		renderBinPage(pdf, r, bin)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, r)

	return pdf.OutputFileAndClose(path)
}

// renderBinPage draws a single bin on the current PDF page.
func renderBinPage(pdf *fpdf.Fpdf, r Report, bin BinRow) {
	contentWidth := pageWidth - marginLeft - marginRight

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Bin %d of %d (%s)", bin.Index, len(r.Bins), formatDims(r.Container))
	pdf.CellFormat(contentWidth, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Items: %d | Used volume: %g | Total volume: %g | Efficiency: %.1f%%",
		len(bin.Items), bin.UsedVolume, bin.TotalVolume, bin.Efficiency)
	pdf.CellFormat(contentWidth, 5, stats, "", 0, "L", false, 0, "")

	drawFillBar(pdf, bin, marginLeft, drawAreaTop, contentWidth)

	y := drawAreaTop + barHeight + 8
	y = drawItemTable(pdf, bin, y)

	if len(bin.FreeSpace) > 0 && y < pageHeight-marginBottom-2*rowHeight {
		y += 4
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(60, rowHeight, "Free space:", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 8)
		xPos := marginLeft + 22
		for _, c := range bin.FreeSpace {
			text := formatDims(c)
			w := pdf.GetStringWidth(text) + 4
			if xPos+w > pageWidth-marginRight {
				y += rowHeight
				xPos = marginLeft + 22
				if y > pageHeight-marginBottom-rowHeight {
					break
				}
			}
			pdf.SetXY(xPos, y)
			pdf.CellFormat(w, rowHeight, text, "", 0, "L", false, 0, "")
			xPos += w
		}
	}
}

// drawFillBar draws one horizontal bar split into segments proportional to
// each item's share of the bin volume. The unfilled tail is the free space.
func drawFillBar(pdf *fpdf.Fpdf, bin BinRow, x, y, width float64) {
	pdf.SetFillColor(210, 180, 140)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(x, y, width, barHeight, "FD")

	if bin.TotalVolume <= 0 {
		return
	}

	px := x
	for i, it := range bin.Items {
		col := itemColors[i%len(itemColors)]
		w := width * it.Volume / bin.TotalVolume

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.2)
		pdf.Rect(px, y, w, barHeight, "FD")

		if w > 10 {
			pdf.SetFont("Helvetica", "", labelFontSize(w, barHeight))
			pdf.SetTextColor(0, 0, 0)
			label := it.ID
			labelW := pdf.GetStringWidth(label)
			if labelW < w-2 {
				pdf.SetXY(px+(w-labelW)/2, y+barHeight/2-2)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
		}
		px += w
	}

	pdf.SetTextColor(0, 0, 0)
}

// drawItemTable lists the bin's items in placement order and returns the y
// position below the table.
func drawItemTable(pdf *fpdf.Fpdf, bin BinRow, y float64) float64 {
	colWidths := []float64{12, 20, 70, 80, 50}
	headers := []string{"", "#", "Item", "Dimensions", "Volume"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], rowHeight+1, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += rowHeight + 1

	pdf.SetFont("Helvetica", "", 8)
	for i, it := range bin.Items {
		if y > pageHeight-marginBottom-rowHeight {
			pdf.SetXY(marginLeft, y)
			pdf.CellFormat(100, rowHeight, fmt.Sprintf("... %d more", len(bin.Items)-i), "", 0, "L", false, 0, "")
			return y + rowHeight
		}

		col := itemColors[i%len(itemColors)]
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(marginLeft+4, y+1, 3, 3, "F")

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		rowData := []string{
			fmt.Sprintf("%d", i+1),
			it.ID,
			formatDims(it.Dims),
			fmt.Sprintf("%g", it.Volume),
		}
		xPos = marginLeft + colWidths[0]
		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j+1], rowHeight, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j+1]
		}
		y += rowHeight
	}
	return y
}

// renderSummaryPage draws the final summary page with overall statistics.
func renderSummaryPage(pdf *fpdf.Fpdf, r Report) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Packing Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	summaryItems := []struct {
		label string
		value string
	}{
		{"Container", formatDims(r.Container)},
		{"Bins Used", fmt.Sprintf("%d", len(r.Bins))},
		{"Volume Lower Bound", fmt.Sprintf("%d (%.2f)", r.Estimate.BinsNeededMin, r.Estimate.BinsNeededExact)},
		{"Items Packed", fmt.Sprintf("%d", r.ItemCount)},
		{"Overall Efficiency", fmt.Sprintf("%.1f%%", r.Efficiency)},
		{"Reusable Leftovers", fmt.Sprintf("%d", len(r.Leftovers))},
		{"Leftover Volume", fmt.Sprintf("%g", r.LeftoverVolume())},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Bin Breakdown", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{20, 40, 30, 80, 35}
	headers := []string{"Bin", "ID", "Items", "Used / Total Volume", "Efficiency"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, bin := range r.Bins {
		if y > pageHeight-marginBottom-30 {
			pdf.SetXY(marginLeft, y)
			pdf.CellFormat(100, 6, fmt.Sprintf("... %d more bins", len(r.Bins)-i), "", 0, "L", false, 0, "")
			y += 6
			break
		}
		xPos = marginLeft
		rowData := []string{
			fmt.Sprintf("%d", bin.Index),
			bin.ID,
			fmt.Sprintf("%d", len(bin.Items)),
			fmt.Sprintf("%g / %g", bin.UsedVolume, bin.TotalVolume),
			fmt.Sprintf("%.1f%%", bin.Efficiency),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	y += 8
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Packing Settings", "", 0, "L", false, 0, "")
	y += 9

	maxIter := "unlimited"
	if r.Settings.MaxIterations > 0 {
		maxIter = fmt.Sprintf("%d", r.Settings.MaxIterations)
	}
	settingsItems := []struct {
		label string
		value string
	}{
		{"Scalar Type", string(r.Settings.Scalar)},
		{"Fit Tolerance", fmt.Sprintf("%g", r.Settings.Tolerance)},
		{"Iteration Limit", maxIter},
	}

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range settingsItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(50, 5, item.label+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 5, item.value, "", 0, "L", false, 0, "")
		y += 5
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	footer := fmt.Sprintf("Generated by BoxFit - run %s - %s", r.ShortRunID(), r.GeneratedAt.Format("2006-01-02 15:04 MST"))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, footer, "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 15:
		return 7
	default:
		return 6
	}
}
