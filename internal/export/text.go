package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// WriteText renders a human-readable summary: one table row per bin followed
// by overall statistics and the largest leftovers.
func WriteText(w io.Writer, r Report) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("Container %s", formatDims(r.Container)))
	t.AppendHeader(table.Row{"Bin", "Items", "Count", "Used", "Efficiency"})
	for _, b := range r.Bins {
		ids := make([]string, len(b.Items))
		for i, it := range b.Items {
			ids[i] = it.ID
		}
		t.AppendRow(table.Row{
			b.Index,
			strings.Join(ids, " "),
			len(b.Items),
			fmt.Sprintf("%g / %g", b.UsedVolume, b.TotalVolume),
			fmt.Sprintf("%.1f%%", b.Efficiency),
		})
	}
	t.AppendFooter(table.Row{
		"Total",
		fmt.Sprintf("lower bound %d bins", r.Estimate.BinsNeededMin),
		r.ItemCount,
		"",
		fmt.Sprintf("%.1f%%", r.Efficiency),
	})
	t.Render()

	if len(r.Leftovers) == 0 {
		return nil
	}

	lt := table.NewWriter()
	lt.SetOutputMirror(w)
	lt.SetTitle("Leftover space")
	lt.AppendHeader(table.Row{"Bin", "Dims", "Volume"})
	for _, l := range r.Leftovers {
		lt.AppendRow(table.Row{l.BinIndex + 1, formatDims(l.Dims), fmt.Sprintf("%g", l.Volume())})
	}
	lt.AppendFooter(table.Row{"", "Total", fmt.Sprintf("%g", r.LeftoverVolume())})
	lt.Render()
	return nil
}

// WriteIDs writes one line per bin listing the packed identifiers in
// placement order.
func WriteIDs(w io.Writer, groups [][]string) error {
	for i, ids := range groups {
		if _, err := fmt.Fprintf(w, "bin %d: %s\n", i+1, strings.Join(ids, " ")); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func formatDims(d [3]float64) string {
	return fmt.Sprintf("%g x %g x %g", d[0], d[1], d[2])
}
