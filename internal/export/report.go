// Package export renders packing results as text tables, ID listings, JSON,
// Excel workbooks, PDF reports and QR-coded item labels.
package export

import (
	"time"

	"github.com/google/uuid"
	"github.com/piwi3910/BoxFit/internal/model"
)

// ItemRow is one packed item in a report.
type ItemRow struct {
	ID     string     `json:"id"`
	Dims   [3]float64 `json:"dims"`
	Volume float64    `json:"volume"`
}

// BinRow is one closed bin in a report.
type BinRow struct {
	Index       int          `json:"index"`
	ID          string       `json:"id"`
	Items       []ItemRow    `json:"items"`
	UsedVolume  float64      `json:"used_volume"`
	TotalVolume float64      `json:"total_volume"`
	Efficiency  float64      `json:"efficiency"`
	FreeSpace   [][3]float64 `json:"free_space"`
}

// Report is a scalar-independent view of a packing run, shared by every
// output format.
type Report struct {
	RunID       string            `json:"run_id"`
	GeneratedAt time.Time         `json:"generated_at"`
	Container   [3]float64        `json:"container"`
	Settings    model.Settings    `json:"settings"`
	Bins        []BinRow          `json:"bins"`
	ItemCount   int               `json:"item_count"`
	Efficiency  float64           `json:"efficiency"`
	Estimate    model.BinEstimate `json:"estimate"`
	Leftovers   []model.Leftover  `json:"leftovers"`
}

// NewReport converts a packing result into a Report.
func NewReport[T model.Scalar](res model.PackResult[T], settings model.Settings) Report {
	r := Report{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Container:   res.Container.Float64Dims(),
		Settings:    settings,
		Bins:        make([]BinRow, 0, len(res.Bins)),
		ItemCount:   res.ItemCount(),
		Efficiency:  res.TotalEfficiency(),
		Leftovers:   model.DetectLeftovers(res, settings.MinLeftover),
	}
	if r.Leftovers == nil {
		r.Leftovers = []model.Leftover{}
	}

	var packed []model.Item[T]
	for i, b := range res.Bins {
		row := BinRow{
			Index:       i + 1,
			ID:          b.ID,
			Items:       make([]ItemRow, len(b.Items)),
			UsedVolume:  b.UsedVolume(),
			TotalVolume: b.TotalVolume(),
			Efficiency:  b.Efficiency(),
			FreeSpace:   make([][3]float64, len(b.FreeSpace)),
		}
		for j, it := range b.Items {
			row.Items[j] = ItemRow{
				ID:     it.ID,
				Dims:   it.Cuboid.Float64Dims(),
				Volume: float64(it.Cuboid.Volume()),
			}
		}
		for j, c := range b.FreeSpace {
			row.FreeSpace[j] = c.Float64Dims()
		}
		r.Bins = append(r.Bins, row)
		packed = append(packed, b.Items...)
	}
	r.Estimate = model.EstimateBins(res.Container, packed)
	return r
}

// Groups returns the packed identifiers per bin.
func (r Report) Groups() [][]string {
	groups := make([][]string, len(r.Bins))
	for i, b := range r.Bins {
		ids := make([]string, len(b.Items))
		for j, it := range b.Items {
			ids[j] = it.ID
		}
		groups[i] = ids
	}
	return groups
}

// ShortRunID returns the first eight characters of the run ID.
func (r Report) ShortRunID() string {
	if len(r.RunID) > 8 {
		return r.RunID[:8]
	}
	return r.RunID
}

// LeftoverVolume returns the summed volume of the reported leftovers.
func (r Report) LeftoverVolume() float64 {
	return model.TotalLeftoverVolume(r.Leftovers)
}
