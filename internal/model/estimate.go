package model

import "math"

// BinEstimate holds the volume-based lower bound on the number of bins a
// packing can need.
type BinEstimate struct {
	TotalItemVolume float64 `json:"total_item_volume"`
	BinVolume       float64 `json:"bin_volume"`
	BinsNeededExact float64 `json:"bins_needed_exact"` // Exact fractional number of bins
	BinsNeededMin   int     `json:"bins_needed_min"`   // Ceiling of the exact value
}

// EstimateBins computes the volume lower bound for packing items into bins
// shaped like container. No packing can use fewer than BinsNeededMin bins.
func EstimateBins[T Scalar](container Cuboid[T], items []Item[T]) BinEstimate {
	var itemVolume float64
	for _, it := range items {
		itemVolume += float64(it.Cuboid.Volume())
	}

	binVolume := float64(container.Volume())
	if binVolume <= 0 {
		return BinEstimate{TotalItemVolume: itemVolume}
	}

	exact := itemVolume / binVolume
	return BinEstimate{
		TotalItemVolume: itemVolume,
		BinVolume:       binVolume,
		BinsNeededExact: exact,
		BinsNeededMin:   int(math.Ceil(exact)),
	}
}
