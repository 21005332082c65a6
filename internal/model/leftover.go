package model

import (
	"sort"

	"github.com/google/uuid"
)

// Leftover is a free-space cuboid large enough to be worth reporting, for
// example as room for dunnage or a late addition to the shipment.
type Leftover struct {
	ID       string     `json:"id"`
	BinIndex int        `json:"bin_index"`
	Dims     [3]float64 `json:"dims"`
}

// Volume returns the leftover's volume.
func (l Leftover) Volume() float64 {
	return l.Dims[0] * l.Dims[1] * l.Dims[2]
}

// MinLeftoverDimension is the default smallest edge for a free-space cuboid
// to be reported as a usable leftover.
const MinLeftoverDimension = 1.0

// DetectLeftovers collects the free-space cuboids of every bin whose
// shortest edge is at least minDimension, largest first.
func DetectLeftovers[T Scalar](result PackResult[T], minDimension float64) []Leftover {
	var leftovers []Leftover
	for i, bin := range result.Bins {
		for _, c := range bin.FreeSpace {
			dims := c.Float64Dims()
			if dims[0] < minDimension {
				continue
			}
			leftovers = append(leftovers, Leftover{
				ID:       uuid.New().String()[:8],
				BinIndex: i,
				Dims:     dims,
			})
		}
	}

	sort.SliceStable(leftovers, func(i, j int) bool {
		return leftovers[i].Volume() > leftovers[j].Volume()
	})
	return leftovers
}

// TotalLeftoverVolume returns the summed volume of the leftovers.
func TotalLeftoverVolume(leftovers []Leftover) float64 {
	var total float64
	for _, l := range leftovers {
		total += l.Volume()
	}
	return total
}
