package model

// BinResult represents one closed bin with its packed items and the free
// space that was left when it closed.
type BinResult[T Scalar] struct {
	ID        string      `json:"id"`
	Container Cuboid[T]   `json:"container"`
	Items     []Item[T]   `json:"items"`
	FreeSpace []Cuboid[T] `json:"free_space"`
}

// ItemIDs returns the packed identifiers in placement order.
func (br BinResult[T]) ItemIDs() []string {
	ids := make([]string, len(br.Items))
	for i, it := range br.Items {
		ids[i] = it.ID
	}
	return ids
}

// UsedVolume returns the total volume of packed items.
func (br BinResult[T]) UsedVolume() float64 {
	var total float64
	for _, it := range br.Items {
		total += float64(it.Cuboid.Volume())
	}
	return total
}

// TotalVolume returns the bin volume.
func (br BinResult[T]) TotalVolume() float64 {
	return float64(br.Container.Volume())
}

// FreeVolume returns the volume of the tracked free-space cuboids.
func (br BinResult[T]) FreeVolume() float64 {
	var total float64
	for _, c := range br.FreeSpace {
		total += float64(c.Volume())
	}
	return total
}

// Efficiency returns the fill percentage.
func (br BinResult[T]) Efficiency() float64 {
	tv := br.TotalVolume()
	if tv == 0 {
		return 0
	}
	return (br.UsedVolume() / tv) * 100.0
}

// PackResult holds the full solution of one packing run.
type PackResult[T Scalar] struct {
	Container Cuboid[T]      `json:"container"`
	Bins      []BinResult[T] `json:"bins"`
}

// Groups returns the packed identifiers per bin, in bin order.
func (pr PackResult[T]) Groups() [][]string {
	groups := make([][]string, len(pr.Bins))
	for i, b := range pr.Bins {
		groups[i] = b.ItemIDs()
	}
	return groups
}

// ItemCount returns the number of packed items across all bins.
func (pr PackResult[T]) ItemCount() int {
	n := 0
	for _, b := range pr.Bins {
		n += len(b.Items)
	}
	return n
}

// TotalEfficiency returns overall volume usage percentage.
func (pr PackResult[T]) TotalEfficiency() float64 {
	var used, total float64
	for _, b := range pr.Bins {
		used += b.UsedVolume()
		total += b.TotalVolume()
	}
	if total == 0 {
		return 0
	}
	return (used / total) * 100.0
}
