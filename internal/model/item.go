package model

import "github.com/google/uuid"

// Item is a labelled cuboid waiting to be packed. Identifiers are opaque to
// the packer and need not be unique.
type Item[T Scalar] struct {
	ID     string    `json:"id"`
	Cuboid Cuboid[T] `json:"dims"`
}

// NewItem creates an item from its identifier and three edges in any order.
func NewItem[T Scalar](id string, dims [3]T) Item[T] {
	return Item[T]{ID: id, Cuboid: CuboidOf(dims)}
}

// Longest returns the item's longest edge, the key used for sequencing.
func (it Item[T]) Longest() T {
	return it.Cuboid.Longest()
}

// Equal reports identity equality: two items are equal iff their IDs match.
func (it Item[T]) Equal(other Item[T]) bool {
	return it.ID == other.ID
}

// CompareLongest orders items by their longest edge, ascending.
func CompareLongest[T Scalar](a, b Item[T]) int {
	return Compare(a.Longest(), b.Longest())
}

// ItemSpec is the import and persistence form of an item line: a label,
// three edges and a quantity.
type ItemSpec struct {
	ID       string  `json:"id" yaml:"id"`
	Label    string  `json:"label" yaml:"label"`
	Length   float64 `json:"length" yaml:"length"`
	Width    float64 `json:"width" yaml:"width"`
	Height   float64 `json:"height" yaml:"height"`
	Quantity int     `json:"quantity" yaml:"quantity"`
}

func NewItemSpec(label string, l, w, h float64, qty int) ItemSpec {
	return ItemSpec{
		ID:       uuid.New().String()[:8],
		Label:    label,
		Length:   l,
		Width:    w,
		Height:   h,
		Quantity: qty,
	}
}

// Name returns the identifier packed items carry: the label, or the ID when
// no label was given.
func (s ItemSpec) Name() string {
	if s.Label != "" {
		return s.Label
	}
	return s.ID
}

// Dims returns the spec's edges as a triple.
func (s ItemSpec) Dims() [3]float64 {
	return [3]float64{s.Length, s.Width, s.Height}
}

// ExpandItems converts item specs into packable items of scalar type T,
// repeating each spec Quantity times. A non-positive quantity counts as one.
func ExpandItems[T Scalar](specs []ItemSpec) []Item[T] {
	var items []Item[T]
	for _, s := range specs {
		qty := s.Quantity
		if qty < 1 {
			qty = 1
		}
		dims := [3]T{T(s.Length), T(s.Width), T(s.Height)}
		for i := 0; i < qty; i++ {
			items = append(items, NewItem(s.Name(), dims))
		}
	}
	return items
}

// TotalQuantity returns the number of items the specs expand to.
func TotalQuantity(specs []ItemSpec) int {
	total := 0
	for _, s := range specs {
		if s.Quantity < 1 {
			total++
			continue
		}
		total += s.Quantity
	}
	return total
}
