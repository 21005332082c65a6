package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/piwi3910/BoxFit/internal/model"
)

// Bin is one container being filled. Free space is tracked by shape only.
type Bin[T model.Scalar] struct {
	id        string
	template  model.Cuboid[T]
	tolerance T
	free      []model.Cuboid[T]
	items     []model.Item[T]
}

// NewBin opens an empty bin shaped like template.
func NewBin[T model.Scalar](template model.Cuboid[T], tolerance T) *Bin[T] {
	b := &Bin[T]{
		id:        uuid.New().String()[:8],
		template:  template,
		tolerance: tolerance,
	}
	if !template.IsDegenerate() {
		b.free = []model.Cuboid[T]{template}
	}
	return b
}

func (b *Bin[T]) ID() string { return b.id }
func (b *Bin[T]) Template() model.Cuboid[T] { return b.template }
func (b *Bin[T]) IsEmpty() bool { return len(b.items) == 0 }
func (b *Bin[T]) Len() int { return len(b.items) }

// FreeSpace returns a copy of the free-space cuboids in tracking order.
func (b *Bin[T]) FreeSpace() []model.Cuboid[T] {
	out := make([]model.Cuboid[T], len(b.free))
	copy(out, b.free)
	return out
}

// Items returns a copy of the placed items in placement order.
func (b *Bin[T]) Items() []model.Item[T] {
	out := make([]model.Item[T], len(b.items))
	copy(out, b.items)
	return out
}

// Fits reports whether any free cuboid can hold item.
func (b *Bin[T]) Fits(item model.Item[T]) bool {
	return b.firstFit(item) >= 0
}

func (b *Bin[T]) firstFit(item model.Item[T]) int {
	for i, c := range b.free {
		if c.Fits(item.Cuboid) {
			return i
		}
	}
	return -1
}

// TryPlace puts item into the first free cuboid that holds it, replacing that
// cuboid with the split leftovers. It returns false without touching the bin
// when nothing fits.
func (b *Bin[T]) TryPlace(item model.Item[T]) (bool, error) {
	idx := b.firstFit(item)
	if idx < 0 {
		return false, nil
	}

	leftovers, err := Split(b.free[idx], item.Cuboid, b.tolerance)
	if err != nil {
		return false, fmt.Errorf("place %q in bin %s: %w: %w", item.ID, b.id, ErrInvariantViolated, err)
	}

	free := make([]model.Cuboid[T], 0, len(b.free)-1+len(leftovers))
	free = append(free, b.free[:idx]...)
	free = append(free, b.free[idx+1:]...)
	free = append(free, leftovers...)

	b.free = free
	b.items = append(b.items, item)
	return true, nil
}

// CloneEmpty opens a fresh bin with the same template and tolerance.
func (b *Bin[T]) CloneEmpty() *Bin[T] {
	return NewBin(b.template, b.tolerance)
}

// Result snapshots the bin for reporting.
func (b *Bin[T]) Result() model.BinResult[T] {
	return model.BinResult[T]{
		ID:        b.id,
		Container: b.template,
		Items:     b.Items(),
		FreeSpace: b.FreeSpace(),
	}
}
