// Package binpack packs cuboid items into the fewest identical cuboid bins
// it can find with a first-fit-decreasing heuristic.
//
// Results are approximate. Every item is placed or the call fails up front
// when some item cannot fit an empty bin in any rotation.
package binpack

import (
	"github.com/piwi3910/BoxFit/internal/engine"
	"github.com/piwi3910/BoxFit/internal/model"
	"github.com/piwi3910/BoxFit/pkg/logger"
)

// Scalar is any integer or floating-point type.
type Scalar = model.Scalar

// Input is one item to pack. Dims may be given in any order and IDs need not
// be unique.
type Input[T Scalar] struct {
	ID   string
	Dims [3]T
}

// FeasibilityError names every item that cannot fit an empty bin.
type FeasibilityError = engine.FeasibilityError

var (
	ErrItemsNoFit        = engine.ErrItemsNoFit
	ErrInvariantViolated = engine.ErrInvariantViolated
	ErrIterationLimit    = engine.ErrIterationLimit
	ErrVolumeOverflow    = engine.ErrVolumeOverflow
)

// Option configures a Pack call.
type Option[T Scalar] = engine.Option[T]

// WithTolerance treats a bin edge within tol of an item edge as an exact fit.
func WithTolerance[T Scalar](tol T) Option[T] {
	return engine.WithTolerance(tol)
}

// WithMaxIterations caps the number of placement attempts.
func WithMaxIterations[T Scalar](n int) Option[T] {
	return engine.WithMaxIterations[T](n)
}

// WithLogger routes packing events to l.
func WithLogger[T Scalar](l *logger.Logger) Option[T] {
	return engine.WithLogger[T](l)
}

// Pack returns the item IDs grouped per bin, bins in the order they were
// opened and IDs in placement order.
func Pack[T Scalar](bin [3]T, items []Input[T], opts ...Option[T]) ([][]string, error) {
	converted := make([]model.Item[T], len(items))
	for i, in := range items {
		converted[i] = model.NewItem(in.ID, in.Dims)
	}

	result, err := engine.New(opts...).Pack(model.CuboidOf(bin), converted)
	if err != nil {
		return nil, err
	}
	return result.Groups(), nil
}

// Split places item into container and returns the leftover free space as
// sorted edge triples, smallest volume first.
func Split[T Scalar](container, item [3]T) ([][3]T, error) {
	leftovers, err := engine.Split(model.CuboidOf(container), model.CuboidOf(item), 0)
	if err != nil {
		return nil, err
	}
	out := make([][3]T, len(leftovers))
	for i, l := range leftovers {
		out[i] = l.Dims()
	}
	return out, nil
}

// Fits reports whether item fits container in some axis-aligned rotation.
func Fits[T Scalar](container, item [3]T) bool {
	return model.CuboidOf(container).Fits(model.CuboidOf(item))
}
