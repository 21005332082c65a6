package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Cuboid is an axis-aligned box described only by its three edge lengths.
// The edges are always kept in ascending order, so two cuboids can be
// compared edge by edge regardless of how they were oriented on input.
type Cuboid[T Scalar] struct {
	dims [3]T
}

// NewCuboid builds a cuboid from three edge lengths given in any order.
func NewCuboid[T Scalar](a, b, c T) Cuboid[T] {
	dims := [3]T{a, b, c}
	// Insertion sort keeps equal (and incomparable) edges in input order.
	for i := 1; i < len(dims); i++ {
		for j := i; j > 0 && Compare(dims[j-1], dims[j]) > 0; j-- {
			dims[j-1], dims[j] = dims[j], dims[j-1]
		}
	}
	return Cuboid[T]{dims: dims}
}

// CuboidOf builds a cuboid from an edge triple.
func CuboidOf[T Scalar](dims [3]T) Cuboid[T] {
	return NewCuboid(dims[0], dims[1], dims[2])
}

// Dims returns the sorted edge lengths.
func (c Cuboid[T]) Dims() [3]T {
	return c.dims
}

// Shortest returns the smallest edge.
func (c Cuboid[T]) Shortest() T { return c.dims[0] }

// Middle returns the middle edge.
func (c Cuboid[T]) Middle() T { return c.dims[1] }

// Longest returns the largest edge.
func (c Cuboid[T]) Longest() T { return c.dims[2] }

// Volume returns the product of the three edges.
func (c Cuboid[T]) Volume() T {
	return c.dims[0] * c.dims[1] * c.dims[2]
}

// VolumeInRange reports whether Volume can be represented in T. Integer
// products wrap and float32 products overflow to +Inf, so both are checked
// against the same product taken in float64.
func (c Cuboid[T]) VolumeInRange() bool {
	exact := float64(c.dims[0]) * float64(c.dims[1]) * float64(c.dims[2])
	got := float64(c.Volume())
	if exact == 0 {
		return got == 0
	}
	return math.Abs(got-exact) <= math.Abs(exact)*1e-6
}

// Fits reports whether other can be rotated to fit inside c.
// Both cuboids are sorted, so one element-wise comparison covers all six
// axis-aligned orientations.
func (c Cuboid[T]) Fits(other Cuboid[T]) bool {
	for i := range c.dims {
		if !(c.dims[i] >= other.dims[i]) {
			return false
		}
	}
	return true
}

// IsDegenerate reports whether the cuboid has no volume, i.e. its smallest
// edge is not strictly positive.
func (c Cuboid[T]) IsDegenerate() bool {
	return !(c.dims[0] > 0)
}

// Equal reports whether both cuboids have the same sorted edges.
func (c Cuboid[T]) Equal(other Cuboid[T]) bool {
	return c.dims == other.dims
}

// String formats the cuboid as "AxBxC".
func (c Cuboid[T]) String() string {
	parts := make([]string, len(c.dims))
	for i, d := range c.dims {
		parts[i] = fmt.Sprint(d)
	}
	return strings.Join(parts, "x")
}

// MarshalJSON encodes the cuboid as its sorted edge array.
func (c Cuboid[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.dims)
}

// UnmarshalJSON decodes an edge array in any order.
func (c *Cuboid[T]) UnmarshalJSON(data []byte) error {
	var dims [3]T
	if err := json.Unmarshal(data, &dims); err != nil {
		return err
	}
	*c = CuboidOf(dims)
	return nil
}

// Float64Dims converts the sorted edges to float64 for reporting.
func (c Cuboid[T]) Float64Dims() [3]float64 {
	return [3]float64{float64(c.dims[0]), float64(c.dims[1]), float64(c.dims[2])}
}
