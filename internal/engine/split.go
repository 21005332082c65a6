package engine

import (
	"fmt"
	"sort"

	"github.com/piwi3910/BoxFit/internal/model"
)

type fitKind int

const (
	doubledFit fitKind = iota
	exactFit
	greaterThanFit
)

// Split places item into container and returns the leftover free space,
// ascending by volume. Degenerate pieces are dropped. A container whose
// volume overflows T is rejected with ErrVolumeOverflow.
//
// tol widens the exact-fit test along the primary axis: a container edge
// within tol of the item's longest edge is consumed whole. Zero means exact
// equality.
func Split[T model.Scalar](container, item model.Cuboid[T], tol T) ([]model.Cuboid[T], error) {
	if !container.VolumeInRange() {
		return nil, fmt.Errorf("split %s into %s: %w", item, container, ErrVolumeOverflow)
	}
	if !container.Fits(item) {
		return nil, fmt.Errorf("split %s into %s: %w", item, container, ErrNoFit)
	}

	c := container.Dims()
	it := item.Dims()
	longest := it[2]

	kind, side1, err := primarySide(c, longest, tol)
	if err != nil {
		return nil, fmt.Errorf("split %s into %s: %w", item, container, err)
	}

	pieces := make([]model.Cuboid[T], 0, 3)
	switch kind {
	case doubledFit:
		// Carve off the far part of the axis and narrow the working container.
		pieces = append(pieces, model.NewCuboid(c[side1]-longest, c[(side1+2)%3], c[(side1+1)%3]))
		c[side1] = longest
	case greaterThanFit:
		pieces = append(pieces, model.NewCuboid(c[side1]-longest, it[0], it[1]))
	}

	side2, side3 := secondarySides(c, it, side1)

	a1 := model.NewCuboid(c[side1], c[side2], c[side3]-it[0])
	a2 := model.NewCuboid(c[side1], c[side2]-it[1], it[0])
	b1 := model.NewCuboid(c[side1], c[side2]-it[1], c[side3])
	b2 := model.NewCuboid(c[side1], c[side3]-it[0], it[1])

	if a1.Volume() < b1.Volume() {
		pieces = append(pieces, a1, a2)
	} else {
		pieces = append(pieces, b1, b2)
	}

	leftovers := pieces[:0]
	for _, p := range pieces {
		if !p.IsDegenerate() {
			leftovers = append(leftovers, p)
		}
	}
	sort.SliceStable(leftovers, func(i, j int) bool {
		return leftovers[i].Volume() < leftovers[j].Volume()
	})
	return leftovers, nil
}

// primarySide classifies the container edges against the item's longest edge
// and returns the axis to act on. Between a doubled and an exact candidate the
// lower axis index wins.
func primarySide[T model.Scalar](c [3]T, longest, tol T) (fitKind, int, error) {
	doubled, exact := -1, -1
	for i, d := range c {
		if doubled < 0 && model.AtLeastDouble(d, longest) {
			doubled = i
		}
		if exact < 0 && d >= longest && model.WithinTolerance(d, longest, tol) {
			exact = i
		}
	}

	switch {
	case doubled >= 0 && exact >= 0:
		if doubled <= exact {
			return doubledFit, doubled, nil
		}
		return exactFit, exact, nil
	case doubled >= 0:
		return doubledFit, doubled, nil
	case exact >= 0:
		return exactFit, exact, nil
	}

	for i, d := range c {
		if d >= longest {
			return greaterThanFit, i, nil
		}
	}
	return 0, 0, fmt.Errorf("no container edge holds item edge %v: %w", longest, ErrInvariantViolated)
}

// secondarySides picks the two remaining axes so the item's middle edge is
// never matched against an axis too short to hold it.
func secondarySides[T model.Scalar](c, it [3]T, side1 int) (int, int) {
	next, last := (side1+1)%3, (side1+2)%3
	switch {
	case it[1] > c[last]:
		return next, last
	case it[1] > c[next]:
		return last, next
	default:
		return next, last
	}
}
