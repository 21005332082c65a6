package engine

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrItemsNoFit is the user-facing feasibility failure: at least one item
	// cannot fit the empty bin in any rotation.
	ErrItemsNoFit = errors.New("all items must fit within the bin dimensions")

	// ErrNoFit is returned by Split when the item does not fit the container.
	ErrNoFit = errors.New("item does not fit in container")

	// ErrInvariantViolated marks an internal programming error. It is never
	// expected to surface through Pack.
	ErrInvariantViolated = errors.New("internal invariant violated")

	// ErrVolumeOverflow is returned when the bin volume cannot be computed
	// in the chosen edge type. Every free-space cuboid is at most as large as
	// the bin, so checking the bin covers the whole run.
	ErrVolumeOverflow = errors.New("bin volume overflows the edge type")

	// ErrIterationLimit is returned when a packer configured with
	// WithMaxIterations runs out of placement attempts.
	ErrIterationLimit = errors.New("iteration limit exceeded")
)

// FeasibilityError lists every item rejected by the pre-packing guard.
// It matches ErrItemsNoFit with errors.Is.
type FeasibilityError struct {
	Items []string
	Err   error // per-item errors combined with multierr
}

func (e *FeasibilityError) Error() string {
	return fmt.Sprintf("%v: %d item(s) exceed the bin: %s",
		ErrItemsNoFit, len(e.Items), strings.Join(e.Items, ", "))
}

func (e *FeasibilityError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrItemsNoFit}
	}
	return []error{ErrItemsNoFit, e.Err}
}
