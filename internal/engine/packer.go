package engine

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/piwi3910/BoxFit/internal/model"
	"github.com/piwi3910/BoxFit/pkg/logger"
	"go.uber.org/multierr"
)

// Packer runs first-fit-decreasing packing into identical bins.
type Packer[T model.Scalar] struct {
	tolerance     T
	maxIterations int
	log           *logger.Logger
}

// Option configures a Packer.
type Option[T model.Scalar] func(*Packer[T])

// WithTolerance sets the exact-fit tolerance used when splitting free space.
func WithTolerance[T model.Scalar](tol T) Option[T] {
	return func(p *Packer[T]) {
		p.tolerance = tol
	}
}

// WithMaxIterations caps the number of placement attempts. Zero disables the cap.
func WithMaxIterations[T model.Scalar](n int) Option[T] {
	return func(p *Packer[T]) {
		p.maxIterations = n
	}
}

// WithLogger sets the logger used for placement and run summaries. A nil
// logger keeps the no-op default.
func WithLogger[T model.Scalar](l *logger.Logger) Option[T] {
	return func(p *Packer[T]) {
		if l != nil {
			p.log = l
		}
	}
}

// New returns a packer with exact fits, no iteration cap and a no-op logger,
// adjusted by opts.
func New[T model.Scalar](opts ...Option[T]) *Packer[T] {
	p := &Packer[T]{log: logger.Nop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewFromSettings builds a packer from persisted settings. Extra options are
// applied after the settings.
func NewFromSettings[T model.Scalar](s model.Settings, opts ...Option[T]) *Packer[T] {
	base := []Option[T]{
		WithTolerance(T(s.Tolerance)),
		WithMaxIterations[T](s.MaxIterations),
	}
	return New(append(base, opts...)...)
}

// Pack assigns every item to a bin shaped like container. Items are taken
// longest edge first; each bin is filled until no remaining item fits, then
// closed. Either every item is placed or an error is returned and no bins are.
func (p *Packer[T]) Pack(container model.Cuboid[T], items []model.Item[T]) (model.PackResult[T], error) {
	log := p.log.With("run", uuid.New().String()[:8])

	if err := CheckFeasibility(container, items); err != nil {
		log.Warn("items rejected", "bin", container.String(), "error", err)
		return model.PackResult[T]{}, err
	}

	remaining := make([]model.Item[T], len(items))
	copy(remaining, items)
	sort.SliceStable(remaining, func(i, j int) bool {
		return model.CompareLongest(remaining[i], remaining[j]) > 0
	})

	result := model.PackResult[T]{Container: container, Bins: []model.BinResult[T]{}}
	current := NewBin(container, p.tolerance)
	attempts := 0

	for len(remaining) > 0 {
		placed := false
		for i, it := range remaining {
			attempts++
			if p.maxIterations > 0 && attempts > p.maxIterations {
				return model.PackResult[T]{}, fmt.Errorf("after %d placement attempts with %d item(s) left: %w",
					p.maxIterations, len(remaining), ErrIterationLimit)
			}

			ok, err := current.TryPlace(it)
			if err != nil {
				return model.PackResult[T]{}, err
			}
			if ok {
				log.Debug("placed item", "item", it.ID, "dims", it.Cuboid.String(),
					"bin", len(result.Bins), "free", len(current.free))
				remaining = append(remaining[:i], remaining[i+1:]...)
				placed = true
				break
			}
		}
		if placed {
			continue
		}

		if current.IsEmpty() {
			return model.PackResult[T]{}, fmt.Errorf("item %q does not fit an empty bin: %w",
				remaining[0].ID, ErrInvariantViolated)
		}
		log.Debug("bin full", "bin", len(result.Bins), "items", current.Len())
		result.Bins = append(result.Bins, current.Result())
		current = current.CloneEmpty()
	}

	if !current.IsEmpty() {
		result.Bins = append(result.Bins, current.Result())
	}

	log.Info("pack complete",
		"items", len(items),
		"bins", len(result.Bins),
		"efficiency", fmt.Sprintf("%.1f%%", result.TotalEfficiency()))
	return result, nil
}

// CheckFeasibility verifies every item fits the empty container in some
// rotation. All offending items are reported in one *FeasibilityError. A
// container whose volume overflows T fails with ErrVolumeOverflow first.
func CheckFeasibility[T model.Scalar](container model.Cuboid[T], items []model.Item[T]) error {
	if !container.VolumeInRange() {
		return fmt.Errorf("bin %s: %w", container, ErrVolumeOverflow)
	}
	var errs error
	var rejected []string
	for _, it := range items {
		switch {
		case it.Cuboid.IsDegenerate():
			multierr.AppendInto(&errs, fmt.Errorf("item %q (%s) has a non-positive edge", it.ID, it.Cuboid))
		case !container.Fits(it.Cuboid):
			multierr.AppendInto(&errs, fmt.Errorf("item %q (%s) exceeds bin %s: %w", it.ID, it.Cuboid, container, ErrNoFit))
		default:
			continue
		}
		rejected = append(rejected, it.ID)
	}
	if errs == nil {
		return nil
	}
	return &FeasibilityError{Items: rejected, Err: errs}
}
