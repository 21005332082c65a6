package model

import "golang.org/x/exp/constraints"

// Scalar is the numeric type a packing run is parameterized over. One edge
// length and one volume share the same type.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Compare orders a and b. Values that are neither less nor greater than each
// other (NaN for floating types) compare as equal.
func Compare[T Scalar](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// AtLeastDouble reports whether a >= 2*b without computing 2*b, so narrow and
// unsigned types cannot overflow.
func AtLeastDouble[T Scalar](a, b T) bool {
	return a >= b && a-b >= b
}

// WithinTolerance reports whether a and b differ by at most tol.
// A zero tolerance means exact equality.
func WithinTolerance[T Scalar](a, b, tol T) bool {
	if a == b {
		return true
	}
	if tol <= 0 {
		return false
	}
	if a > b {
		return a-b <= tol
	}
	return b-a <= tol
}
