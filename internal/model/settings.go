package model

import "fmt"

// ScalarKind names the numeric type a packing run is instantiated with.
type ScalarKind string

const (
	ScalarInt     ScalarKind = "int"
	ScalarInt64   ScalarKind = "int64"
	ScalarUint32  ScalarKind = "uint32"
	ScalarFloat32 ScalarKind = "float32"
	ScalarFloat64 ScalarKind = "float64"
)

// ScalarKinds lists the supported scalar kinds.
var ScalarKinds = []ScalarKind{ScalarInt, ScalarInt64, ScalarUint32, ScalarFloat32, ScalarFloat64}

// ParseScalarKind validates a scalar kind name.
func ParseScalarKind(s string) (ScalarKind, error) {
	for _, k := range ScalarKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unsupported scalar type %q", s)
}

// IsInteger reports whether the kind truncates fractional edges.
func (k ScalarKind) IsInteger() bool {
	return k == ScalarInt || k == ScalarInt64 || k == ScalarUint32
}

// Settings holds packer configuration.
type Settings struct {
	Scalar        ScalarKind `json:"scalar"`         // Numeric type used for the run
	Tolerance     float64    `json:"tolerance"`      // ExactFit tolerance; 0 = strict equality
	MaxIterations int        `json:"max_iterations"` // Placement attempts cap; 0 = unlimited
	MinLeftover   float64    `json:"min_leftover"`   // Smallest edge of a reported leftover
}

func DefaultSettings() Settings {
	return Settings{
		Scalar:        ScalarFloat64,
		Tolerance:     0,
		MaxIterations: 0,
		MinLeftover:   MinLeftoverDimension,
	}
}
