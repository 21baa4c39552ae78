// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"

	"github.com/katalvlaran/pcspline/storage"
)

// Condition selects how one end of the spline is closed off.
type Condition int

const (
	// Natural forces the moment (second derivative) at the end to zero.
	Natural Condition = iota

	// Hermite prescribes the first derivative at the end via a tangent.
	Hermite

	// Periodic couples the end to the opposite end point.
	Periodic

	// NotAKnot is reserved and rejected by Configure.
	NotAKnot
)

// String implements fmt.Stringer.
func (c Condition) String() string {
	switch c {
	case Natural:
		return "natural"
	case Hermite:
		return "hermite"
	case Periodic:
		return "periodic"
	case NotAKnot:
		return "not-a-knot"
	default:
		return fmt.Sprintf("Condition(%d)", int(c))
	}
}

// Ends bundles the two end conditions with their optional tangents.
//
// A nil tangent is "absent" and behaves as the zero vector; a non-nil tangent
// must have exactly m components. Tangents are read only for Hermite ends.
// The zero value is Natural/Natural.
//
// Tangents are derivatives with respect to the local segment parameter
// t ∈ [0,1], not the global position s; Derivative reports the same unit.
type Ends[T storage.Float] struct {
	Left, Right               Condition
	LeftTangent, RightTangent []T
}

// validate checks both conditions and tangent lengths against m.
func (e Ends[T]) validate(m int) error {
	for _, side := range []struct {
		name    string
		cond    Condition
		tangent []T
	}{
		{"left", e.Left, e.LeftTangent},
		{"right", e.Right, e.RightTangent},
	} {
		switch side.cond {
		case Natural, Hermite, Periodic:
		default:
			return fmt.Errorf("%s end %v: %w", side.name, side.cond, ErrUnsupportedBoundary)
		}
		if side.cond == Hermite && side.tangent != nil && len(side.tangent) != m {
			return fmt.Errorf("%s tangent has %d components, want %d: %w",
				side.name, len(side.tangent), m, ErrTangentLength)
		}
	}

	return nil
}

// periodic reports whether both ends are Periodic.
func (e Ends[T]) periodic() bool {
	return e.Left == Periodic && e.Right == Periodic
}
