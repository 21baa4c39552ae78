// SPDX-License-Identifier: MIT
// Package spline: sentinel error set.
//
// Three categories mirror where a failure originates:
//   - ErrConfiguration: Configure/BuildSystem rejected the input.
//   - ErrPrecondition: an evaluation was attempted in an invalid state or
//     with unusable arguments.
//   - ErrNumericalInstability: the moment system could not be solved.
//
// Specific sentinels wrap their category with %w, so errors.Is matches both.
// Every message is prefixed with "spline: ..." for grep-ability.

package spline

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pcspline/tridiag"
)

var (
	// ErrConfiguration is the category for rejected Configure input.
	ErrConfiguration = errors.New("spline: invalid configuration")

	// ErrPrecondition is the category for evaluation misuse.
	ErrPrecondition = errors.New("spline: precondition violated")

	// ErrNumericalInstability aliases the solver's category so callers can
	// match solver failures without importing tridiag.
	ErrNumericalInstability = tridiag.ErrNumericalInstability
)

var (
	// ErrTooFewPoints — n < 2.
	ErrTooFewPoints = fmt.Errorf("%w: need at least two points", ErrConfiguration)

	// ErrInvalidDimensions — m < 1.
	ErrInvalidDimensions = fmt.Errorf("%w: need at least one dimension", ErrConfiguration)

	// ErrDimensionMismatch — len(points) != n*m.
	ErrDimensionMismatch = fmt.Errorf("%w: point buffer length is not points×dims", ErrConfiguration)

	// ErrUnsupportedBoundary — NotAKnot or an unknown Condition.
	ErrUnsupportedBoundary = fmt.Errorf("%w: unsupported boundary condition", ErrConfiguration)

	// ErrTangentLength — a supplied tangent does not have m components.
	ErrTangentLength = fmt.Errorf("%w: tangent length is not dims", ErrConfiguration)

	// ErrNaNInf — a point or tangent component is NaN or ±Inf.
	ErrNaNInf = fmt.Errorf("%w: NaN or Inf in input", ErrConfiguration)

	// ErrCapacityExceeded — the problem does not fit a fixed-capacity Spline.
	ErrCapacityExceeded = fmt.Errorf("%w: fixed capacity exceeded", ErrConfiguration)

	// ErrClosedLoopNeedsPeriodic — WithClosedLoop used with non-periodic ends.
	ErrClosedLoopNeedsPeriodic = fmt.Errorf("%w: closed loop requires periodic ends", ErrConfiguration)
)

var (
	// ErrNotConfigured — evaluation before a successful Configure.
	ErrNotConfigured = fmt.Errorf("%w: spline not configured", ErrPrecondition)

	// ErrOutputTooShort — the output buffer cannot hold the result.
	ErrOutputTooShort = fmt.Errorf("%w: output buffer too short", ErrPrecondition)

	// ErrPositionOutOfRange — position outside [0,1] under the Reject policy.
	ErrPositionOutOfRange = fmt.Errorf("%w: position outside [0,1]", ErrPrecondition)

	// ErrNonFinitePosition — position is NaN or ±Inf.
	ErrNonFinitePosition = fmt.Errorf("%w: position is NaN or Inf", ErrPrecondition)

	// ErrNilSpline — a nil *Spline was handed to EvaluateCurves.
	ErrNilSpline = fmt.Errorf("%w: nil spline", ErrPrecondition)
)

// Operation tags for error wrapping.
const (
	opConfigure    = "Configure"
	opBuild        = "BuildSystem"
	opEvaluate     = "Evaluate"
	opEvaluateMany = "EvaluateMany"
	opDerivative   = "Derivative"
	opMoments      = "Moments"
	opCurves       = "EvaluateCurves"
)

// splineErrorf wraps err with an operation tag; err must be non-nil.
func splineErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
