// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"

	"github.com/katalvlaran/pcspline/storage"
	"github.com/katalvlaran/pcspline/tridiag"
)

// BuildSystem fills sys with the moment system for n points of m dimensions
// (points is row-major, len n*m). sys.A, sys.B, sys.C must have length n,
// sys.D length n*m and sys.Cols == m; nothing is allocated.
//
// Row rules (interior 0 < i < n-1):
//
//	a=1, b=4, c=1, d[i] = 6·((p[i+1]-p[i]) - (p[i]-p[i-1]))
//
// Left end (i = 0):
//
//	Natural  a=0, b=1, c=0, d=0
//	Hermite  a=0, b=2, c=1, d=6·((p[1]-p[0]) - tL)
//	Periodic a=1, b=4, c=1, d=6·((p[1]-p[0]) - (p[0]-p[n-1]))
//
// Right end (i = n-1):
//
//	Natural  a=0, b=1, c=0, d=0
//	Hermite  a=1, b=2, c=0, d=6·(tR - (p[n-1]-p[n-2]))
//	Periodic a=1, b=4, c=1, d=6·((p[0]-p[n-1]) - (p[n-1]-p[n-2]))
//
// A Periodic end leaves a[0] or c[n-1] non-zero, which is what routes
// tridiag.Solve into its perturbed regime. With n == 2 there are no
// interior rows.
//
// Errors:
//   - ErrTooFewPoints, ErrInvalidDimensions, ErrDimensionMismatch,
//     ErrUnsupportedBoundary, ErrTangentLength.
//   - tridiag.ErrLengthMismatch when sys is not shaped n/n*m.
func BuildSystem[T storage.Float](points []T, n, m int, ends Ends[T], sys *tridiag.System[T]) error {
	if err := validateInput(points, n, m, ends); err != nil {
		return splineErrorf(opBuild, err)
	}
	if sys == nil {
		return splineErrorf(opBuild, tridiag.ErrNilSystem)
	}
	if len(sys.A) != n || len(sys.B) != n || len(sys.C) != n || len(sys.D) != n*m || sys.Cols != m {
		return splineErrorf(opBuild, fmt.Errorf("system shaped for n=%d m=%d: %w", n, m, tridiag.ErrLengthMismatch))
	}
	buildRows(points, n, m, ends, sys.A, sys.B, sys.C, sys.D)

	return nil
}

// validateInput checks the shape contract shared by BuildSystem and Configure.
func validateInput[T storage.Float](points []T, n, m int, ends Ends[T]) error {
	if n < 2 {
		return fmt.Errorf("n=%d: %w", n, ErrTooFewPoints)
	}
	if m < 1 {
		return fmt.Errorf("m=%d: %w", m, ErrInvalidDimensions)
	}
	if len(points) != n*m {
		return fmt.Errorf("len(points)=%d, want %d×%d: %w", len(points), n, m, ErrDimensionMismatch)
	}

	return ends.validate(m)
}

// buildRows writes every row; inputs are assumed valid.
func buildRows[T storage.Float](points []T, n, m int, ends Ends[T], a, b, c, d []T) {
	p := func(i, j int) T { return points[i*m+j] }
	last := n - 1

	// Interior rows first; the end rows are written afterwards.
	for i := 1; i < last; i++ {
		a[i], b[i], c[i] = 1, 4, 1
		for j := 0; j < m; j++ {
			d[i*m+j] = 6 * ((p(i+1, j) - p(i, j)) - (p(i, j) - p(i-1, j)))
		}
	}

	row := d[:m]
	switch ends.Left {
	case Hermite:
		a[0], b[0], c[0] = 0, 2, 1
		for j := range row {
			row[j] = 6 * ((p(1, j) - p(0, j)) - tangentAt(ends.LeftTangent, j))
		}
	case Periodic:
		a[0], b[0], c[0] = 1, 4, 1
		for j := range row {
			row[j] = 6 * ((p(1, j) - p(0, j)) - (p(0, j) - p(last, j)))
		}
	default: // Natural
		a[0], b[0], c[0] = 0, 1, 0
		clear(row)
	}

	row = d[last*m:]
	switch ends.Right {
	case Hermite:
		a[last], b[last], c[last] = 1, 2, 0
		for j := range row {
			row[j] = 6 * (tangentAt(ends.RightTangent, j) - (p(last, j) - p(last-1, j)))
		}
	case Periodic:
		a[last], b[last], c[last] = 1, 4, 1
		for j := range row {
			row[j] = 6 * ((p(0, j) - p(last, j)) - (p(last, j) - p(last-1, j)))
		}
	default: // Natural
		a[last], b[last], c[last] = 0, 1, 0
		clear(row)
	}
}

// tangentAt returns component j of an optional tangent (absent ⇒ 0).
func tangentAt[T storage.Float](tangent []T, j int) T {
	if tangent == nil {
		return 0
	}

	return tangent[j]
}
