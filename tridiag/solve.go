// SPDX-License-Identifier: MIT

package tridiag

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pcspline/storage"
)

const opSolve = "Solve"

// solveErrorf tags err with the operation; err must be non-nil.
func solveErrorf(err error) error {
	return fmt.Errorf("%s: %w", opSolve, err)
}

// Solve solves the system in place: on success D holds the solution, row-major.
//
// Implementation:
//   - Stage 1: validate the shape contract.
//   - Stage 2 (perturbed only): with vn = a0/b0, set q = (−b0, 0, …, 0, cn-1),
//     zero both corners, double b0 and add cn-1·vn to bn-1. The coefficient
//     matrix is now strictly tridiagonal and A = A' + q·(1, 0, …, 0, −vn)ᵀ.
//   - Stage 3: forward elimination over D (all columns) and q.
//   - Stage 4: back substitution over D and q.
//   - Stage 5 (perturbed only): per column j, k = (y0 − vn·yn-1)/(1 + q0 − vn·qn-1)
//     and x = y − k·q.
//   - Stage 6: reject non-finite results.
//
// Errors:
//   - ErrPrecondition family for malformed input (nothing is modified).
//   - ErrNumericalInstability family (ErrZeroPivot, ErrDegenerateCorrection,
//     ErrNonFinite); A/B/C/D are left partially eliminated.
//
// Complexity:
//   - Time O(n·m), Space O(n) only when perturbed and Q is nil.
func Solve[T storage.Float](s *System[T], opts ...Option) error {
	if err := s.Validate(); err != nil {
		return solveErrorf(err)
	}
	o := gatherOptions(opts...)
	eps := o.eps

	n, m := len(s.B), s.Cols
	a, b, c, d := s.A, s.B, s.C, s.D

	perturbed := s.Regime() == Perturbed
	var (
		q  []T
		vn T
	)
	if perturbed {
		if s.Q != nil {
			q = s.Q[:n]
			clear(q)
		} else {
			q = make([]T, n)
		}
		if isZeroPivot(b[0], eps) {
			return solveErrorf(fmt.Errorf("row 0: %w", ErrZeroPivot))
		}

		vn = a[0] / b[0]
		q[0] = -b[0]
		q[n-1] = c[n-1]
		a[0] = 0
		b[0] = 2 * b[0]
		b[n-1] += c[n-1] * vn
		c[n-1] = 0
	}

	// Forward elimination, i = 1 … n-1.
	var f T
	for i := 1; i < n; i++ {
		if isZeroPivot(b[i-1], eps) {
			return solveErrorf(fmt.Errorf("row %d: %w", i-1, ErrZeroPivot))
		}
		f = a[i] / b[i-1]
		b[i] -= f * c[i-1]
		if perturbed {
			q[i] -= f * q[i-1]
		}
		row, prev := d[i*m:(i+1)*m], d[(i-1)*m:i*m]
		for j := range row {
			row[j] -= f * prev[j]
		}
	}

	// Back substitution, i = n-1 … 0.
	if isZeroPivot(b[n-1], eps) {
		return solveErrorf(fmt.Errorf("row %d: %w", n-1, ErrZeroPivot))
	}
	last := d[(n-1)*m:]
	for j := range last {
		last[j] /= b[n-1]
	}
	if perturbed {
		q[n-1] /= b[n-1]
	}
	for i := n - 2; i >= 0; i-- {
		row, next := d[i*m:(i+1)*m], d[(i+1)*m:(i+2)*m]
		for j := range row {
			row[j] = (row[j] - c[i]*next[j]) / b[i]
		}
		if perturbed {
			q[i] = (q[i] - c[i]*q[i+1]) / b[i]
		}
	}

	if perturbed {
		den := 1 + q[0] - q[n-1]*vn
		if isZeroPivot(den, eps) {
			return solveErrorf(ErrDegenerateCorrection)
		}
		var k T
		for j := 0; j < m; j++ {
			k = (d[j] - d[(n-1)*m+j]*vn) / den
			for i := 0; i < n; i++ {
				d[i*m+j] -= k * q[i]
			}
		}
	}

	if err := storage.ValidateFinite(d); err != nil {
		return solveErrorf(fmt.Errorf("%w: %w", ErrNonFinite, err))
	}

	return nil
}

// isZeroPivot reports whether |v| ≤ eps or v is not a number.
func isZeroPivot[T storage.Float](v T, eps float64) bool {
	f := float64(v)

	return math.IsNaN(f) || math.Abs(f) <= eps
}
