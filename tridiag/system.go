// SPDX-License-Identifier: MIT

package tridiag

import (
	"fmt"

	"github.com/katalvlaran/pcspline/storage"
	"gonum.org/v1/gonum/mat"
)

// Regime names which elimination path a System takes.
type Regime int

const (
	// Strict: a[0] == 0 and c[n-1] == 0.
	Strict Regime = iota

	// Perturbed: corner coupling present; solved via Sherman-Morrison.
	Perturbed
)

// String implements fmt.Stringer.
func (r Regime) String() string {
	switch r {
	case Strict:
		return "strict"
	case Perturbed:
		return "perturbed"
	default:
		return fmt.Sprintf("Regime(%d)", int(r))
	}
}

// System is a tridiagonal (optionally corner-coupled) system with Cols
// right-hand sides.
//
// Fields:
//   - A, B, C: sub-, main- and super-diagonal, each of length n. Row i of
//     A/B/C/D belongs to unknown i. A[0] couples row 0 to column n-1 and
//     C[n-1] couples row n-1 to column 0.
//   - D: right-hand sides, row-major n×Cols; overwritten with the solution.
//   - Cols: number of right-hand-side columns (≥ 1).
//   - Q: optional workspace of length ≥ n for the perturbed regime. When nil
//     Solve allocates it; owners that solve repeatedly pass their own.
type System[T storage.Float] struct {
	A, B, C []T
	D       []T
	Cols    int
	Q       []T
}

// N returns the number of rows.
func (s *System[T]) N() int { return len(s.B) }

// Validate checks the shape contract without touching any value.
//
// Errors (all wrap ErrPrecondition):
//   - ErrNilSystem, ErrTooSmall, ErrNoColumns, ErrLengthMismatch.
func (s *System[T]) Validate() error {
	if s == nil {
		return ErrNilSystem
	}
	n := len(s.B)
	if n < 2 {
		return fmt.Errorf("n=%d: %w", n, ErrTooSmall)
	}
	if s.Cols < 1 {
		return fmt.Errorf("cols=%d: %w", s.Cols, ErrNoColumns)
	}
	if len(s.A) != n || len(s.C) != n {
		return fmt.Errorf("len(a)=%d len(b)=%d len(c)=%d: %w", len(s.A), n, len(s.C), ErrLengthMismatch)
	}
	if len(s.D) != n*s.Cols {
		return fmt.Errorf("len(d)=%d, want %d×%d: %w", len(s.D), n, s.Cols, ErrLengthMismatch)
	}
	if s.Q != nil && len(s.Q) < n {
		return fmt.Errorf("len(q)=%d < n=%d: %w", len(s.Q), n, ErrLengthMismatch)
	}

	return nil
}

// Regime reports which path Solve will take. The system must be valid.
func (s *System[T]) Regime() Regime {
	if s.A[0] != 0 || s.C[len(s.C)-1] != 0 {
		return Perturbed
	}

	return Strict
}

// Dense expands the system into a full n×n coefficient matrix and an n×Cols
// right-hand side, both as gonum matrices. Corner entries land in column n-1
// (row 0) and column 0 (row n-1); for n == 2 they add onto the neighbours.
// Intended for diagnostics and for cross-checking Solve against a dense
// factorisation. Call it before Solve, which overwrites the inputs.
//
// Complexity: O(n²) memory.
func (s *System[T]) Dense() (coef, rhs *mat.Dense, err error) {
	if err = s.Validate(); err != nil {
		return nil, nil, fmt.Errorf("Dense: %w", err)
	}
	n, m := len(s.B), s.Cols
	coef = mat.NewDense(n, n, nil)
	add := func(i, j int, v T) { coef.Set(i, j, coef.At(i, j)+float64(v)) }
	for i := 0; i < n; i++ {
		add(i, i, s.B[i])
		add(i, (i-1+n)%n, s.A[i])
		add(i, (i+1)%n, s.C[i])
	}

	rhs = mat.NewDense(n, m, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			rhs.Set(i, j, float64(s.D[i*m+j]))
		}
	}

	return coef, rhs, nil
}
