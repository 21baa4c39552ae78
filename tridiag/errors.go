// SPDX-License-Identifier: MIT
// Package tridiag: sentinel error set.
//
// Categories are plain sentinels; specific conditions wrap their category with
// %w so errors.Is matches both the specific and the category sentinel.

package tridiag

import (
	"errors"
	"fmt"
)

var (
	// ErrPrecondition is the category for malformed systems (shape contract).
	ErrPrecondition = errors.New("tridiag: precondition violated")

	// ErrNumericalInstability is the category for numeric breakdowns during a solve.
	ErrNumericalInstability = errors.New("tridiag: numerical instability")
)

var (
	// ErrTooSmall — fewer than two rows.
	ErrTooSmall = fmt.Errorf("%w: system needs at least two rows", ErrPrecondition)

	// ErrLengthMismatch — a, b, c, d or the workspace disagree in length.
	ErrLengthMismatch = fmt.Errorf("%w: diagonal lengths mismatch", ErrPrecondition)

	// ErrNoColumns — Cols < 1.
	ErrNoColumns = fmt.Errorf("%w: right-hand side needs at least one column", ErrPrecondition)

	// ErrNilSystem — Solve was handed a nil *System.
	ErrNilSystem = fmt.Errorf("%w: nil system", ErrPrecondition)

	// ErrZeroPivot — an elimination pivot fell within tolerance of zero.
	ErrZeroPivot = fmt.Errorf("%w: zero pivot", ErrNumericalInstability)

	// ErrDegenerateCorrection — the Sherman-Morrison denominator 1+vᵀq vanished.
	ErrDegenerateCorrection = fmt.Errorf("%w: degenerate rank-one correction", ErrNumericalInstability)

	// ErrNonFinite — the solution contains NaN or ±Inf.
	ErrNonFinite = fmt.Errorf("%w: non-finite solution", ErrNumericalInstability)
)
