// SPDX-License-Identifier: MIT

// Package tridiag solves tridiagonal linear systems with several right-hand
// sides in linear time.
//
// 🚀 What is solved?
//
//	| b0 c0          a0 |   | x0   |   | d0   |
//	| a1 b1 c1          |   | x1   |   | d1   |
//	|    ..  ..  ..     | * | ..   | = | ..   |
//	| cn         an bn  |   | xn-1 |   | dn-1 |
//
//	a, b and c are the sub-, main- and super-diagonal. The corner entries a0
//	(row 0, last column) and cn-1 (last row, column 0) are normally zero; when
//	either is non-zero the system is "perturbed" (corner coupled), which is
//	what periodic spline ends produce.
//
// ✨ Regimes:
//   - Strict   : a0 == 0 && cn-1 == 0: the classical Thomas algorithm
//     (forward elimination, back substitution).
//   - Perturbed: the corners are folded into a rank-one update; the reduced
//     strictly tridiagonal system is solved for D and for an auxiliary column
//     q in the same sweep, then the Sherman-Morrison correction restores the
//     solution of the coupled system.
//
// ⚙️ Usage:
//
//	sys := &tridiag.System[float64]{A: a, B: b, C: c, D: d, Cols: m}
//	if err := tridiag.Solve(sys); err != nil {
//		// errors.Is(err, tridiag.ErrPrecondition) / ErrNumericalInstability
//	}
//	// d now holds x, row-major n×m
//
// Performance:
//   - Time:   O(n·m)
//   - Memory: O(1) extra in the strict regime, O(n) for q when perturbed
//     (none if System.Q is supplied).
//
// Solve works in place: A, B, C and D are all overwritten. Do not share
// those slices between concurrent solves.
package tridiag
