// SPDX-License-Identifier: MIT

// Package spline builds and evaluates parametric cubic splines through an
// ordered sequence of n points in m dimensions.
//
// 🚀 What is a parametric cubic spline?
//
//	Each coordinate is interpolated by a piecewise cubic over the uniform
//	parameter s ∈ [0,1]; point i sits at s = i/(n-1). The unknowns are the
//	second derivatives ("moments") at every point, found by solving one
//	tridiagonal system with m right-hand sides:
//
//	  M[i-1] + 4·M[i] + M[i+1] = 6·((p[i+1]-p[i]) - (p[i]-p[i-1]))
//
//	The first and last rows come from the end conditions.
//
// ✨ End conditions (chosen independently per end):
//   - Natural : zero moment at the end point.
//   - Hermite : prescribed first derivative (tangent); nil tangent means zero.
//   - Periodic: the end couples to the opposite end point, closing the curve;
//     solved through the Sherman-Morrison path of package tridiag.
//   - NotAKnot: reserved; Configure rejects it with ErrUnsupportedBoundary.
//
// ⚙️ Usage:
//
//	sp, _ := spline.New[float64]()
//	pts := []float64{1, 0, -1, 0, 0, 1, 0, -1} // 4 points × 2 dims, row-major
//	if err := sp.Configure(pts, 4, 2, spline.Ends[float64]{}); err != nil {
//		// errors.Is(err, spline.ErrConfiguration) ...
//	}
//	out := make([]float64, 2)
//	_ = sp.Evaluate(0.5, out) // out == [-0.65 0.65]
//
// Ownership:
//
//	The point slice is borrowed, not copied: it must stay unchanged until the
//	next Configure. Coefficient and moment buffers are owned by the Spline and
//	reused across Configure calls (Growable or Fixed strategy, see package
//	storage).
//
// Concurrency:
//
//	A Spline is guarded by a sync.RWMutex: evaluations share the read lock,
//	Configure takes the write lock. Distinct Spline values share nothing, so
//	EvaluateCurves can evaluate many of them concurrently.
//
// Complexity:
//   - Configure: O(n·m) time, O(n·m) memory (reused).
//   - Evaluate:  O(m); EvaluateMany: O(k·m).
package spline
