// Package pcspline fits parametric cubic splines through points in any number
// of dimensions and evaluates them at normalised positions s ∈ [0,1].
//
// 🚀 What is pcspline?
//
//	A small, thread-safe numerics library built around one idea: the second
//	derivatives ("moments") of an interpolating cubic spline solve a
//	tridiagonal system, optionally coupled at its corners.
//		• Storage: growable or fixed-capacity buffers, row-major dense views
//		• Tridiagonal solver: Thomas algorithm, with a Sherman–Morrison
//		  correction for corner-coupled (periodic) systems
//		• Splines: natural, Hermite and periodic ends, closed loops,
//		  extrapolation policies, derivatives, batch and multi-curve evaluation
//
// ✨ Why choose pcspline?
//
//   - Generic over float32 and float64
//   - Zero allocation after warm-up; fixed-capacity mode never allocates
//   - Sentinel errors grouped by category (configuration, precondition,
//     numerical instability), matched with errors.Is
//   - gonum interop for cross-checking and export
//
// Packages:
//
//	storage/: Buffer (Growable, Fixed), Dense row-major view, finiteness checks
//	tridiag/: System, Regime and Solve (strict and perturbed)
//	spline/:  Spline, Ends, BuildSystem, Evaluate/EvaluateMany/Derivative,
//	           EvaluateCurves
//
// Quick example:
//
//	sp, _ := spline.New[float64]()
//	_ = sp.Configure([]float64{1, 0, -1, 0, 0, 1, 0, -1}, 4, 2, spline.Ends[float64]{})
//	out := make([]float64, 2)
//	_ = sp.Evaluate(0.5, out) // out ≈ [-0.65 0.65]
//
//	go get github.com/katalvlaran/pcspline
package pcspline
