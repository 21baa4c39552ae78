// SPDX-License-Identifier: MIT

package tridiag

import "math"

// DefaultPivotTolerance is the absolute magnitude at or below which a pivot
// (or the Sherman-Morrison denominator) is treated as zero.
const DefaultPivotTolerance = 1e-12

const panicPivotToleranceInvalid = "tridiag: WithPivotTolerance: eps must be finite, non-negative"

// Option mutates solver options.
type Option func(*Options)

// Options holds the effective solver configuration.
type Options struct {
	eps float64
}

// WithPivotTolerance sets the zero-pivot tolerance. Panics on negative or
// non-finite eps (programmer error). eps == 0 only rejects exact zeros.
func WithPivotTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

func defaultOptions() Options {
	return Options{eps: DefaultPivotTolerance}
}

// gatherOptions applies opts over the defaults in order.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
