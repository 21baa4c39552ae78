// SPDX-License-Identifier: MIT

// Package spline: functional configuration for Spline instances.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Documented defaults as the single source of truth.
//   - Panic only on nonsensical option values (programmer error); user input
//     is rejected with errors at Configure/Evaluate time.
package spline

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/pcspline/tridiag"
)

// Extrapolation decides what Evaluate does with positions outside [0,1].
type Extrapolation int

const (
	// Extrapolate extends the first/last segment cubic beyond the ends.
	Extrapolate Extrapolation = iota

	// Clamp clamps the position into [0,1] first.
	Clamp

	// Reject fails with ErrPositionOutOfRange.
	Reject
)

// String implements fmt.Stringer.
func (e Extrapolation) String() string {
	switch e {
	case Extrapolate:
		return "extrapolate"
	case Clamp:
		return "clamp"
	case Reject:
		return "reject"
	default:
		return fmt.Sprintf("Extrapolation(%d)", int(e))
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance is forwarded to tridiag.WithPivotTolerance.
	DefaultPivotTolerance = tridiag.DefaultPivotTolerance

	// DefaultExtrapolation is the out-of-range policy.
	DefaultExtrapolation = Extrapolate

	// DefaultValidateNaNInf rejects non-finite points and tangents in Configure.
	DefaultValidateNaNInf = true

	// DefaultClosedLoop keeps the open parametrisation over n-1 segments.
	DefaultClosedLoop = false
)

// ---------- Internal panic messages ----------

const (
	panicCapacityInvalid      = "spline: WithFixedCapacity: need points >= 2 and dims >= 1"
	panicPivotInvalid         = "spline: WithPivotTolerance: eps must be finite, non-negative"
	panicExtrapolationInvalid = "spline: WithExtrapolation: unknown mode"
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options is the resolved configuration of a Spline. Fields are unexported;
// New consumes ...Option and resolves them via gatherOptions.
type Options struct {
	fixed                 bool
	fixedPoints, fixedDim int

	logger         *slog.Logger
	pivotEps       float64
	extrapolation  Extrapolation
	validateNaNInf bool
	closedLoop     bool
}

// WithFixedCapacity selects the fixed-capacity storage strategy: every buffer
// is allocated once, sized for points×dims, and Configure never allocates.
// Problems larger than that fail with ErrCapacityExceeded.
func WithFixedCapacity(points, dims int) Option {
	if points < 2 || dims < 1 {
		panic(panicCapacityInvalid)
	}

	return func(o *Options) {
		o.fixed = true
		o.fixedPoints, o.fixedDim = points, dims
	}
}

// WithLogger routes Configure diagnostics to l. nil restores the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = discardLogger()
		}
		o.logger = l
	}
}

// WithPivotTolerance sets the zero-pivot tolerance used by the moment solve.
func WithPivotTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicPivotInvalid)
	}

	return func(o *Options) { o.pivotEps = eps }
}

// WithExtrapolation sets the policy for positions outside [0,1].
func WithExtrapolation(mode Extrapolation) Option {
	switch mode {
	case Extrapolate, Clamp, Reject:
	default:
		panic(panicExtrapolationInvalid)
	}

	return func(o *Options) { o.extrapolation = mode }
}

// WithValidateNaNInf rejects non-finite points/tangents (default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf skips the input scan. The solver still refuses to
// return non-finite moments.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithClosedLoop makes evaluation cover the closing segment p[n-1]→p[0]:
// [0,1] spans n segments, so s=0 and s=1 both land on p[0] with equal first
// derivative. Requires Periodic on both ends.
func WithClosedLoop() Option {
	return func(o *Options) { o.closedLoop = true }
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func defaultOptions() Options {
	return Options{
		logger:         discardLogger(),
		pivotEps:       DefaultPivotTolerance,
		extrapolation:  DefaultExtrapolation,
		validateNaNInf: DefaultValidateNaNInf,
		closedLoop:     DefaultClosedLoop,
	}
}

// gatherOptions applies opts in order over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
