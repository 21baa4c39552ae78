// SPDX-License-Identifier: MIT

package spline

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/pcspline/storage"
	"github.com/katalvlaran/pcspline/tridiag"
	"gonum.org/v1/gonum/mat"
)

// Spline is a parametric cubic spline through n points in m dimensions.
//
// Lifecycle:
//   - New picks the storage strategy once (Growable or Fixed).
//   - Configure borrows the points, builds and solves the moment system.
//   - Evaluate/EvaluateMany/Derivative read points and moments until the next
//     Configure. A failed Configure leaves the Spline unconfigured.
//
// All methods are safe for concurrent use (sync.RWMutex).
type Spline[T storage.Float] struct {
	mu   sync.RWMutex
	opts Options

	points []T // borrowed, row-major n×m
	n, m   int
	left   Condition
	right  Condition

	// owned coefficient buffers, reused across Configure calls
	a, b, c, q storage.Buffer[T]
	moments    *storage.Dense[T]

	regime     tridiag.Regime
	configured bool
}

// New creates an unconfigured Spline.
//
// Errors:
//   - storage errors when the fixed-capacity buffers cannot be allocated.
func New[T storage.Float](opts ...Option) (*Spline[T], error) {
	o := gatherOptions(opts...)
	s := &Spline[T]{opts: o}

	var momentBuf storage.Buffer[T]
	if o.fixed {
		bufs := make([]*storage.Fixed[T], 4)
		for i := range bufs {
			f, err := storage.NewFixed[T](o.fixedPoints)
			if err != nil {
				return nil, fmt.Errorf("New: %w", err)
			}
			bufs[i] = f
		}
		s.a, s.b, s.c, s.q = bufs[0], bufs[1], bufs[2], bufs[3]
		f, err := storage.NewFixed[T](o.fixedPoints * o.fixedDim)
		if err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
		momentBuf = f
	} else {
		s.a, s.b, s.c, s.q = storage.NewGrowable[T](), storage.NewGrowable[T](),
			storage.NewGrowable[T](), storage.NewGrowable[T]()
		momentBuf = storage.NewGrowable[T]()
	}

	moments, err := storage.NewDense(momentBuf)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	s.moments = moments

	return s, nil
}

// Configure builds and solves the moment system for points (row-major n×m).
// points is borrowed and must not change until the next Configure.
//
// Implementation:
//   - Stage 1: validate shape, end conditions, closed-loop requirement and,
//     unless disabled, finiteness of points and tangents.
//   - Stage 2: size the owned buffers (in place; Fixed never reallocates).
//   - Stage 3: build rows (BuildSystem rules) straight into the moment buffer.
//   - Stage 4: tridiag.Solve overwrites it with the moments.
//
// Errors:
//   - ErrConfiguration family: ErrTooFewPoints, ErrInvalidDimensions,
//     ErrDimensionMismatch, ErrUnsupportedBoundary, ErrTangentLength, ErrNaNInf,
//     ErrCapacityExceeded, ErrClosedLoopNeedsPeriodic.
//   - ErrNumericalInstability family from the solver.
//
// Complexity: O(n·m) time; no allocation once buffers have grown.
func (s *Spline[T]) Configure(points []T, n, m int, ends Ends[T]) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.configureLocked(points, n, m, ends)
	if err != nil {
		s.reset()
		s.opts.logger.Warn("spline configure failed",
			"points", n,
			"dims", m,
			"left", ends.Left.String(),
			"right", ends.Right.String(),
			"error", err,
		)

		return splineErrorf(opConfigure, err)
	}
	s.opts.logger.Debug("spline configured",
		"points", n,
		"dims", m,
		"left", ends.Left.String(),
		"right", ends.Right.String(),
		"regime", s.regime.String(),
		"closed", s.opts.closedLoop,
	)

	return nil
}

func (s *Spline[T]) configureLocked(points []T, n, m int, ends Ends[T]) error {
	s.configured = false

	if err := validateInput(points, n, m, ends); err != nil {
		return err
	}
	if s.opts.closedLoop && !ends.periodic() {
		return fmt.Errorf("ends %v/%v: %w", ends.Left, ends.Right, ErrClosedLoopNeedsPeriodic)
	}
	if s.opts.validateNaNInf {
		if err := validateFiniteInput(points, ends); err != nil {
			return err
		}
	}

	if err := s.resize(n, m); err != nil {
		return err
	}

	sys := &tridiag.System[T]{
		A:    s.a.Data(),
		B:    s.b.Data(),
		C:    s.c.Data(),
		D:    s.moments.Data(),
		Cols: m,
		Q:    s.q.Data(),
	}
	buildRows(points, n, m, ends, sys.A, sys.B, sys.C, sys.D)
	s.regime = sys.Regime()

	if err := tridiag.Solve(sys, tridiag.WithPivotTolerance(s.opts.pivotEps)); err != nil {
		return err
	}

	s.points, s.n, s.m = points, n, m
	s.left, s.right = ends.Left, ends.Right
	s.configured = true

	return nil
}

// resize sizes a, b, c, q to n and the moment matrix to n×m.
func (s *Spline[T]) resize(n, m int) error {
	for _, buf := range []storage.Buffer[T]{s.a, s.b, s.c, s.q} {
		if err := buf.Resize(n); err != nil {
			return capacityError(err)
		}
	}
	if err := s.moments.Reshape(n, m); err != nil {
		return capacityError(err)
	}

	return nil
}

// capacityError maps storage overflow onto the configuration taxonomy.
func capacityError(err error) error {
	if errors.Is(err, storage.ErrCapacityExceeded) {
		return fmt.Errorf("%w: %w", ErrCapacityExceeded, err)
	}

	return err
}

// validateFiniteInput rejects NaN/Inf in points and Hermite tangents.
func validateFiniteInput[T storage.Float](points []T, ends Ends[T]) error {
	if err := storage.ValidateFinite(points); err != nil {
		return fmt.Errorf("points: %w: %w", ErrNaNInf, err)
	}
	if ends.Left == Hermite {
		if err := storage.ValidateFinite(ends.LeftTangent); err != nil {
			return fmt.Errorf("left tangent: %w: %w", ErrNaNInf, err)
		}
	}
	if ends.Right == Hermite {
		if err := storage.ValidateFinite(ends.RightTangent); err != nil {
			return fmt.Errorf("right tangent: %w: %w", ErrNaNInf, err)
		}
	}

	return nil
}

// reset drops the borrowed points after a failed Configure.
func (s *Spline[T]) reset() {
	s.configured = false
	s.points = nil
	s.n, s.m = 0, 0
}

// Configured reports whether the last Configure succeeded.
func (s *Spline[T]) Configured() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.configured
}

// NumPoints returns n of the current configuration (0 when unconfigured).
func (s *Spline[T]) NumPoints() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.n
}

// NumDims returns m of the current configuration (0 when unconfigured).
func (s *Spline[T]) NumDims() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.m
}

// Conditions returns the end conditions of the current configuration.
func (s *Spline[T]) Conditions() (left, right Condition) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.left, s.right
}

// Regime reports which solver path the last successful Configure took.
func (s *Spline[T]) Regime() tridiag.Regime {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.regime
}

// Moments returns a copy of the n×m moment matrix as a gonum matrix.
func (s *Spline[T]) Moments() (*mat.Dense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.configured {
		return nil, splineErrorf(opMoments, ErrNotConfigured)
	}
	data := s.moments.Data()
	out := make([]float64, len(data))
	for k, v := range data {
		out[k] = float64(v)
	}

	return mat.NewDense(s.n, s.m, out), nil
}
