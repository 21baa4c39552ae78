// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pcspline/storage"
)

// Evaluate writes the point at parametric position pos into out[:m].
//
// Mapping: pos·segs = idx + t with segs = n-1 (n for a closed loop). pos = 1
// lands on the last segment with t = 1. Outside [0,1] the Extrapolation
// policy applies: the end segments' cubics are extended (default), the
// position is clamped, or the call fails.
//
// Per dimension j, with moments M and points p of segment idx → idx+1:
//
//	x(t) = ((1-t)³·M[idx] + t³·M[idx+1])/6
//	     + ((p[idx+1]-p[idx]) - (M[idx+1]-M[idx])/6)·t
//	     + p[idx] - M[idx]/6
//
// Errors:
//   - ErrNotConfigured, ErrOutputTooShort, ErrNonFinitePosition,
//     ErrPositionOutOfRange (Reject policy).
func (s *Spline[T]) Evaluate(pos T, out []T) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkOutput(len(out), 1); err != nil {
		return splineErrorf(opEvaluate, err)
	}
	if err := s.valueAt(pos, out); err != nil {
		return splineErrorf(opEvaluate, err)
	}

	return nil
}

// EvaluateMany evaluates every position in pos, writing row-major k×m values
// into out. The whole batch sees one consistent configuration.
func (s *Spline[T]) EvaluateMany(pos []T, out []T) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkOutput(len(out), len(pos)); err != nil {
		return splineErrorf(opEvaluateMany, err)
	}
	m := s.m
	for k, p := range pos {
		if err := s.valueAt(p, out[k*m:(k+1)*m]); err != nil {
			return splineErrorf(opEvaluateMany, fmt.Errorf("position %d: %w", k, err))
		}
	}

	return nil
}

// Derivative writes dx/dt at pos into out[:m], where t is the local segment
// parameter (the unit Hermite tangents use). Multiply by the segment count to
// get dx/ds.
func (s *Spline[T]) Derivative(pos T, out []T) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkOutput(len(out), 1); err != nil {
		return splineErrorf(opDerivative, err)
	}
	i, i1, t, err := s.locate(pos)
	if err != nil {
		return splineErrorf(opDerivative, err)
	}
	m := s.m
	p, mo := s.points, s.moments.Data()
	u := 1 - t
	for j := 0; j < m; j++ {
		mi, mi1 := mo[i*m+j], mo[i1*m+j]
		slope := (p[i1*m+j] - p[i*m+j]) - (mi1-mi)/6
		out[j] = (t*t*mi1-u*u*mi)/2 + slope
	}

	return nil
}

// evaluateAll allocates and fills a k×m result under one read lock.
func (s *Spline[T]) evaluateAll(pos []T) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.configured {
		return nil, ErrNotConfigured
	}
	out := make([]T, len(pos)*s.m)
	for k, p := range pos {
		if err := s.valueAt(p, out[k*s.m:(k+1)*s.m]); err != nil {
			return nil, fmt.Errorf("position %d: %w", k, err)
		}
	}

	return out, nil
}

// checkOutput validates state and output capacity for k results.
func (s *Spline[T]) checkOutput(have, k int) error {
	if !s.configured {
		return ErrNotConfigured
	}
	if need := k * s.m; have < need {
		return fmt.Errorf("len(out)=%d, need %d: %w", have, need, ErrOutputTooShort)
	}

	return nil
}

// valueAt evaluates one position into out[:m]; caller holds the read lock.
func (s *Spline[T]) valueAt(pos T, out []T) error {
	i, i1, t, err := s.locate(pos)
	if err != nil {
		return err
	}
	m := s.m
	p, mo := s.points, s.moments.Data()
	u := 1 - t
	t3, u3 := t*t*t, u*u*u
	for j := 0; j < m; j++ {
		mi, mi1 := mo[i*m+j], mo[i1*m+j]
		pi := p[i*m+j]
		slope := (p[i1*m+j] - pi) - (mi1-mi)/6
		offset := pi - mi/6
		out[j] = (u3*mi+t3*mi1)/6 + slope*t + offset
	}

	return nil
}

// locate maps pos to (segment start, segment end, local t).
//
//   - idx = ⌊pos·segs⌋, t = pos·segs − idx.
//   - idx ≥ segs ⇒ idx = segs−1 (t = 1 at pos = 1, t > 1 beyond).
//   - idx < 0    ⇒ idx = 0, t = pos·segs (t < 0).
//
// The segment end is idx+1, wrapping to 0 on the closing segment of a loop.
func (s *Spline[T]) locate(pos T) (i, i1 int, t T, err error) {
	if storage.IsNonFinite(pos) {
		return 0, 0, 0, ErrNonFinitePosition
	}
	switch s.opts.extrapolation {
	case Clamp:
		pos = min(max(pos, 0), 1)
	case Reject:
		if pos < 0 || pos > 1 {
			return 0, 0, 0, fmt.Errorf("pos=%g: %w", float64(pos), ErrPositionOutOfRange)
		}
	}

	segs := s.n - 1
	if s.opts.closedLoop {
		segs = s.n
	}
	x := pos * T(segs)
	fl := math.Floor(float64(x))
	switch {
	case fl >= float64(segs):
		i = segs - 1
	case fl < 0:
		i = 0
	default:
		i = int(fl)
	}
	t = x - T(i)

	i1 = i + 1
	if i1 == s.n {
		i1 = 0
	}

	return i, i1, t, nil
}
