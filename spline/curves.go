// SPDX-License-Identifier: MIT

package spline

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pcspline/storage"
	"golang.org/x/sync/errgroup"
)

// DefaultCurveConcurrency bounds EvaluateCurves when limit <= 0.
const DefaultCurveConcurrency = 8

// EvaluateCurves evaluates every spline at the same positions, running up to
// limit curves concurrently. result[i] is the row-major len(positions)×m_i
// output of curves[i].
//
// Independent Spline values share no mutable state, so this only ever takes
// read locks; each curve is evaluated against one consistent configuration.
// The first failure cancels the remaining work.
//
// Errors:
//   - ErrNilSpline, ErrNotConfigured and evaluation errors, tagged with the
//     curve index.
//   - ctx.Err() when the context is cancelled first.
func EvaluateCurves[T storage.Float](ctx context.Context, curves []*Spline[T], positions []T, limit int) ([][]T, error) {
	if limit <= 0 {
		limit = DefaultCurveConcurrency
	}
	results := make([][]T, len(curves))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, c := range curves {
		i, c := i, c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if c == nil {
				return fmt.Errorf("curve %d: %w", i, ErrNilSpline)
			}
			out, err := c.evaluateAll(positions)
			if err != nil {
				return fmt.Errorf("curve %d: %w", i, err)
			}
			results[i] = out

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, splineErrorf(opCurves, err)
	}

	return results, nil
}
