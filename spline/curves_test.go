package spline_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/pcspline/spline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEvaluateCurves evaluates curves of different dimensionality in parallel
// and compares against direct evaluation.
func TestEvaluateCurves(t *testing.T) {
	pos := []float64{0, 0.25, 0.5, 0.75, 1}
	curves := []*spline.Spline[float64]{
		mustSpline(t, pivotPoints, 4, 2, spline.Ends[float64]{}),
		mustSpline(t, randomPoints(10, 3, 61), 10, 3, spline.Ends[float64]{Left: spline.Periodic, Right: spline.Periodic}),
		mustSpline(t, randomPoints(5, 1, 62), 5, 1, spline.Ends[float64]{Left: spline.Hermite}),
	}

	for _, limit := range []int{0, 1, 3} {
		got, err := spline.EvaluateCurves(context.Background(), curves, pos, limit)
		require.NoError(t, err)
		require.Len(t, got, len(curves))
		for i, c := range curves {
			want := make([]float64, len(pos)*c.NumDims())
			require.NoError(t, c.EvaluateMany(pos, want))
			assert.Equal(t, want, got[i], "curve %d limit %d", i, limit)
		}
	}
}

func TestEvaluateCurvesErrors(t *testing.T) {
	good := mustSpline(t, pivotPoints, 4, 2, spline.Ends[float64]{})
	unconfigured, err := spline.New[float64]()
	require.NoError(t, err)
	pos := []float64{0.5}

	_, err = spline.EvaluateCurves(context.Background(), []*spline.Spline[float64]{good, nil}, pos, 2)
	require.ErrorIs(t, err, spline.ErrNilSpline)
	require.Contains(t, err.Error(), "curve 1")

	_, err = spline.EvaluateCurves(context.Background(), []*spline.Spline[float64]{unconfigured}, pos, 1)
	require.ErrorIs(t, err, spline.ErrNotConfigured)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = spline.EvaluateCurves(ctx, []*spline.Spline[float64]{good, good}, pos, 1)
	require.ErrorIs(t, err, context.Canceled)

	got, err := spline.EvaluateCurves[float64](context.Background(), nil, pos, 0)
	require.NoError(t, err)
	require.Empty(t, got)
}
