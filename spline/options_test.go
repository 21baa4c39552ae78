package spline_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pcspline/spline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { spline.WithPivotTolerance(-1) })
	assert.Panics(t, func() { spline.WithPivotTolerance(math.NaN()) })
	assert.Panics(t, func() { spline.WithPivotTolerance(math.Inf(1)) })
	assert.Panics(t, func() { spline.WithExtrapolation(spline.Extrapolation(9)) })
	assert.Panics(t, func() { spline.WithFixedCapacity(0, 0) })
	assert.NotPanics(t, func() { spline.WithPivotTolerance(0) })
}

// TestNilOptionIgnored: nil entries in the option list are skipped.
func TestNilOptionIgnored(t *testing.T) {
	sp, err := spline.New[float64](nil, spline.WithValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, sp.Configure(pivotPoints, 4, 2, spline.Ends[float64]{}))
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "natural", spline.Natural.String())
	assert.Equal(t, "hermite", spline.Hermite.String())
	assert.Equal(t, "periodic", spline.Periodic.String())
	assert.Equal(t, "not-a-knot", spline.NotAKnot.String())
	assert.Equal(t, "Condition(9)", spline.Condition(9).String())

	assert.Equal(t, "extrapolate", spline.Extrapolate.String())
	assert.Equal(t, "clamp", spline.Clamp.String())
	assert.Equal(t, "reject", spline.Reject.String())
	assert.Equal(t, "Extrapolation(5)", spline.Extrapolation(5).String())
}
