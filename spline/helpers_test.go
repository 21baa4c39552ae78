// SPDX-License-Identifier: MIT
// Package spline_test contains test fixtures and helpers.
//
// Purpose:
//   - Literal fixtures: four points in the plane, evaluated at eleven positions
//     under Natural/Natural and Hermite/Hermite ends.
//   - Seeded random point clouds for property tests.

package spline_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pcspline/spline"
	"github.com/katalvlaran/pcspline/storage"
	"github.com/stretchr/testify/require"
)

// fixtureTol is the absolute tolerance the literal tables are given to.
const fixtureTol = 1e-3

// pivotPoints are (1,0), (-1,0), (0,1), (0,-1), row-major.
var pivotPoints = []float64{1, 0, -1, 0, 0, 1, 0, -1}

var evalPositions = []float64{0.0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0}

// fixture is one literal evaluation table.
type fixture struct {
	name     string
	ends     spline.Ends[float64]
	expected []float64 // len(evalPositions)×2, row-major
}

var fixtures = []fixture{
	{
		name: "natural",
		ends: spline.Ends[float64]{Left: spline.Natural, Right: spline.Natural},
		expected: []float64{
			1.0000, 0.0000, 0.1634, -0.1274, -0.5328, -0.1792,
			-0.9482, -0.0798, -0.9600, 0.2320, -0.6500, 0.6500,
			-0.2320, 0.9600, 0.0798, 0.9482, 0.1792, 0.5328,
			0.1274, -0.1634, 0.0000, -1.0000,
		},
	},
	{
		name: "hermite",
		ends: spline.Ends[float64]{
			Left:         spline.Hermite,
			Right:        spline.Hermite,
			LeftTangent:  []float64{0, -1},
			RightTangent: []float64{-1, 0},
		},
		expected: []float64{
			1.0000, 0.0000, 0.6352, -0.2268, -0.1424, -0.2784,
			-0.8576, -0.1116, -1.0731, 0.3003, -0.7917, 0.7917,
			-0.3003, 1.0731, 0.1116, 0.8576, 0.2784, 0.1424,
			0.2268, -0.6352, 0.0000, -1.0000,
		},
	},
}

// convert copies a float64 slice into T (nil stays nil).
func convert[T storage.Float](xs []float64) []T {
	if xs == nil {
		return nil
	}
	out := make([]T, len(xs))
	for i, v := range xs {
		out[i] = T(v)
	}

	return out
}

// convertEnds re-types fixture ends for T.
func convertEnds[T storage.Float](e spline.Ends[float64]) spline.Ends[T] {
	return spline.Ends[T]{
		Left:         e.Left,
		Right:        e.Right,
		LeftTangent:  convert[T](e.LeftTangent),
		RightTangent: convert[T](e.RightTangent),
	}
}

// mustSpline creates and configures a spline or fails the test.
func mustSpline[T storage.Float](t testing.TB, points []T, n, m int, ends spline.Ends[T], opts ...spline.Option) *spline.Spline[T] {
	t.Helper()
	sp, err := spline.New[T](opts...)
	require.NoError(t, err)
	require.NoError(t, sp.Configure(points, n, m, ends))

	return sp
}

// randomPoints returns n×m points in [-10,10) from a seeded source.
func randomPoints(n, m int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n*m)
	for i := range out {
		out[i] = rng.Float64()*20 - 10
	}

	return out
}

// randomVector returns m components in [-3,3).
func randomVector(m int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, m)
	for i := range out {
		out[i] = rng.Float64()*6 - 3
	}

	return out
}

// supportedEnds enumerates every supported end combination with tangents.
func supportedEnds(m int, seed int64) map[string]spline.Ends[float64] {
	conds := []spline.Condition{spline.Natural, spline.Hermite, spline.Periodic}
	out := make(map[string]spline.Ends[float64], len(conds)*len(conds))
	for _, l := range conds {
		for _, r := range conds {
			e := spline.Ends[float64]{Left: l, Right: r}
			if l == spline.Hermite {
				e.LeftTangent = randomVector(m, seed)
			}
			if r == spline.Hermite {
				e.RightTangent = randomVector(m, seed+1)
			}
			out[l.String()+"/"+r.String()] = e
		}
	}

	return out
}
