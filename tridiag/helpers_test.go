// SPDX-License-Identifier: MIT
// Package tridiag_test contains test helpers
//
// Purpose:
//   - Deterministic random systems (seeded math/rand) that are strictly
//     diagonally dominant, so every pivot stays well away from zero.
//   - A dense reference solve through gonum.

package tridiag_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pcspline/tridiag"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// corners selects which corner entries a random system gets.
type corners struct {
	first bool // a[0] != 0
	last  bool // c[n-1] != 0
}

// randomSystem builds an n×n diagonally dominant system with m columns.
func randomSystem(n, m int, cor corners, seed int64) *tridiag.System[float64] {
	rng := rand.New(rand.NewSource(seed))
	s := &tridiag.System[float64]{
		A:    make([]float64, n),
		B:    make([]float64, n),
		C:    make([]float64, n),
		D:    make([]float64, n*m),
		Cols: m,
	}
	for i := 0; i < n; i++ {
		s.A[i] = rng.Float64()*2 - 1
		s.C[i] = rng.Float64()*2 - 1
		s.B[i] = 4 + rng.Float64()
	}
	if !cor.first {
		s.A[0] = 0
	}
	if !cor.last {
		s.C[n-1] = 0
	}
	for k := range s.D {
		s.D[k] = rng.Float64()*20 - 10
	}

	return s
}

// referenceSolve solves the dense expansion of s with gonum (LU).
func referenceSolve(t testing.TB, s *tridiag.System[float64]) *mat.Dense {
	t.Helper()
	coef, rhs, err := s.Dense()
	require.NoError(t, err)

	var x mat.Dense
	require.NoError(t, x.Solve(coef, rhs))

	return &x
}

// asDense wraps the row-major solution for comparison with gonum results.
func asDense(s *tridiag.System[float64]) *mat.Dense {
	out := make([]float64, len(s.D))
	copy(out, s.D)

	return mat.NewDense(s.N(), s.Cols, out)
}
