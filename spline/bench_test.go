// Package spline_test provides benchmarks for Configure and evaluation.
package spline_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/pcspline/spline"
)

var benchSizes = []int{16, 256, 4096}

// sinks defeat dead-code elimination.
var (
	sinkF   float64
	sinkErr error
)

func BenchmarkConfigure(b *testing.B) {
	ends := map[string]spline.Ends[float64]{
		"natural":  {},
		"periodic": {Left: spline.Periodic, Right: spline.Periodic},
	}
	for name, e := range ends {
		for _, n := range benchSizes {
			b.Run(fmt.Sprintf("%s/n=%d", name, n), func(b *testing.B) {
				points := randomPoints(n, 3, 1337)
				sp, err := spline.New[float64]()
				if err != nil {
					b.Fatal(err)
				}
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					sinkErr = sp.Configure(points, n, 3, e)
				}
			})
		}
	}
}

func BenchmarkEvaluateMany(b *testing.B) {
	const k = 1024
	pos := make([]float64, k)
	for i := range pos {
		pos[i] = float64(i) / (k - 1)
	}
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			sp := mustSpline(b, randomPoints(n, 3, 7), n, 3, spline.Ends[float64]{})
			out := make([]float64, k*3)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkErr = sp.EvaluateMany(pos, out)
				sinkF = out[0]
			}
		})
	}
}

func BenchmarkEvaluateCurves(b *testing.B) {
	curves := make([]*spline.Spline[float64], 32)
	for i := range curves {
		curves[i] = mustSpline(b, randomPoints(64, 3, int64(i)), 64, 3, spline.Ends[float64]{})
	}
	pos := []float64{0, 0.125, 0.25, 0.5, 0.75, 1}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, sinkErr = spline.EvaluateCurves(context.Background(), curves, pos, 0)
	}
}
