package spline_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pcspline/spline"
)

// ExampleSpline_Evaluate fits a natural spline through four planar points.
func ExampleSpline_Evaluate() {
	points := []float64{
		1, 0,
		-1, 0,
		0, 1,
		0, -1,
	}
	sp, err := spline.New[float64]()
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := sp.Configure(points, 4, 2, spline.Ends[float64]{}); err != nil {
		fmt.Println(err)
		return
	}

	out := make([]float64, 2)
	for _, s := range []float64{0, 0.5} {
		_ = sp.Evaluate(s, out)
		fmt.Printf("%.3f %.3f\n", out[0], out[1])
	}
	// Output:
	// 1.000 0.000
	// -0.650 0.650
}

// ExampleSpline_Configure shows the error taxonomy.
func ExampleSpline_Configure() {
	sp, _ := spline.New[float32](spline.WithFixedCapacity(8, 2))
	err := sp.Configure(make([]float32, 20), 10, 2, spline.Ends[float32]{})
	fmt.Println(err)
	// Output:
	// Configure: spline: invalid configuration: fixed capacity exceeded: Fixed.Resize(10) with capacity 8: storage: fixed capacity exceeded
}

// ExampleEvaluateCurves evaluates two curves concurrently.
func ExampleEvaluateCurves() {
	a, _ := spline.New[float64]()
	_ = a.Configure([]float64{0, 2}, 2, 1, spline.Ends[float64]{})
	b, _ := spline.New[float64]()
	_ = b.Configure([]float64{0, 0, 4, 4}, 2, 2, spline.Ends[float64]{})

	res, err := spline.EvaluateCurves(context.Background(), []*spline.Spline[float64]{a, b}, []float64{0.5}, 0)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res[0], res[1])
	// Output:
	// [1] [2 2]
}
