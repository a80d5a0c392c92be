package cwt_test

import (
	"context"
	"fmt"
	"math"

	"github.com/cwbudde/algo-cwt/cwt"
	"gonum.org/v1/gonum/mat"
)

func ExampleRun() {
	// A stand-in engine that puts a unit-modulus coefficient everywhere.
	engine := cwt.TransformerFunc(func(_ context.Context, s []float64, p cwt.Params) (*mat.Dense, *mat.Dense, error) {
		re := mat.NewDense(p.Rows(), len(s), nil)
		im := mat.NewDense(p.Rows(), len(s), nil)
		for i := 0; i < p.Rows(); i++ {
			for j := range s {
				re.Set(i, j, 0.6)
				im.Set(i, j, 0.8)
			}
		}
		return re, im, nil
	})

	p := cwt.Params{StartOctave: 1, EndOctave: 6, VoicesPerOctave: 200, C0: 2 * math.Pi, SamplingRate: 100000}
	r, err := cwt.Run(context.Background(), engine, make([]float64, 64), p)
	if err != nil {
		panic(err)
	}
	mod, err := r.Feature(cwt.Modulus)
	if err != nil {
		panic(err)
	}
	rows, cols := mod.Dims()
	fmt.Printf("%dx%d modulus %.1f\n", rows, cols, mod.At(0, 0))
	// Output: 1200x64 modulus 1.0
}
