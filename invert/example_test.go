package invert_test

import (
	"fmt"

	"github.com/katavolt/resistiv/invert"
	"gonum.org/v1/gonum/mat"
)

// ExampleNew demonstrates the assembly pattern on a one-parameter
// quadratic: set components, pick a tool, call Run.
func ExampleNew() {
	p := invert.NewProblem("one-parameter quadratic").
		SetDataMisfit(func(m []float64) (float64, error) {
			d := m[0] - 4
			return d * d, nil
		}).
		SetGradient(func(m []float64) ([]float64, error) {
			return []float64{2 * (m[0] - 4)}, nil
		}).
		SetHessian(func(m []float64) (*mat.SymDense, error) {
			h := mat.NewSymDense(1, nil)
			h.SetSym(0, 0, 2)
			return h, nil
		}).
		SetInitialModel([]float64{30})

	inv, err := invert.New(p, invert.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	res, err := inv.Run()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("model=%.3f converged=%v\n", res.Model[0], res.Converged)
	// Output:
	// model=4.000 converged=true
}
