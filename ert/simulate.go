package ert

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Simulate generates a synthetic observation set: the clean response of
// model under op, perturbed by multiplicative lognormal noise
// (rhoa·exp(ε), ε ~ N(0, RelNoise²)), so noisy data stay positive. The
// inverse data covariance is diagonal with 1/RelNoise² per measurement,
// matching the log-data space the inversion works in.
// Returns ErrBadNoise for RelNoise outside (0, 1), or any operator error.
// Complexity: O(measurements × cells) dominated by the forward response.
func Simulate(op Operator, model []float64, opts SimOptions) (*Data, error) {
	if opts.RelNoise <= 0 || opts.RelNoise >= 1 {
		return nil, fmt.Errorf("rel noise %v: %w", opts.RelNoise, ErrBadNoise)
	}
	clean, err := op.Response(model)
	if err != nil {
		return nil, fmt.Errorf("ert: simulate: %w", err)
	}
	noise := distuv.Normal{Mu: 0, Sigma: opts.RelNoise, Src: rand.NewSource(opts.Seed)}

	n := len(clean)
	rhoa := make([]float64, n)
	logRhoa := make([]float64, n)
	covInv := make([]float64, n)
	for i, v := range clean {
		rhoa[i] = v * math.Exp(noise.Rand())
		logRhoa[i] = math.Log(rhoa[i])
		covInv[i] = 1 / (opts.RelNoise * opts.RelNoise)
	}
	return &Data{
		Rhoa:    rhoa,
		LogRhoa: logRhoa,
		CovInv:  mat.NewDiagDense(n, covInv),
	}, nil
}
