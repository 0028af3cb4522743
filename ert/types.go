package ert

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for forward modelling operations.
var (
	// ErrEmptyScheme indicates a scheme with no measurements.
	ErrEmptyScheme = errors.New("ert: scheme has no measurements")
	// ErrDimensionMismatch indicates a model vector of the wrong length.
	ErrDimensionMismatch = errors.New("ert: model length does not match operator cells")
	// ErrNonPositiveModel indicates a resistivity at or below zero.
	ErrNonPositiveModel = errors.New("ert: model resistivities must be positive")
	// ErrNumericalBreakdown indicates a NaN, Inf, or non-positive response.
	ErrNumericalBreakdown = errors.New("ert: forward response is not finite and positive")
	// ErrBadNoise indicates a relative noise level outside (0, 1).
	ErrBadNoise = errors.New("ert: relative noise must lie in (0, 1)")
)

// Operator maps a per-cell resistivity model to predicted apparent
// resistivities and exposes the sensitivity of that mapping. The example
// drivers treat it as an opaque forward solver; anything that satisfies
// it can be assembled into an inversion problem.
type Operator interface {
	// Response returns one predicted apparent resistivity per measurement.
	Response(model []float64) ([]float64, error)
	// Jacobian returns ∂response/∂model as an nData × nCells matrix.
	Jacobian(model []float64) (*mat.Dense, error)
}

// Data is a synthetic observation set: apparent resistivities, their
// natural logs (the space the inversion works in), and the inverse data
// covariance implied by the noise level.
type Data struct {
	Rhoa    []float64
	LogRhoa []float64
	CovInv  *mat.DiagDense
}

// SimOptions contains tunable parameters for synthetic data generation.
type SimOptions struct {
	// RelNoise is the multiplicative lognormal noise level (relative).
	RelNoise float64
	// Seed drives the noise stream; equal seeds reproduce equal data.
	Seed uint64
}

// DefaultSimOptions returns a SimOptions with default settings:
// 5% relative noise, seed 42.
func DefaultSimOptions() SimOptions {
	return SimOptions{RelNoise: 0.05, Seed: 42}
}
