// SPDX-License-Identifier: MIT
// Package: resistiv/invert
//
// types.go - component function types, sentinel errors, tools.
package invert

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for inversion assembly and execution.
var (
	// ErrNilProblem indicates New was handed a nil problem.
	ErrNilProblem = errors.New("invert: problem must not be nil")
	// ErrMissingComponent indicates the selected tool needs a component the problem does not define.
	ErrMissingComponent = errors.New("invert: required problem component not set")
	// ErrUnknownTool indicates an unrecognized back-end selector.
	ErrUnknownTool = errors.New("invert: unknown inversion tool")
	// ErrBadOption indicates an out-of-range back-end option.
	ErrBadOption = errors.New("invert: invalid back-end option")
	// ErrBadComponent indicates a component handed to a setter is unusable (nil or misshapen).
	ErrBadComponent = errors.New("invert: invalid problem component")
	// ErrEmptyChain indicates a chain request that leaves no samples.
	ErrEmptyChain = errors.New("invert: no samples remain after discard/thin")
)

// Component function types. Each receives the current model vector and
// must not mutate it.
type (
	// ForwardFn predicts data from a model.
	ForwardFn func(model []float64) ([]float64, error)
	// JacobianFn returns the sensitivity of the forward prediction.
	JacobianFn func(model []float64) (*mat.Dense, error)
	// VectorFn returns a per-measurement or per-cell vector (residual, gradient).
	VectorFn func(model []float64) ([]float64, error)
	// ScalarFn returns a scalar functional (data misfit, regularization).
	ScalarFn func(model []float64) (float64, error)
	// HessianFn returns a symmetric Hessian approximation.
	HessianFn func(model []float64) (*mat.SymDense, error)
	// LogDensityFn returns an unnormalized log density; -Inf marks zero probability.
	LogDensityFn func(model []float64) float64
)

// Tool selects the imported back end an Inversion dispatches to.
type Tool int

const (
	// ToolNewton minimizes objective = misfit + regularization with
	// gonum's Newton method.
	ToolNewton Tool = iota
	// ToolEnsemble samples the log posterior with gonum's
	// Metropolis-Hastings sampler, one chain per walker.
	ToolEnsemble
)

// String returns the tool name used in summaries.
func (t Tool) String() string {
	switch t {
	case ToolNewton:
		return "newton"
	case ToolEnsemble:
		return "ensemble"
	default:
		return "unknown"
	}
}
