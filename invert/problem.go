// SPDX-License-Identifier: MIT
// Package: resistiv/invert
//
// problem.go - the inversion-problem container: named components set one
// by one, evaluated through checked accessors.
//
// Design contract (strict):
//   - Setters only store; no computation happens until a back end runs.
//   - Accessors return ErrMissingComponent naming the gap instead of
//     panicking on nil components.
//   - The initial model and walker starts are copied on the way in and
//     out; callers can not alias internal state.
package invert

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Problem is an inversion problem under assembly: a named bag of
// components (forward, jacobian, residual, misfit, regularization,
// gradient, hessian, log densities, starting points) that a back end
// consumes through the checked accessors.
type Problem struct {
	name string

	forward        ForwardFn
	jacobian       JacobianFn
	residual       VectorFn
	dataMisfit     ScalarFn
	regularization ScalarFn
	gradient       VectorFn
	hessian        HessianFn
	logLikelihood  LogDensityFn
	logPrior       LogDensityFn

	initial      []float64
	walkerStarts *mat.Dense
}

// NewProblem creates an empty problem with a display name.
func NewProblem(name string) *Problem {
	return &Problem{name: name}
}

// Name returns the problem's display name.
func (p *Problem) Name() string { return p.name }

// SetForward stores the forward prediction component. Chainable.
func (p *Problem) SetForward(fn ForwardFn) *Problem { p.forward = fn; return p }

// SetJacobian stores the sensitivity component. Chainable.
func (p *Problem) SetJacobian(fn JacobianFn) *Problem { p.jacobian = fn; return p }

// SetResidual stores the residual component. Chainable.
func (p *Problem) SetResidual(fn VectorFn) *Problem { p.residual = fn; return p }

// SetDataMisfit stores the data misfit component. Chainable.
func (p *Problem) SetDataMisfit(fn ScalarFn) *Problem { p.dataMisfit = fn; return p }

// SetRegularization stores the regularization component. Chainable.
func (p *Problem) SetRegularization(fn ScalarFn) *Problem { p.regularization = fn; return p }

// SetGradient stores the objective gradient component. Chainable.
func (p *Problem) SetGradient(fn VectorFn) *Problem { p.gradient = fn; return p }

// SetHessian stores the objective Hessian component. Chainable.
func (p *Problem) SetHessian(fn HessianFn) *Problem { p.hessian = fn; return p }

// SetLogLikelihood stores the sampling log likelihood. Chainable.
func (p *Problem) SetLogLikelihood(fn LogDensityFn) *Problem { p.logLikelihood = fn; return p }

// SetLogPrior stores the sampling log prior. Chainable.
func (p *Problem) SetLogPrior(fn LogDensityFn) *Problem { p.logPrior = fn; return p }

// SetInitialModel copies and stores the starting model. Chainable.
func (p *Problem) SetInitialModel(m []float64) *Problem {
	p.initial = append([]float64(nil), m...)
	return p
}

// SetWalkerStarts copies and stores per-walker starting positions, one
// row per walker. Chainable.
func (p *Problem) SetWalkerStarts(starts *mat.Dense) *Problem {
	if starts == nil {
		p.walkerStarts = nil
		return p
	}
	var cp mat.Dense
	cp.CloneFrom(starts)
	p.walkerStarts = &cp
	return p
}

// Forward evaluates the forward component.
func (p *Problem) Forward(m []float64) ([]float64, error) {
	if p.forward == nil {
		return nil, fmt.Errorf("forward: %w", ErrMissingComponent)
	}
	return p.forward(m)
}

// Jacobian evaluates the sensitivity component.
func (p *Problem) Jacobian(m []float64) (*mat.Dense, error) {
	if p.jacobian == nil {
		return nil, fmt.Errorf("jacobian: %w", ErrMissingComponent)
	}
	return p.jacobian(m)
}

// Residual evaluates the residual component.
func (p *Problem) Residual(m []float64) ([]float64, error) {
	if p.residual == nil {
		return nil, fmt.Errorf("residual: %w", ErrMissingComponent)
	}
	return p.residual(m)
}

// DataMisfit evaluates the data misfit component.
func (p *Problem) DataMisfit(m []float64) (float64, error) {
	if p.dataMisfit == nil {
		return 0, fmt.Errorf("data misfit: %w", ErrMissingComponent)
	}
	return p.dataMisfit(m)
}

// Regularization evaluates the regularization component. An unset
// regularization is a defined zero, not an error, so purely data-driven
// problems stay assemblable.
func (p *Problem) Regularization(m []float64) (float64, error) {
	if p.regularization == nil {
		return 0, nil
	}
	return p.regularization(m)
}

// Objective evaluates data misfit plus regularization.
func (p *Problem) Objective(m []float64) (float64, error) {
	phi, err := p.DataMisfit(m)
	if err != nil {
		return 0, err
	}
	reg, err := p.Regularization(m)
	if err != nil {
		return 0, err
	}
	return phi + reg, nil
}

// Gradient evaluates the objective gradient component.
func (p *Problem) Gradient(m []float64) ([]float64, error) {
	if p.gradient == nil {
		return nil, fmt.Errorf("gradient: %w", ErrMissingComponent)
	}
	return p.gradient(m)
}

// Hessian evaluates the objective Hessian component.
func (p *Problem) Hessian(m []float64) (*mat.SymDense, error) {
	if p.hessian == nil {
		return nil, fmt.Errorf("hessian: %w", ErrMissingComponent)
	}
	return p.hessian(m)
}

// LogPosterior evaluates log prior plus log likelihood. A -Inf prior
// short-circuits the likelihood, mirroring samplers that never evaluate
// models outside the prior support.
func (p *Problem) LogPosterior(m []float64) (float64, error) {
	if p.logPrior == nil {
		return 0, fmt.Errorf("log prior: %w", ErrMissingComponent)
	}
	if p.logLikelihood == nil {
		return 0, fmt.Errorf("log likelihood: %w", ErrMissingComponent)
	}
	lp := p.logPrior(m)
	if math.IsInf(lp, -1) {
		return math.Inf(-1), nil
	}
	return lp + p.logLikelihood(m), nil
}

// InitialModel returns a copy of the starting model.
func (p *Problem) InitialModel() ([]float64, error) {
	if p.initial == nil {
		return nil, fmt.Errorf("initial model: %w", ErrMissingComponent)
	}
	return append([]float64(nil), p.initial...), nil
}

// WalkerStarts returns a copy of the per-walker starting positions.
func (p *Problem) WalkerStarts() (*mat.Dense, error) {
	if p.walkerStarts == nil {
		return nil, fmt.Errorf("walker starts: %w", ErrMissingComponent)
	}
	var cp mat.Dense
	cp.CloneFrom(p.walkerStarts)
	return &cp, nil
}

// Defined lists the components currently set, in assembly order.
func (p *Problem) Defined() []string {
	var out []string
	add := func(ok bool, name string) {
		if ok {
			out = append(out, name)
		}
	}
	add(p.forward != nil, "forward")
	add(p.jacobian != nil, "jacobian")
	add(p.residual != nil, "residual")
	add(p.dataMisfit != nil, "data_misfit")
	add(p.regularization != nil, "regularization")
	add(p.gradient != nil, "gradient")
	add(p.hessian != nil, "hessian")
	add(p.logLikelihood != nil, "log_likelihood")
	add(p.logPrior != nil, "log_prior")
	add(p.initial != nil, "initial_model")
	add(p.walkerStarts != nil, "walker_starts")
	return out
}

// Summary renders a short human-readable description of the problem.
func (p *Problem) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Problem: %s\n", p.name)
	fmt.Fprintf(&b, "Components: %s\n", strings.Join(p.Defined(), ", "))
	if p.initial != nil {
		fmt.Fprintf(&b, "Model size: %d\n", len(p.initial))
	}
	return b.String()
}
