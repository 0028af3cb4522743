// SPDX-License-Identifier: MIT
// Package: resistiv/invert
//
// tikhonov.go - the recurring assembly: seven adapter closures over one
// forward operator, wired into a Problem in a single call.
package invert

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katavolt/resistiv/ert"
)

// Tikhonov assembles a smoothness-regularized log-data problem around op:
//
//	forward(m)        = log(op.Response(m))
//	jacobian(m)       = J, the operator sensitivity scaled to log-log
//	                    space: J[i][j] = J0[i][j] · m[j] / response[i]
//	residual(m)       = yObs − forward(m)
//	data_misfit(m)    = residualᵀ residual
//	regularization(m) = λ ‖Wm m‖²
//	gradient(m)       = −2 Jᵀ residual + 2λ Wmᵀ Wm m
//	hessian(m)        = 2 Jᵀ J + 2λ Wmᵀ Wm
//
// plus the starting model. yObs is the observed log apparent resistivity
// vector, wm the roughness operator (nil disables regularization), lambda
// the trade-off weight.
// Returns ErrBadComponent for a nil operator, negative lambda, empty
// start, or a wm/start shape mismatch.
// Complexity: assembly precomputes Wmᵀ Wm once, O(cells²·pairs); each
// closure call costs one forward and/or one Jacobian evaluation.
func Tikhonov(name string, op ert.Operator, yObs []float64, wm *mat.Dense, lambda float64, start []float64) (*Problem, error) {
	if op == nil {
		return nil, fmt.Errorf("operator: %w", ErrBadComponent)
	}
	if lambda < 0 || math.IsNaN(lambda) {
		return nil, fmt.Errorf("lambda %v: %w", lambda, ErrBadComponent)
	}
	if len(start) == 0 {
		return nil, fmt.Errorf("starting model: %w", ErrBadComponent)
	}
	if len(yObs) == 0 {
		return nil, fmt.Errorf("observed data: %w", ErrBadComponent)
	}
	dim := len(start)

	// Wm'Wm is model-independent; precompute once for gradient and hessian.
	var wtw *mat.Dense
	if wm != nil {
		_, c := wm.Dims()
		if c != dim {
			return nil, fmt.Errorf("wm has %d columns for %d cells: %w", c, dim, ErrBadComponent)
		}
		wtw = &mat.Dense{}
		wtw.Mul(wm.T(), wm)
	}

	forward := func(m []float64) ([]float64, error) {
		resp, err := op.Response(m)
		if err != nil {
			return nil, err
		}
		out := make([]float64, len(resp))
		for i, v := range resp {
			out[i] = math.Log(v)
		}
		return out, nil
	}

	jacobian := func(m []float64) (*mat.Dense, error) {
		resp, err := op.Response(m)
		if err != nil {
			return nil, err
		}
		j0, err := op.Jacobian(m)
		if err != nil {
			return nil, err
		}
		r, c := j0.Dims()
		jac := mat.NewDense(r, c, nil)
		for i := 0; i < r; i++ {
			for jj := 0; jj < c; jj++ {
				jac.Set(i, jj, j0.At(i, jj)*m[jj]/resp[i])
			}
		}
		return jac, nil
	}

	residual := func(m []float64) ([]float64, error) {
		synth, err := forward(m)
		if err != nil {
			return nil, err
		}
		if len(synth) != len(yObs) {
			return nil, fmt.Errorf("response %d vs data %d: %w", len(synth), len(yObs), ErrBadComponent)
		}
		res := make([]float64, len(yObs))
		floats.SubTo(res, yObs, synth)
		return res, nil
	}

	misfit := func(m []float64) (float64, error) {
		res, err := residual(m)
		if err != nil {
			return 0, err
		}
		return floats.Dot(res, res), nil
	}

	regularization := func(m []float64) (float64, error) {
		if wm == nil || lambda == 0 {
			return 0, nil
		}
		var wmm mat.VecDense
		wmm.MulVec(wm, mat.NewVecDense(len(m), m))
		return lambda * mat.Dot(&wmm, &wmm), nil
	}

	gradient := func(m []float64) ([]float64, error) {
		res, err := residual(m)
		if err != nil {
			return nil, err
		}
		jac, err := jacobian(m)
		if err != nil {
			return nil, err
		}
		var g mat.VecDense
		g.MulVec(jac.T(), mat.NewVecDense(len(res), res))
		out := make([]float64, dim)
		for i := range out {
			out[i] = -2 * g.AtVec(i)
		}
		if wtw != nil && lambda != 0 {
			var reg mat.VecDense
			reg.MulVec(wtw, mat.NewVecDense(len(m), m))
			for i := range out {
				out[i] += 2 * lambda * reg.AtVec(i)
			}
		}
		return out, nil
	}

	hessian := func(m []float64) (*mat.SymDense, error) {
		jac, err := jacobian(m)
		if err != nil {
			return nil, err
		}
		var jtj mat.Dense
		jtj.Mul(jac.T(), jac)
		h := mat.NewSymDense(dim, nil)
		for i := 0; i < dim; i++ {
			for jj := i; jj < dim; jj++ {
				v := 2 * jtj.At(i, jj)
				if wtw != nil && lambda != 0 {
					v += 2 * lambda * wtw.At(i, jj)
				}
				h.SetSym(i, jj, v)
			}
		}
		return h, nil
	}

	p := NewProblem(name).
		SetForward(forward).
		SetJacobian(jacobian).
		SetResidual(residual).
		SetDataMisfit(misfit).
		SetRegularization(regularization).
		SetGradient(gradient).
		SetHessian(hessian).
		SetInitialModel(start)
	return p, nil
}
