// SPDX-License-Identifier: MIT
// Package: resistiv/invert
//
// newton.go - the minimization back end. The minimizer itself is
// gonum/optimize; this file only adapts problem components to its
// callback signatures and maps its result back.
package invert

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
)

// misfitRecorder collects the data misfit at the start of the run and
// after every major iteration, feeding Result.Trace.
type misfitRecorder struct {
	p     *Problem
	trace []float64
}

func (r *misfitRecorder) Init() error { return nil }

func (r *misfitRecorder) Record(loc *optimize.Location, op optimize.Operation, _ *optimize.Stats) error {
	if op != optimize.InitIteration && op != optimize.MajorIteration {
		return nil
	}
	phi, err := r.p.DataMisfit(loc.X)
	if err != nil {
		// The objective path surfaces the same error; keep the trace
		// gap-free by skipping the point instead of aborting here.
		return nil
	}
	r.trace = append(r.trace, phi)
	return nil
}

// runNewton minimizes objective = data misfit + regularization with
// gonum's Newton method, starting from the problem's initial model.
// Component evaluation errors abort the run; the first one is returned.
// Minimizer non-convergence is reported through Result.Converged.
func runNewton(p *Problem, o NewtonOptions) (*Result, error) {
	x0, err := p.InitialModel()
	if err != nil {
		return nil, err
	}

	// optimize callbacks cannot return errors; capture the first one and
	// poison the objective so the minimizer stops making progress.
	var evalErr error
	record := func(err error) {
		if evalErr == nil {
			evalErr = err
		}
	}

	prob := optimize.Problem{
		Func: func(x []float64) float64 {
			v, err := p.Objective(x)
			if err != nil {
				record(err)
				return math.Inf(1)
			}
			return v
		},
		Grad: func(dst, x []float64) {
			g, err := p.Gradient(x)
			if err != nil {
				record(err)
				for i := range dst {
					dst[i] = 0
				}
				return
			}
			copy(dst, g)
		},
		Hess: func(dst *mat.SymDense, x []float64) {
			h, err := p.Hessian(x)
			if err != nil {
				record(err)
				n := len(x)
				for i := 0; i < n; i++ {
					for j := i; j < n; j++ {
						if i == j {
							dst.SetSym(i, j, 1)
						} else {
							dst.SetSym(i, j, 0)
						}
					}
				}
				return
			}
			dst.CopySym(h)
		},
	}

	rec := &misfitRecorder{p: p}
	settings := &optimize.Settings{
		MajorIterations:   o.MaxIterations,
		GradientThreshold: o.GradientTolerance,
		Recorder:          rec,
	}
	res, optErr := optimize.Minimize(prob, x0, settings, &optimize.Newton{})
	if evalErr != nil {
		return nil, fmt.Errorf("invert: newton: %w", evalErr)
	}
	if res == nil {
		return nil, fmt.Errorf("invert: newton: %w", optErr)
	}

	out := &Result{
		Name:       p.Name(),
		Tool:       ToolNewton,
		Model:      append([]float64(nil), res.X...),
		Objective:  res.F,
		Iterations: res.Stats.MajorIterations,
		FuncEvals:  res.Stats.FuncEvaluations,
		Converged:  optErr == nil && res.Status != optimize.IterationLimit,
		Status:     res.Status.String(),
		Trace:      rec.trace,
	}
	if optErr != nil {
		out.Status = optErr.Error()
	}
	if phi, err := p.DataMisfit(out.Model); err == nil {
		out.Misfit = phi
	}
	return out, nil
}
