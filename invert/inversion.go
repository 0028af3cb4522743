// SPDX-License-Identifier: MIT
// Package: resistiv/invert
//
// inversion.go - the single orchestrator: New validates the assembly
// against the selected tool, Run dispatches to the imported back end.
//
// Design contract (strict):
//   - One entry point: New(problem, options) then Run().
//   - New fails fast with ErrMissingComponent / ErrBadOption naming the
//     gap; Run never discovers a missing component.
//   - Back ends are imported (gonum); this file only routes.
package invert

import (
	"fmt"
)

// Inversion binds a validated problem to a back end selection.
type Inversion struct {
	problem *Problem
	opts    Options
}

// New validates that problem defines every component opts.Tool consumes
// and that the tool's tunables are in range.
// Returns ErrNilProblem, ErrMissingComponent, ErrBadOption, or
// ErrUnknownTool.
// Complexity: O(1).
func New(problem *Problem, opts Options) (*Inversion, error) {
	if problem == nil {
		return nil, ErrNilProblem
	}
	switch opts.Tool {
	case ToolNewton:
		if problem.initial == nil {
			return nil, fmt.Errorf("newton needs initial model: %w", ErrMissingComponent)
		}
		if problem.dataMisfit == nil {
			return nil, fmt.Errorf("newton needs data misfit: %w", ErrMissingComponent)
		}
		if problem.gradient == nil {
			return nil, fmt.Errorf("newton needs gradient: %w", ErrMissingComponent)
		}
		if problem.hessian == nil {
			return nil, fmt.Errorf("newton needs hessian: %w", ErrMissingComponent)
		}
		if opts.Newton.MaxIterations < 1 {
			return nil, fmt.Errorf("max iterations %d: %w", opts.Newton.MaxIterations, ErrBadOption)
		}
		if opts.Newton.GradientTolerance <= 0 {
			return nil, fmt.Errorf("gradient tolerance %v: %w", opts.Newton.GradientTolerance, ErrBadOption)
		}
	case ToolEnsemble:
		if problem.logLikelihood == nil {
			return nil, fmt.Errorf("ensemble needs log likelihood: %w", ErrMissingComponent)
		}
		if problem.logPrior == nil {
			return nil, fmt.Errorf("ensemble needs log prior: %w", ErrMissingComponent)
		}
		if problem.walkerStarts == nil {
			return nil, fmt.Errorf("ensemble needs walker starts: %w", ErrMissingComponent)
		}
		if rows, _ := problem.walkerStarts.Dims(); opts.Ensemble.Walkers != rows {
			return nil, fmt.Errorf("walkers %d but %d start rows: %w",
				opts.Ensemble.Walkers, rows, ErrBadOption)
		}
		if opts.Ensemble.Steps < 1 {
			return nil, fmt.Errorf("steps %d: %w", opts.Ensemble.Steps, ErrBadOption)
		}
		if opts.Ensemble.BurnIn < 0 {
			return nil, fmt.Errorf("burn-in %d: %w", opts.Ensemble.BurnIn, ErrBadOption)
		}
		if opts.Ensemble.StepSize <= 0 {
			return nil, fmt.Errorf("step size %v: %w", opts.Ensemble.StepSize, ErrBadOption)
		}
	default:
		return nil, fmt.Errorf("tool %d: %w", opts.Tool, ErrUnknownTool)
	}
	return &Inversion{problem: problem, opts: opts}, nil
}

// Run executes the selected back end and returns its result. Component
// evaluation errors abort the run; back-end non-convergence is reported
// through Result.Converged and Result.Status, not as an error.
func (inv *Inversion) Run() (*Result, error) {
	switch inv.opts.Tool {
	case ToolNewton:
		return runNewton(inv.problem, inv.opts.Newton)
	case ToolEnsemble:
		return runEnsemble(inv.problem, inv.opts.Ensemble)
	default:
		// New rejects unknown tools; this is unreachable through the API.
		return nil, fmt.Errorf("tool %d: %w", inv.opts.Tool, ErrUnknownTool)
	}
}
