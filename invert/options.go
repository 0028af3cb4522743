// SPDX-License-Identifier: MIT
// Package: resistiv/invert
//
// options.go - back-end selection and tunables, resolved before any back
// end runs. Validation happens in New, never mid-run.
package invert

// NewtonOptions tunes the gonum Newton minimizer back end.
type NewtonOptions struct {
	// MaxIterations bounds the number of major iterations.
	MaxIterations int
	// GradientTolerance stops the run once ‖gradient‖∞ falls below it.
	GradientTolerance float64
}

// EnsembleOptions tunes the Metropolis-Hastings ensemble back end.
type EnsembleOptions struct {
	// Walkers is the number of independent chains. It must match the
	// problem's walker-start row count; New rejects a mismatch.
	Walkers int
	// Steps is the number of retained samples per walker.
	Steps int
	// BurnIn is the number of initial samples each chain discards.
	BurnIn int
	// StepSize is the isotropic Gaussian proposal standard deviation.
	StepSize float64
	// Seed drives the proposal and acceptance streams; walker w uses Seed+w.
	Seed uint64
}

// Options selects the back end and carries its tunables.
type Options struct {
	Tool     Tool
	Newton   NewtonOptions
	Ensemble EnsembleOptions
}

// DefaultOptions returns an Options with default settings: Newton with
// 100 iterations and 1e-8 gradient tolerance; ensemble with 32 walkers,
// 500 steps, 100 burn-in, unit-less step size 1, seed 42.
func DefaultOptions() Options {
	return Options{
		Tool: ToolNewton,
		Newton: NewtonOptions{
			MaxIterations:     100,
			GradientTolerance: 1e-8,
		},
		Ensemble: EnsembleOptions{
			Walkers:  32,
			Steps:    500,
			BurnIn:   100,
			StepSize: 1,
			Seed:     42,
		},
	}
}
