// SPDX-License-Identifier: MIT
// Package: resistiv/invert
//
// ensemble.go - the sampling back end. The sampler itself is
// gonum/stat/samplemv Metropolis-Hastings; this file runs it once per
// walker from the problem's start positions and concatenates the chains.
package invert

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/samplemv"
)

// posterior adapts a Problem's log densities to the sampler's target
// interface. New guarantees both densities are set before this is built.
type posterior struct {
	p *Problem
}

// LogProb returns the unnormalized log posterior at x.
func (t posterior) LogProb(x []float64) float64 {
	// Both densities are validated in New; the error path is unreachable.
	v, _ := t.p.LogPosterior(x)
	return v
}

// runEnsemble samples the log posterior with one Metropolis-Hastings
// chain per walker-start row, all sequential, then reports the stacked
// chain, its mean model, and the overall acceptance count.
// Returns ErrBadOption if the proposal covariance is rejected.
func runEnsemble(p *Problem, o EnsembleOptions) (*Result, error) {
	starts, err := p.WalkerStarts()
	if err != nil {
		return nil, err
	}
	walkers, dim := starts.Dims()
	if walkers < 1 {
		return nil, fmt.Errorf("no walker starts: %w", ErrBadOption)
	}

	sigma := mat.NewSymDense(dim, nil)
	for i := 0; i < dim; i++ {
		sigma.SetSym(i, i, o.StepSize*o.StepSize)
	}

	target := posterior{p: p}
	chain := mat.NewDense(walkers*o.Steps, dim, nil)
	accepted := 0
	for w := 0; w < walkers; w++ {
		src := rand.NewSource(o.Seed + uint64(w))
		proposal, ok := samplemv.NewProposalNormal(sigma, src)
		if !ok {
			return nil, fmt.Errorf("proposal covariance not positive definite: %w", ErrBadOption)
		}
		mh := samplemv.MetropolisHastingser{
			Initial:  starts.RawRowView(w),
			Target:   target,
			Proposal: proposal,
			Src:      src,
			BurnIn:   o.BurnIn,
		}
		batch := chain.Slice(w*o.Steps, (w+1)*o.Steps, 0, dim).(*mat.Dense)
		mh.Sample(batch)

		for s := 1; s < o.Steps; s++ {
			if !sameRow(batch, s-1, s) {
				accepted++
			}
		}
	}

	model := make([]float64, dim)
	rows, _ := chain.Dims()
	for j := 0; j < dim; j++ {
		sum := 0.0
		for i := 0; i < rows; i++ {
			sum += chain.At(i, j)
		}
		model[j] = sum / float64(rows)
	}

	out := &Result{
		Name:      p.Name(),
		Tool:      ToolEnsemble,
		Model:     model,
		Converged: true,
		Status:    "sampling complete",
		Chain:     chain,
		Walkers:   walkers,
		Steps:     o.Steps,
		Accepted:  accepted,
	}
	if phi, err := p.DataMisfit(model); err == nil {
		out.Misfit = phi
		if obj, err := p.Objective(model); err == nil {
			out.Objective = obj
		}
	}
	return out, nil
}

// sameRow reports whether rows a and b of m are identical.
func sameRow(m *mat.Dense, a, b int) bool {
	ra, rb := m.RawRowView(a), m.RawRowView(b)
	for i := range ra {
		if ra[i] != rb[i] {
			return false
		}
	}
	return true
}
