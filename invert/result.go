// SPDX-License-Identifier: MIT
// Package: resistiv/invert
//
// result.go - the uniform run outcome for both back ends.
package invert

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Result is the outcome of one Inversion.Run. Model is the minimizer for
// ToolNewton and the chain mean for ToolEnsemble; Chain is nil for
// ToolNewton.
type Result struct {
	Name      string
	Tool      Tool
	Model     []float64
	Misfit    float64
	Objective float64
	// Iterations and FuncEvals report minimizer effort (Newton only).
	Iterations int
	FuncEvals  int
	Converged  bool
	Status     string
	// Trace holds the data misfit at the start and after each major
	// iteration (Newton only).
	Trace []float64

	// Chain holds walkers×steps rows of sampled models (ensemble only).
	Chain   *mat.Dense
	Walkers int
	Steps   int
	// Accepted counts retained steps whose position changed. The move
	// into each walker's first retained sample is not observed, so the
	// count can lag true acceptances by up to Walkers; its ceiling is
	// Walkers×(Steps−1).
	Accepted int
}

// Summary renders a short human-readable report of the run.
func (r *Result) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Inversion result: %s\n", r.Name)
	fmt.Fprintf(&b, "Tool: %s\n", r.Tool)
	fmt.Fprintf(&b, "Status: %s (converged=%v)\n", r.Status, r.Converged)
	switch r.Tool {
	case ToolEnsemble:
		total := r.Walkers * r.Steps
		fmt.Fprintf(&b, "Samples: %d walkers × %d steps = %d\n", r.Walkers, r.Steps, total)
		if total > 0 {
			fmt.Fprintf(&b, "Acceptance: %.1f%%\n", 100*float64(r.Accepted)/float64(total))
		}
	default:
		fmt.Fprintf(&b, "Iterations: %d (function evaluations: %d)\n", r.Iterations, r.FuncEvals)
	}
	fmt.Fprintf(&b, "Data misfit: %.6g\n", r.Misfit)
	fmt.Fprintf(&b, "Objective: %.6g\n", r.Objective)
	fmt.Fprintf(&b, "Model size: %d\n", len(r.Model))
	return b.String()
}

// FlatChain flattens the ensemble chain: per walker, the first discard
// samples are dropped and every thin-th of the rest is kept, then all
// walkers are stacked. thin < 1 is treated as 1.
// Returns ErrEmptyChain if there is no chain or nothing remains.
func (r *Result) FlatChain(discard, thin int) (*mat.Dense, error) {
	if r.Chain == nil || r.Walkers < 1 || r.Steps < 1 {
		return nil, ErrEmptyChain
	}
	if thin < 1 {
		thin = 1
	}
	if discard < 0 {
		discard = 0
	}
	if discard >= r.Steps {
		return nil, fmt.Errorf("discard %d of %d steps: %w", discard, r.Steps, ErrEmptyChain)
	}
	_, dim := r.Chain.Dims()
	perWalker := (r.Steps - discard + thin - 1) / thin
	out := mat.NewDense(r.Walkers*perWalker, dim, nil)
	row := 0
	for w := 0; w < r.Walkers; w++ {
		for s := discard; s < r.Steps; s += thin {
			out.SetRow(row, r.Chain.RawRowView(w*r.Steps+s))
			row++
		}
	}
	return out, nil
}
