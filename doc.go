// Package resistiv wires an electrical resistivity tomography (ERT)
// forward model into a generic inversion assembly layer, with Newton
// minimization and ensemble sampling back ends supplied by gonum.
//
// 🚀 What is resistiv?
//
//	A small toolkit that brings together:
//		• Survey schemes: Wenner and dipole-dipole electrode arrays
//		• Meshes: rectangular inversion grids with region markers
//		• Forward modelling: linearized half-space apparent resistivities
//		• Problem assembly: forward / jacobian / residual / misfit /
//		  regularization / gradient / hessian wired as closures
//		• Back ends: gonum's Newton minimizer and Metropolis-Hastings
//		  sampler, invoked, never reimplemented
//		• Figures: model heatmaps and data plots persisted as PNG
//
// ✨ Why resistiv?
//
//   - Glue, not an engine: the numerical cores stay in gonum
//   - Deterministic: every stochastic path takes an explicit seed
//   - Plain Go: explicit errors, no panics in library code
//
// Under the hood, everything is organized under these subpackages:
//
//	survey/   — electrode layouts, quadrupoles, geometric factors
//	mesh/     — rectangular grids, markers, smoothness operators
//	ert/      — forward operator and synthetic data generation
//	invert/   — problem assembly, options and inversion back ends
//	figure/   — PNG persistence for models and data
//	buildrun/ — the packaging helper's step runner
//	cmd/      — ertinv (example drivers) and buildcheck binaries
//
//	go get github.com/katavolt/resistiv
package resistiv
