// Package invert implements the inversion-problem assembly pattern: a
// Problem collects named components as closures, Options selects an
// imported back end, and Inversion.Run dispatches to it.
//
// What:
//
//   - Problem: settable forward / jacobian / residual / data misfit /
//     regularization / gradient / hessian / log likelihood / log prior /
//     initial model / walker starts, with checked accessors.
//   - Tikhonov: the recurring seven-adapter assembly around one forward
//     operator, log data, a roughness matrix and a trade-off weight.
//   - ToolNewton: gonum/optimize Newton minimization of misfit+reg.
//   - ToolEnsemble: gonum/stat/samplemv Metropolis-Hastings, one chain
//     per walker, stacked into Result.Chain.
//
// Why:
//
//   - The glue is the product: the numerical cores live in gonum, and the
//     assembly stays declarative, mirroring "set components, call run".
//   - One Result shape serves both deterministic and Bayesian runs.
//
// Concurrency:
//
//   - Everything runs on the calling goroutine; walkers sample
//     sequentially. Determinism comes from explicit seeds.
//
// Errors:
//
//   - ErrNilProblem, ErrMissingComponent, ErrBadComponent: assembly gaps.
//   - ErrBadOption, ErrUnknownTool: bad back-end selection or tunables.
//   - ErrEmptyChain: FlatChain with no remaining samples.
package invert
