// Package ert provides the forward side of electrical resistivity
// tomography: an Operator abstraction plus a compact linearized
// half-space implementation and synthetic data generation.
//
// What:
//
//   - Operator: Response (model → apparent resistivities) and Jacobian,
//     the two calls every inversion component is assembled from.
//   - HalfSpace: Born-approximation operator whose sensitivity matrix is
//     built once from the analytic half-space Frechet kernel at cell
//     centers, row-normalized so homogeneous models are exact.
//   - Simulate: clean response plus multiplicative lognormal noise and
//     the matching inverse data covariance.
//
// Why:
//
//   - The inversion layer only consumes the Operator interface; a full
//     finite-element solver can be swapped in without touching it.
//   - Linearized sensitivities keep the example drivers runnable in
//     milliseconds while exercising the whole assembly end to end.
//
// Complexity:
//
//   - NewHalfSpace: O(measurements × cells) assembly.
//   - Response/Jacobian: O(measurements × cells) per call.
//
// Errors:
//
//   - ErrEmptyScheme: scheme carries no measurements.
//   - ErrDimensionMismatch: model length differs from operator cells.
//   - ErrNonPositiveModel: resistivity at or below zero.
//   - ErrNumericalBreakdown: NaN, Inf, or non-positive response.
//   - ErrBadNoise: relative noise outside (0, 1).
package ert
