// Package survey builds ERT measurement schemes over straight surface
// profiles.
//
// What:
//
//   - Scheme pairs an electrode layout with an ordered quadrupole list.
//   - NewWenner generates the Wenner-alpha sequence (A, M, N, B equally
//     spaced) over all levels that fit on the line.
//   - NewDipoleDipole generates trailing potential dipoles at separations
//     1..maxSep behind a unit current dipole.
//   - GeometricFactor converts a measured resistance to an apparent
//     resistivity scale for a half-space.
//
// Why:
//
//   - Synthetic surveys: feed the forward operator a realistic acquisition.
//   - Field layouts: the same quadrupole bookkeeping applies to real data.
//
// Complexity:
//
//   - NewWenner:        O(n²) measurements, Memory: O(n²).
//   - NewDipoleDipole:  O(n·maxSep) measurements, Memory: O(n·maxSep).
//   - GeometricFactor:  O(1).
//
// Errors:
//
//   - ErrTooFewElectrodes: fewer than four electrodes.
//   - ErrBadSpacing: non-positive electrode spacing.
//   - ErrBadSeparation: non-positive dipole separation limit.
//   - ErrElectrodeIndex: quadrupole references an electrode out of range.
//   - ErrDegenerate: geometric factor is not finite.
package survey
