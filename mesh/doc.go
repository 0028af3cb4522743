// Package mesh provides rectangular inversion grids: the discretization
// that carries per-cell resistivity model vectors.
//
// What:
//
//   - Grid wraps an NX×NZ arrangement of rectangular cells below a flat
//     surface, row-major by depth row (i = iz*NX + ix).
//   - Region markers label cells; ModelFromMarkers turns a marker → Ωm map
//     into a model vector (the "true model" construction of the drivers).
//   - Smoothness builds the first-order roughness operator over cell
//     adjacency, the Wm matrix of Tikhonov regularization.
//
// Why:
//
//   - Inversion needs a fixed parameterization: one resistivity per cell.
//   - Regularization needs cell adjacency: Wm rows are interior faces.
//
// Complexity:
//
//   - NewGrid:     O(NX×NZ), Memory: O(NX×NZ).
//   - Smoothness:  O(NX×NZ) assembly into a pairs×cells dense matrix.
//   - Index/CellCenter/InBounds: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: a dimension is < 1.
//   - ErrBadSpacing: DX or DZ not positive.
//   - ErrCellIndex: cell index out of range.
//   - ErrDimensionMismatch: model length differs from the cell count.
//   - ErrUnknownMarker: marker missing from a resistivity map.
package mesh
