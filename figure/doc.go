// Package figure persists the drivers' only on-disk artifact: PNG
// renderings of models, data series, and scalar traces.
//
// What:
//
//   - SaveModel: per-cell model heat map over a mesh.Grid.
//   - SaveData: one value per scheme measurement, line plus points.
//   - SaveTrace: a scalar series over steps.
//
// All three create parent directories and choose a fixed 16×8 cm canvas;
// callers control only content, titles, and destination paths.
//
// Errors:
//
//   - ErrNoValues: empty series.
//   - ErrLengthMismatch: series and scheme lengths differ.
//   - mesh.ErrDimensionMismatch: model does not fit the grid.
package figure
