package mesh

import (
	"errors"
)

// Sentinel errors for mesh operations.
var (
	// ErrEmptyGrid indicates a grid with no cells in one of its dimensions.
	ErrEmptyGrid = errors.New("mesh: grid must have at least one cell per dimension")
	// ErrBadSpacing indicates a non-positive cell size.
	ErrBadSpacing = errors.New("mesh: cell sizes must be positive")
	// ErrCellIndex indicates a cell index outside the grid.
	ErrCellIndex = errors.New("mesh: cell index out of range")
	// ErrDimensionMismatch indicates a model vector whose length differs from the cell count.
	ErrDimensionMismatch = errors.New("mesh: model length does not match cell count")
	// ErrUnknownMarker indicates a cell marker with no resistivity assigned.
	ErrUnknownMarker = errors.New("mesh: no resistivity assigned to marker")
)

// Options contains tunable parameters for grid construction.
type Options struct {
	// X0 is the x coordinate of the left edge of the grid.
	X0 float64
	// Z0 is the elevation of the top edge of the grid (the surface).
	Z0 float64
	// DX, DZ are the cell width and height.
	DX, DZ float64
}

// DefaultOptions returns an Options with default settings:
// origin (0, 0), unit cells.
func DefaultOptions() Options {
	return Options{X0: 0, Z0: 0, DX: 1, DZ: 1}
}

// Grid is a rectangular inversion mesh of NX by NZ cells. Cells are stored
// row-major by depth row: cell index i = iz*NX + ix. Depth grows downward,
// so the center of row iz sits at Z0 - (iz+0.5)*DZ. It is immutable in
// geometry once built; only markers may be assigned.
type Grid struct {
	NX, NZ int
	X0, Z0 float64
	DX, DZ float64

	markers []int
}
