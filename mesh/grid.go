package mesh

import (
	"fmt"
)

// forwardOffsets enumerates each interior cell pair exactly once:
// right neighbor and down neighbor.
var forwardOffsets = [2][2]int{{1, 0}, {0, 1}}

// NewGrid constructs an NX by NZ grid with the given geometry options.
// All cells start with marker 1.
// Returns ErrEmptyGrid if either dimension is < 1,
// ErrBadSpacing if DX or DZ is not positive.
// Complexity: O(NX×NZ) time and memory.
func NewGrid(nx, nz int, opts Options) (*Grid, error) {
	if nx < 1 || nz < 1 {
		return nil, ErrEmptyGrid
	}
	if opts.DX <= 0 || opts.DZ <= 0 {
		return nil, ErrBadSpacing
	}
	markers := make([]int, nx*nz)
	for i := range markers {
		markers[i] = 1
	}
	return &Grid{
		NX: nx, NZ: nz,
		X0: opts.X0, Z0: opts.Z0,
		DX: opts.DX, DZ: opts.DZ,
		markers: markers,
	}, nil
}

// NumCells returns the number of cells in the grid.
// Complexity: O(1).
func (g *Grid) NumCells() int { return g.NX * g.NZ }

// InBounds reports whether (ix, iz) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(ix, iz int) bool {
	return ix >= 0 && ix < g.NX && iz >= 0 && iz < g.NZ
}

// Index maps (ix, iz) to the row-major cell index iz*NX + ix.
// Complexity: O(1).
func (g *Grid) Index(ix, iz int) int { return iz*g.NX + ix }

// CellCenter returns the center coordinates of cell i.
// Returns ErrCellIndex if i is outside the grid.
// Complexity: O(1).
func (g *Grid) CellCenter(i int) (x, z float64, err error) {
	if i < 0 || i >= g.NumCells() {
		return 0, 0, fmt.Errorf("cell %d of %d: %w", i, g.NumCells(), ErrCellIndex)
	}
	ix, iz := i%g.NX, i/g.NX
	x = g.X0 + (float64(ix)+0.5)*g.DX
	z = g.Z0 - (float64(iz)+0.5)*g.DZ
	return x, z, nil
}

// CellArea returns the area of a single cell.
// Complexity: O(1).
func (g *Grid) CellArea() float64 { return g.DX * g.DZ }

// Marker returns the region marker of cell i.
// Returns ErrCellIndex if i is outside the grid.
// Complexity: O(1).
func (g *Grid) Marker(i int) (int, error) {
	if i < 0 || i >= g.NumCells() {
		return 0, fmt.Errorf("cell %d of %d: %w", i, g.NumCells(), ErrCellIndex)
	}
	return g.markers[i], nil
}

// SetMarkerBox assigns marker to every cell whose indices fall inside the
// inclusive box [ix0, ix1] × [iz0, iz1]. The box is clipped to the grid,
// so an out-of-range box is not an error, it simply marks fewer cells.
// Complexity: O(box area).
func (g *Grid) SetMarkerBox(ix0, iz0, ix1, iz1, marker int) {
	if ix0 > ix1 {
		ix0, ix1 = ix1, ix0
	}
	if iz0 > iz1 {
		iz0, iz1 = iz1, iz0
	}
	ix0 = max(ix0, 0)
	iz0 = max(iz0, 0)
	ix1 = min(ix1, g.NX-1)
	iz1 = min(iz1, g.NZ-1)
	for iz := iz0; iz <= iz1; iz++ {
		for ix := ix0; ix <= ix1; ix++ {
			g.markers[g.Index(ix, iz)] = marker
		}
	}
}

// ModelFromMarkers builds a per-cell model vector by looking every cell's
// marker up in rhomap.
// Returns ErrUnknownMarker naming the first marker missing from rhomap.
// Complexity: O(NX×NZ).
func (g *Grid) ModelFromMarkers(rhomap map[int]float64) ([]float64, error) {
	model := make([]float64, g.NumCells())
	for i, m := range g.markers {
		rho, ok := rhomap[m]
		if !ok {
			return nil, fmt.Errorf("marker %d at cell %d: %w", m, i, ErrUnknownMarker)
		}
		model[i] = rho
	}
	return model, nil
}

// CheckModel verifies that model has one value per cell.
// Returns ErrDimensionMismatch otherwise.
// Complexity: O(1).
func (g *Grid) CheckModel(model []float64) error {
	if len(model) != g.NumCells() {
		return fmt.Errorf("got %d values for %d cells: %w", len(model), g.NumCells(), ErrDimensionMismatch)
	}
	return nil
}
