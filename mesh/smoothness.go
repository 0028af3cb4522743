package mesh

import (
	"gonum.org/v1/gonum/mat"
)

// NumInteriorPairs returns the number of adjacent cell pairs in the grid:
// horizontal pairs plus vertical pairs.
// Complexity: O(1).
func (g *Grid) NumInteriorPairs() int {
	return g.NZ*(g.NX-1) + g.NX*(g.NZ-1)
}

// Smoothness builds the first-order roughness operator Wm of the grid:
// one row per adjacent cell pair, +1 at the cell and -1 at its right or
// down neighbor. Wm·m is the vector of model differences across interior
// cell faces, so ‖Wm·m‖² penalizes rough models.
// A single-cell grid has no interior faces; Smoothness returns nil then.
// Complexity: O(NX×NZ) time, O(pairs × cells) memory for the dense matrix.
func (g *Grid) Smoothness() *mat.Dense {
	rows := g.NumInteriorPairs()
	if rows == 0 {
		return nil
	}
	wm := mat.NewDense(rows, g.NumCells(), nil)
	row := 0
	for iz := 0; iz < g.NZ; iz++ {
		for ix := 0; ix < g.NX; ix++ {
			for _, d := range forwardOffsets {
				nx, nz := ix+d[0], iz+d[1]
				if !g.InBounds(nx, nz) {
					continue
				}
				wm.Set(row, g.Index(ix, iz), 1)
				wm.Set(row, g.Index(nx, nz), -1)
				row++
			}
		}
	}
	return wm
}
