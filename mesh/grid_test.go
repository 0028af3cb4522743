package mesh_test

import (
	"testing"

	"github.com/katavolt/resistiv/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewGrid_Validation covers the constructor sentinels.
func TestNewGrid_Validation(t *testing.T) {
	_, err := mesh.NewGrid(0, 5, mesh.DefaultOptions())
	assert.ErrorIs(t, err, mesh.ErrEmptyGrid, "nx=0 must error")

	_, err = mesh.NewGrid(5, 0, mesh.DefaultOptions())
	assert.ErrorIs(t, err, mesh.ErrEmptyGrid, "nz=0 must error")

	opts := mesh.DefaultOptions()
	opts.DX = 0
	_, err = mesh.NewGrid(5, 5, opts)
	assert.ErrorIs(t, err, mesh.ErrBadSpacing, "DX=0 must error")
}

// TestGrid_IndexAndCenter checks row-major indexing and center geometry.
func TestGrid_IndexAndCenter(t *testing.T) {
	opts := mesh.Options{X0: 10, Z0: 0, DX: 2, DZ: 1}
	g, err := mesh.NewGrid(4, 3, opts)
	require.NoError(t, err)

	assert.Equal(t, 12, g.NumCells())
	assert.Equal(t, 6, g.Index(2, 1), "iz*NX+ix")
	assert.True(t, g.InBounds(3, 2))
	assert.False(t, g.InBounds(4, 0))

	x, z, err := g.CellCenter(g.Index(0, 0))
	require.NoError(t, err)
	assert.InDelta(t, 11.0, x, 1e-12, "first column center")
	assert.InDelta(t, -0.5, z, 1e-12, "first row center, depth positive down")

	x, z, err = g.CellCenter(g.Index(3, 2))
	require.NoError(t, err)
	assert.InDelta(t, 17.0, x, 1e-12)
	assert.InDelta(t, -2.5, z, 1e-12)

	_, _, err = g.CellCenter(12)
	assert.ErrorIs(t, err, mesh.ErrCellIndex)
}

// TestGrid_MarkersAndModel covers marker boxes and model construction.
func TestGrid_MarkersAndModel(t *testing.T) {
	g, err := mesh.NewGrid(5, 4, mesh.DefaultOptions())
	require.NoError(t, err)

	// Box clipped at the right edge; interior anomaly marker 2.
	g.SetMarkerBox(3, 1, 9, 2, 2)

	m, err := g.Marker(g.Index(3, 1))
	require.NoError(t, err)
	assert.Equal(t, 2, m)
	m, err = g.Marker(g.Index(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, m, "untouched cells keep marker 1")

	model, err := g.ModelFromMarkers(map[int]float64{1: 200, 2: 50})
	require.NoError(t, err)
	require.NoError(t, g.CheckModel(model))
	assert.Equal(t, 50.0, model[g.Index(4, 2)])
	assert.Equal(t, 200.0, model[g.Index(0, 3)])

	_, err = g.ModelFromMarkers(map[int]float64{1: 200})
	assert.ErrorIs(t, err, mesh.ErrUnknownMarker, "marker 2 unmapped")
}

// TestGrid_CheckModel verifies the dimension sentinel.
func TestGrid_CheckModel(t *testing.T) {
	g, err := mesh.NewGrid(3, 3, mesh.DefaultOptions())
	require.NoError(t, err)
	assert.ErrorIs(t, g.CheckModel(make([]float64, 8)), mesh.ErrDimensionMismatch)
	assert.NoError(t, g.CheckModel(make([]float64, 9)))
}
