package mesh_test

import (
	"testing"

	"github.com/katavolt/resistiv/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestSmoothness_Dimensions checks the pair count and matrix shape.
func TestSmoothness_Dimensions(t *testing.T) {
	g, err := mesh.NewGrid(4, 3, mesh.DefaultOptions())
	require.NoError(t, err)

	// Horizontal: 3 per row × 3 rows = 9. Vertical: 4 per column × 2 = 8.
	assert.Equal(t, 17, g.NumInteriorPairs())

	wm := g.Smoothness()
	r, c := wm.Dims()
	assert.Equal(t, 17, r)
	assert.Equal(t, 12, c)
}

// TestSmoothness_RowStructure verifies every row holds exactly one +1 and
// one -1 and therefore annihilates constant models.
func TestSmoothness_RowStructure(t *testing.T) {
	g, err := mesh.NewGrid(5, 4, mesh.DefaultOptions())
	require.NoError(t, err)
	wm := g.Smoothness()
	rows, cols := wm.Dims()

	for i := 0; i < rows; i++ {
		plus, minus, zero := 0, 0, 0
		for j := 0; j < cols; j++ {
			switch wm.At(i, j) {
			case 1:
				plus++
			case -1:
				minus++
			case 0:
				zero++
			}
		}
		require.Equal(t, 1, plus, "row %d", i)
		require.Equal(t, 1, minus, "row %d", i)
		require.Equal(t, cols-2, zero, "row %d", i)
	}

	// Wm applied to a constant model is identically zero.
	constant := mat.NewVecDense(cols, nil)
	for j := 0; j < cols; j++ {
		constant.SetVec(j, 42.0)
	}
	var out mat.VecDense
	out.MulVec(wm, constant)
	for i := 0; i < rows; i++ {
		assert.InDelta(t, 0, out.AtVec(i), 1e-12, "row %d", i)
	}
}

// TestSmoothness_SingleCell checks the degenerate 1×1 grid has no pairs.
func TestSmoothness_SingleCell(t *testing.T) {
	g, err := mesh.NewGrid(1, 1, mesh.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 0, g.NumInteriorPairs())
	assert.Nil(t, g.Smoothness(), "no interior faces, no operator")
}
