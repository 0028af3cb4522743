package figure_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katavolt/resistiv/figure"
	"github.com/katavolt/resistiv/mesh"
	"github.com/katavolt/resistiv/survey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requirePNG asserts path exists and is non-trivially sized.
func requirePNG(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(100), "PNG should not be empty")
}

// TestSaveModel_WritesPNG covers the heat map path, including the flat
// model edge case and nested output directories.
func TestSaveModel_WritesPNG(t *testing.T) {
	g, err := mesh.NewGrid(6, 3, mesh.DefaultOptions())
	require.NoError(t, err)
	g.SetMarkerBox(2, 1, 3, 2, 2)
	model, err := g.ModelFromMarkers(map[int]float64{1: 200, 2: 50})
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "figs", "model.png")
	require.NoError(t, figure.SaveModel(g, model, "True model", path))
	requirePNG(t, path)

	// Flat model: color range padding must keep rendering defined.
	flat := make([]float64, g.NumCells())
	for i := range flat {
		flat[i] = 100
	}
	flatPath := filepath.Join(dir, "flat.png")
	require.NoError(t, figure.SaveModel(g, flat, "Starting model", flatPath))
	requirePNG(t, flatPath)
}

// TestSaveModel_BadModel verifies the dimension sentinel passes through.
func TestSaveModel_BadModel(t *testing.T) {
	g, err := mesh.NewGrid(4, 2, mesh.DefaultOptions())
	require.NoError(t, err)
	err = figure.SaveModel(g, make([]float64, 3), "bad", filepath.Join(t.TempDir(), "x.png"))
	assert.ErrorIs(t, err, mesh.ErrDimensionMismatch)
}

// TestSaveData_WritesPNG covers the data series path and its sentinels.
func TestSaveData_WritesPNG(t *testing.T) {
	s, err := survey.NewWenner(7, 1.0)
	require.NoError(t, err)

	vals := make([]float64, s.Len())
	for i := range vals {
		vals[i] = 100 + float64(i)
	}
	path := filepath.Join(t.TempDir(), "data.png")
	require.NoError(t, figure.SaveData(s, vals, "Observed data", path))
	requirePNG(t, path)

	assert.ErrorIs(t, figure.SaveData(s, nil, "x", path), figure.ErrNoValues)
	assert.ErrorIs(t, figure.SaveData(s, vals[:2], "x", path), figure.ErrLengthMismatch)
}

// TestSaveTrace_WritesPNG covers the scalar series path.
func TestSaveTrace_WritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.png")
	require.NoError(t, figure.SaveTrace([]float64{9, 4, 1, 0.5}, "Misfit", path))
	requirePNG(t, path)

	assert.ErrorIs(t, figure.SaveTrace(nil, "x", path), figure.ErrNoValues)
}
