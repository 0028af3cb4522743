package ert_test

import (
	"math"
	"testing"

	"github.com/katavolt/resistiv/ert"
	"github.com/katavolt/resistiv/mesh"
	"github.com/katavolt/resistiv/survey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture returns a small Wenner scheme over a matching grid.
func fixture(t *testing.T) (*survey.Scheme, *mesh.Grid) {
	t.Helper()
	s, err := survey.NewWenner(10, 1.0)
	require.NoError(t, err)
	g, err := mesh.NewGrid(9, 4, mesh.Options{X0: 0, Z0: 0, DX: 1, DZ: 1})
	require.NoError(t, err)
	return s, g
}

// TestNewHalfSpace_EmptyScheme verifies the empty-scheme sentinel.
func TestNewHalfSpace_EmptyScheme(t *testing.T) {
	_, g := fixture(t)
	_, err := ert.NewHalfSpace(&survey.Scheme{
		Electrodes: []survey.Electrode{{X: 0}, {X: 1}, {X: 2}, {X: 3}},
	}, g)
	assert.ErrorIs(t, err, ert.ErrEmptyScheme)
}

// TestHalfSpace_HomogeneousExact checks the normalization invariant: a
// homogeneous model reproduces its own resistivity for every measurement.
func TestHalfSpace_HomogeneousExact(t *testing.T) {
	s, g := fixture(t)
	op, err := ert.NewHalfSpace(s, g)
	require.NoError(t, err)

	const rho = 137.0
	model := make([]float64, g.NumCells())
	for i := range model {
		model[i] = rho
	}
	resp, err := op.Response(model)
	require.NoError(t, err)
	require.Len(t, resp, s.Len())
	for i, v := range resp {
		assert.InDelta(t, rho, v, 1e-9, "measurement %d", i)
	}
}

// TestHalfSpace_ResponseValidation covers model validation sentinels.
func TestHalfSpace_ResponseValidation(t *testing.T) {
	s, g := fixture(t)
	op, err := ert.NewHalfSpace(s, g)
	require.NoError(t, err)

	_, err = op.Response(make([]float64, 3))
	assert.ErrorIs(t, err, ert.ErrDimensionMismatch)

	bad := make([]float64, g.NumCells())
	for i := range bad {
		bad[i] = 100
	}
	bad[5] = -1
	_, err = op.Response(bad)
	assert.ErrorIs(t, err, ert.ErrNonPositiveModel)
}

// TestHalfSpace_JacobianShapeAndLinearity checks dimensions and that the
// Jacobian is consistent with the (linear) response: S·m == Response(m).
func TestHalfSpace_JacobianShapeAndLinearity(t *testing.T) {
	s, g := fixture(t)
	op, err := ert.NewHalfSpace(s, g)
	require.NoError(t, err)

	model := make([]float64, g.NumCells())
	for i := range model {
		model[i] = 100 + float64(i%7)
	}
	jac, err := op.Jacobian(model)
	require.NoError(t, err)
	r, c := jac.Dims()
	assert.Equal(t, s.Len(), r)
	assert.Equal(t, g.NumCells(), c)

	resp, err := op.Response(model)
	require.NoError(t, err)
	for i := 0; i < r; i++ {
		var dot float64
		for j := 0; j < c; j++ {
			dot += jac.At(i, j) * model[j]
		}
		require.InDelta(t, resp[i], dot, 1e-9*math.Abs(resp[i]), "measurement %d", i)
	}
}

// TestHalfSpace_AnomalySign checks that a conductive block under the
// array pulls apparent resistivities below the background.
func TestHalfSpace_AnomalySign(t *testing.T) {
	s, g := fixture(t)
	op, err := ert.NewHalfSpace(s, g)
	require.NoError(t, err)

	g.SetMarkerBox(3, 0, 5, 2, 2)
	model, err := g.ModelFromMarkers(map[int]float64{1: 200, 2: 50})
	require.NoError(t, err)

	resp, err := op.Response(model)
	require.NoError(t, err)
	var below int
	for _, v := range resp {
		if v < 200 {
			below++
		}
	}
	assert.Greater(t, below, s.Len()/2, "most measurements should feel the conductor")
}
