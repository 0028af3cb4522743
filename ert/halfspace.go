package ert

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katavolt/resistiv/mesh"
	"github.com/katavolt/resistiv/survey"
)

// HalfSpace is a linearized (Born approximation) forward operator over a
// rectangular grid below a flat surface. Its sensitivity matrix is
// assembled once from the analytic half-space Frechet kernel evaluated at
// cell centers, with each row normalized so a homogeneous model maps to
// itself. Response is then a single matrix-vector product and the
// Jacobian is the sensitivity matrix itself.
type HalfSpace struct {
	scheme *survey.Scheme
	grid   *mesh.Grid
	sens   *mat.Dense
}

// NewHalfSpace assembles the sensitivity matrix for every (measurement,
// cell) pair of the scheme and grid.
// Returns ErrEmptyScheme if the scheme carries no measurements, any
// scheme validation error, or ErrNumericalBreakdown if a row's raw
// sensitivity sum vanishes and cannot be normalized.
// Complexity: O(measurements × cells) time and memory.
func NewHalfSpace(s *survey.Scheme, g *mesh.Grid) (*HalfSpace, error) {
	if s.Len() == 0 {
		return nil, ErrEmptyScheme
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("ert: %w", err)
	}
	nData, nCells := s.Len(), g.NumCells()
	sens := mat.NewDense(nData, nCells, nil)
	area := g.CellArea()
	for i, q := range s.Measurements {
		k, err := s.GeometricFactor(q)
		if err != nil {
			return nil, fmt.Errorf("ert: measurement %d: %w", i, err)
		}
		sum := 0.0
		for j := 0; j < nCells; j++ {
			x, z, cerr := g.CellCenter(j)
			if cerr != nil {
				return nil, fmt.Errorf("ert: %w", cerr)
			}
			v := k * quadrupoleKernel(s, q, x, z) * area
			sens.Set(i, j, v)
			sum += v
		}
		if math.Abs(sum) < 1e-300 || math.IsNaN(sum) || math.IsInf(sum, 0) {
			return nil, fmt.Errorf("ert: measurement %d sensitivity sum %v: %w", i, sum, ErrNumericalBreakdown)
		}
		// Row normalization: a homogeneous half-space reproduces its own
		// resistivity exactly, which the truncated integral would not.
		for j := 0; j < nCells; j++ {
			sens.Set(i, j, sens.At(i, j)/sum)
		}
	}
	return &HalfSpace{scheme: s, grid: g, sens: sens}, nil
}

// quadrupoleKernel evaluates the four-electrode Frechet kernel of q at the
// subsurface point (x, z): the signed sum of the four pole-pole kernels.
func quadrupoleKernel(s *survey.Scheme, q survey.Quadrupole, x, z float64) float64 {
	return poleKernel(s.Electrodes[q.A], s.Electrodes[q.M], x, z) -
		poleKernel(s.Electrodes[q.A], s.Electrodes[q.N], x, z) -
		poleKernel(s.Electrodes[q.B], s.Electrodes[q.M], x, z) +
		poleKernel(s.Electrodes[q.B], s.Electrodes[q.N], x, z)
}

// poleKernel is the half-space pole-pole sensitivity density at (x, z) for
// a current pole at c and a potential pole at p:
//
//	F = ((r−c)·(r−p)) / (4π² |r−c|³ |r−p|³)
func poleKernel(c, p survey.Electrode, x, z float64) float64 {
	cx, cz := x-c.X, z-c.Z
	px, pz := x-p.X, z-p.Z
	rc := math.Hypot(cx, cz)
	rp := math.Hypot(px, pz)
	dot := cx*px + cz*pz
	return dot / (4 * math.Pi * math.Pi * rc * rc * rc * rp * rp * rp)
}

// Dims returns the operator shape: measurements by cells.
// Complexity: O(1).
func (h *HalfSpace) Dims() (nData, nCells int) {
	r, c := h.sens.Dims()
	return r, c
}

// Response computes predicted apparent resistivities for model.
// Returns ErrDimensionMismatch, ErrNonPositiveModel, or
// ErrNumericalBreakdown (NaN, Inf, or non-positive prediction).
// Complexity: O(measurements × cells).
func (h *HalfSpace) Response(model []float64) ([]float64, error) {
	nData, nCells := h.Dims()
	if len(model) != nCells {
		return nil, fmt.Errorf("got %d values for %d cells: %w", len(model), nCells, ErrDimensionMismatch)
	}
	for j, m := range model {
		if m <= 0 || math.IsNaN(m) {
			return nil, fmt.Errorf("cell %d = %v: %w", j, m, ErrNonPositiveModel)
		}
	}
	var out mat.VecDense
	out.MulVec(h.sens, mat.NewVecDense(nCells, model))
	resp := make([]float64, nData)
	for i := range resp {
		v := out.AtVec(i)
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("measurement %d = %v: %w", i, v, ErrNumericalBreakdown)
		}
		resp[i] = v
	}
	return resp, nil
}

// Jacobian returns ∂response/∂model. The operator is linear, so this is a
// copy of the sensitivity matrix regardless of model, which is still
// validated for shape.
// Complexity: O(measurements × cells).
func (h *HalfSpace) Jacobian(model []float64) (*mat.Dense, error) {
	_, nCells := h.Dims()
	if len(model) != nCells {
		return nil, fmt.Errorf("got %d values for %d cells: %w", len(model), nCells, ErrDimensionMismatch)
	}
	var j mat.Dense
	j.CloneFrom(h.sens)
	return &j, nil
}
