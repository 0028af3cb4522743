package main

import (
	"fmt"
	"math"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katavolt/resistiv/ert"
	"github.com/katavolt/resistiv/figure"
	"github.com/katavolt/resistiv/invert"
	"github.com/katavolt/resistiv/mesh"
	"github.com/katavolt/resistiv/survey"
)

// Synthetic ground truth: a homogeneous 200 Ωm half-space with a
// conductive (50 Ωm) and a resistive (150 Ωm) block buried in it.
const (
	rhoBackground = 200.0
	rhoConductive = 50.0
	rhoResistive  = 150.0

	markerConductive = 2
	markerResistive  = 3
)

// experiment bundles everything both drivers share: the survey, the fine
// grid the data was simulated on, the coarser grid being inverted, noisy
// observations and the assembled regularized problem.
type experiment struct {
	scheme    *survey.Scheme
	trueGrid  *mesh.Grid
	trueModel []float64
	invGrid   *mesh.Grid
	op        *ert.HalfSpace
	data      *ert.Data
	start     []float64
	problem   *invert.Problem
}

// buildExperiment simulates the survey on a fine grid, then assembles a
// Tikhonov-regularized problem on a grid coarsened by cfg.Coarsen so the
// inversion never sees the discretization the data came from.
func buildExperiment(name string, cfg driverConfig, seed uint64, log *zap.Logger) (*experiment, error) {
	scheme, err := survey.NewDipoleDipole(cfg.Electrodes, cfg.Spacing, cfg.MaxSep)
	if err != nil {
		return nil, fmt.Errorf("survey: %w", err)
	}
	log.Debug("survey built",
		zap.Int("electrodes", cfg.Electrodes),
		zap.Int("measurements", scheme.Len()))

	nx := cfg.Electrodes - 1
	nz := cfg.DepthCells
	trueGrid, err := mesh.NewGrid(nx, nz, mesh.Options{DX: cfg.Spacing, DZ: cfg.Spacing})
	if err != nil {
		return nil, fmt.Errorf("fine grid: %w", err)
	}
	trueGrid.SetMarkerBox(nx/5, 1, 2*nx/5, 4, markerConductive)
	trueGrid.SetMarkerBox(3*nx/5, 1, 4*nx/5, 4, markerResistive)
	trueModel, err := trueGrid.ModelFromMarkers(map[int]float64{
		1:                rhoBackground,
		markerConductive: rhoConductive,
		markerResistive:  rhoResistive,
	})
	if err != nil {
		return nil, fmt.Errorf("true model: %w", err)
	}

	trueOp, err := ert.NewHalfSpace(scheme, trueGrid)
	if err != nil {
		return nil, fmt.Errorf("fine operator: %w", err)
	}
	data, err := ert.Simulate(trueOp, trueModel, ert.SimOptions{RelNoise: cfg.RelNoise, Seed: seed})
	if err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}

	c := cfg.Coarsen
	invGrid, err := mesh.NewGrid(nx/c, nz/c, mesh.Options{
		DX: cfg.Spacing * float64(c),
		DZ: cfg.Spacing * float64(c),
	})
	if err != nil {
		return nil, fmt.Errorf("inversion grid: %w", err)
	}
	op, err := ert.NewHalfSpace(scheme, invGrid)
	if err != nil {
		return nil, fmt.Errorf("inversion operator: %w", err)
	}
	log.Debug("grids built",
		zap.Int("fine_cells", trueGrid.NumCells()),
		zap.Int("inv_cells", invGrid.NumCells()))

	// Start from the homogeneous model matching the mean apparent
	// resistivity, the standard warm start for ERT.
	mean := 0.0
	for _, v := range data.Rhoa {
		mean += v
	}
	mean /= float64(len(data.Rhoa))
	start := make([]float64, invGrid.NumCells())
	for i := range start {
		start[i] = mean
	}

	problem, err := invert.Tikhonov(name, op, data.LogRhoa, invGrid.Smoothness(), cfg.Lambda, start)
	if err != nil {
		return nil, fmt.Errorf("assemble problem: %w", err)
	}

	return &experiment{
		scheme:    scheme,
		trueGrid:  trueGrid,
		trueModel: trueModel,
		invGrid:   invGrid,
		op:        op,
		data:      data,
		start:     start,
		problem:   problem,
	}, nil
}

// logLikelihood returns the Gaussian log-likelihood of the log apparent
// resistivities under the simulated noise covariance, -Inf wherever the
// forward model is undefined.
func (e *experiment) logLikelihood(m []float64) float64 {
	r, err := e.problem.Residual(m)
	if err != nil {
		return math.Inf(-1)
	}
	sum := 0.0
	for i, ri := range r {
		sum += ri * ri * e.data.CovInv.At(i, i)
	}
	return -0.5 * sum
}

// jitteredStarts spreads walkers in a tiny Gaussian ball around start.
func (e *experiment) jitteredStarts(walkers int, jitter float64, seed uint64) *mat.Dense {
	dim := len(e.start)
	starts := mat.NewDense(walkers, dim, nil)
	noise := gaussianSource(seed)
	for w := 0; w < walkers; w++ {
		for j := 0; j < dim; j++ {
			starts.Set(w, j, e.start[j]+jitter*noise())
		}
	}
	return starts
}

// gaussianSource returns a seeded standard normal draw function.
func gaussianSource(seed uint64) func() float64 {
	n := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)}
	return n.Rand
}

// saveCommonFigures writes the figures both drivers share: the ground
// truth, the observed data and the homogeneous starting model.
func (e *experiment) saveCommonFigures(dir, prefix string) error {
	if err := figure.SaveModel(e.trueGrid, e.trueModel, "True resistivity model (Ωm)",
		filepath.Join(dir, prefix+"_model_true.png")); err != nil {
		return err
	}
	if err := figure.SaveData(e.scheme, e.data.Rhoa, "Observed apparent resistivity (Ωm)",
		filepath.Join(dir, prefix+"_data_observed.png")); err != nil {
		return err
	}
	return figure.SaveModel(e.invGrid, e.start, "Starting model (Ωm)",
		filepath.Join(dir, prefix+"_model_start.png"))
}
