package figure

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katavolt/resistiv/mesh"
	"github.com/katavolt/resistiv/survey"
)

// Sentinel errors for figure operations.
var (
	// ErrNoValues indicates an empty value series.
	ErrNoValues = errors.New("figure: no values to plot")
	// ErrLengthMismatch indicates series and scheme lengths differ.
	ErrLengthMismatch = errors.New("figure: value count does not match scheme measurements")
)

// modelGrid adapts a mesh model vector to plotter.GridXYZ. Plot rows run
// bottom-up while grid rows run top-down, so row r maps to depth row
// NZ-1-r.
type modelGrid struct {
	g *mesh.Grid
	m []float64
}

func (mg modelGrid) Dims() (c, r int) { return mg.g.NX, mg.g.NZ }

func (mg modelGrid) Z(c, r int) float64 {
	return mg.m[mg.g.Index(c, mg.g.NZ-1-r)]
}

func (mg modelGrid) X(c int) float64 {
	return mg.g.X0 + (float64(c)+0.5)*mg.g.DX
}

func (mg modelGrid) Y(r int) float64 {
	iz := mg.g.NZ - 1 - r
	return mg.g.Z0 - (float64(iz)+0.5)*mg.g.DZ
}

// SaveModel renders model as a heat map over the grid and writes a PNG
// to path, creating parent directories as needed.
// Returns mesh.ErrDimensionMismatch for a misshapen model.
func SaveModel(g *mesh.Grid, model []float64, title, path string) error {
	if err := g.CheckModel(model); err != nil {
		return fmt.Errorf("figure: %w", err)
	}
	h := plotter.NewHeatMap(modelGrid{g: g, m: model}, moreland.SmoothBlueRed().Palette(255))
	// A flat model collapses the color range; pad it so rendering stays defined.
	if h.Max-h.Min < 1e-12 {
		h.Min--
		h.Max++
	}

	pl := plot.New()
	pl.Title.Text = title
	pl.X.Label.Text = "x (m)"
	pl.Y.Label.Text = "z (m)"
	pl.Add(h)
	return save(pl, path)
}

// SaveData renders one value per scheme measurement (apparent
// resistivities, residuals) against measurement index and writes a PNG.
// Returns ErrNoValues or ErrLengthMismatch on misshapen input.
func SaveData(s *survey.Scheme, vals []float64, title, path string) error {
	if len(vals) == 0 {
		return ErrNoValues
	}
	if len(vals) != s.Len() {
		return fmt.Errorf("%d values for %d measurements: %w", len(vals), s.Len(), ErrLengthMismatch)
	}
	xys := make(plotter.XYs, len(vals))
	for i, v := range vals {
		xys[i] = plotter.XY{X: float64(i), Y: v}
	}
	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return fmt.Errorf("figure: %w", err)
	}

	pl := plot.New()
	pl.Title.Text = title
	pl.X.Label.Text = "measurement"
	pl.Y.Label.Text = "apparent resistivity (Ωm)"
	pl.Add(line, points)
	return save(pl, path)
}

// SaveTrace renders a scalar series (misfit per iteration, acceptance per
// walker) as a line plot and writes a PNG.
// Returns ErrNoValues for an empty series.
func SaveTrace(vals []float64, title, path string) error {
	if len(vals) == 0 {
		return ErrNoValues
	}
	xys := make(plotter.XYs, len(vals))
	for i, v := range vals {
		xys[i] = plotter.XY{X: float64(i), Y: v}
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("figure: %w", err)
	}

	pl := plot.New()
	pl.Title.Text = title
	pl.X.Label.Text = "step"
	pl.Add(line)
	return save(pl, path)
}

// save writes the plot as a 16×8 cm PNG, creating the parent directory.
func save(pl *plot.Plot, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("figure: %w", err)
		}
	}
	if err := pl.Save(16*vg.Centimeter, 8*vg.Centimeter, path); err != nil {
		return fmt.Errorf("figure: %w", err)
	}
	return nil
}
