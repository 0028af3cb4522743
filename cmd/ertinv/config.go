package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// driverConfig collects every tunable of the example drivers. Values left
// at zero in the yaml file keep their per-command default, so a file may
// override a single knob.
type driverConfig struct {
	// Survey / discretization
	Electrodes int     `yaml:"electrodes"`
	Spacing    float64 `yaml:"spacing"`
	MaxSep     int     `yaml:"max_separation"`
	DepthCells int     `yaml:"depth_cells"`
	Coarsen    int     `yaml:"coarsen"`

	// Forward simulation
	RelNoise float64 `yaml:"rel_noise"`

	// Shared inversion knobs
	Lambda float64 `yaml:"lambda"`

	// Newton
	MaxIterations int     `yaml:"max_iterations"`
	GradTol       float64 `yaml:"grad_tol"`

	// Ensemble
	Walkers  int     `yaml:"walkers"`
	Steps    int     `yaml:"steps"`
	BurnIn   int     `yaml:"burn_in"`
	Thin     int     `yaml:"thin"`
	StepSize float64 `yaml:"step_size"`
	PriorMax float64 `yaml:"prior_max"`
	Jitter   float64 `yaml:"jitter"`
}

// baseConfig holds the knobs both commands share.
func baseConfig() driverConfig {
	return driverConfig{
		Electrodes: 51,
		Spacing:    1.0,
		MaxSep:     8,
		DepthCells: 10,
		Coarsen:    2,
		RelNoise:   0.05,
	}
}

// newtonConfig is baseConfig plus the deterministic-solver defaults.
func newtonConfig() driverConfig {
	cfg := baseConfig()
	cfg.Lambda = 5e-4
	cfg.MaxIterations = 100
	cfg.GradTol = 1e-8
	return cfg
}

// ensembleConfig is baseConfig plus the sampler defaults. The sampler
// tolerates a much stronger smoothing weight than Newton does.
func ensembleConfig() driverConfig {
	cfg := baseConfig()
	cfg.Lambda = 2.0
	cfg.Walkers = 32
	cfg.Steps = 500
	cfg.BurnIn = 100
	cfg.Thin = 30
	cfg.StepSize = 1.0
	cfg.PriorMax = 250.0
	cfg.Jitter = 1e-6
	return cfg
}

// overlayFile merges non-zero fields from a yaml file on top of cfg.
// An empty path is a no-op.
func overlayFile(cfg driverConfig, path string) (driverConfig, error) {
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	var file driverConfig
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	merge(&cfg, file)
	return cfg, nil
}

func merge(dst *driverConfig, src driverConfig) {
	if src.Electrodes != 0 {
		dst.Electrodes = src.Electrodes
	}
	if src.Spacing != 0 {
		dst.Spacing = src.Spacing
	}
	if src.MaxSep != 0 {
		dst.MaxSep = src.MaxSep
	}
	if src.DepthCells != 0 {
		dst.DepthCells = src.DepthCells
	}
	if src.Coarsen != 0 {
		dst.Coarsen = src.Coarsen
	}
	if src.RelNoise != 0 {
		dst.RelNoise = src.RelNoise
	}
	if src.Lambda != 0 {
		dst.Lambda = src.Lambda
	}
	if src.MaxIterations != 0 {
		dst.MaxIterations = src.MaxIterations
	}
	if src.GradTol != 0 {
		dst.GradTol = src.GradTol
	}
	if src.Walkers != 0 {
		dst.Walkers = src.Walkers
	}
	if src.Steps != 0 {
		dst.Steps = src.Steps
	}
	if src.BurnIn != 0 {
		dst.BurnIn = src.BurnIn
	}
	if src.Thin != 0 {
		dst.Thin = src.Thin
	}
	if src.StepSize != 0 {
		dst.StepSize = src.StepSize
	}
	if src.PriorMax != 0 {
		dst.PriorMax = src.PriorMax
	}
	if src.Jitter != 0 {
		dst.Jitter = src.Jitter
	}
}
