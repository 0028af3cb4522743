package main

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"

	"github.com/katavolt/resistiv/figure"
	"github.com/katavolt/resistiv/invert"
)

// maxSampleFigures caps how many posterior draws get their own PNG.
const maxSampleFigures = 10

// ensembleCmd runs the Bayesian end of the example: sample the posterior
// over cell resistivities with an ensemble of Metropolis-Hastings chains.
var ensembleCmd = &cobra.Command{
	Use:   "ensemble",
	Short: "sample the Bayesian posterior with an ensemble sampler",
	Long: `ensemble simulates the same noisy dipole-dipole survey as
"newton", then samples the posterior built from a Gaussian log-data
likelihood and a uniform prior on cell resistivities. The posterior mean
and a handful of random posterior draws are written as figures.`,
	RunE: runEnsemble,
}

func runEnsemble(cmd *cobra.Command, args []string) error {
	cfg, err := overlayFile(ensembleConfig(), configPath)
	if err != nil {
		return err
	}
	logger.Info("running ensemble inversion",
		zap.Int("walkers", cfg.Walkers),
		zap.Int("steps", cfg.Steps),
		zap.Uint64("seed", seed))

	exp, err := buildExperiment("ERT dipole-dipole (ensemble)", cfg, seed, logger)
	if err != nil {
		return err
	}

	// The sampler sees the problem through its log-density surface: the
	// Gaussian likelihood of the simulated noise and a box prior keeping
	// every cell inside (0, PriorMax].
	exp.problem.SetLogLikelihood(exp.logLikelihood)
	exp.problem.SetLogPrior(func(m []float64) float64 {
		for _, v := range m {
			if v <= 0 || v > cfg.PriorMax {
				return math.Inf(-1)
			}
		}
		return 0
	})
	exp.problem.SetWalkerStarts(exp.jitteredStarts(cfg.Walkers, cfg.Jitter, seed))
	if showSummary {
		fmt.Fprintln(cmd.OutOrStdout(), exp.problem.Summary())
	}

	opts := invert.DefaultOptions()
	opts.Tool = invert.ToolEnsemble
	opts.Ensemble.Walkers = cfg.Walkers
	opts.Ensemble.Steps = cfg.Steps
	opts.Ensemble.BurnIn = cfg.BurnIn
	opts.Ensemble.StepSize = cfg.StepSize
	opts.Ensemble.Seed = seed

	inv, err := invert.New(exp.problem, opts)
	if err != nil {
		return err
	}
	res, err := inv.Run()
	if err != nil {
		return err
	}
	logger.Info("ensemble finished",
		zap.Int("accepted", res.Accepted),
		zap.Float64("misfit", res.Misfit))
	if showSummary {
		fmt.Fprintln(cmd.OutOrStdout(), res.Summary())
	}

	if !savePlot {
		return nil
	}
	if err := exp.saveCommonFigures(outputDir, "ert_ensemble"); err != nil {
		return err
	}
	if err := figure.SaveModel(exp.invGrid, res.Model, "Posterior mean model (Ωm)",
		filepath.Join(outputDir, "ert_ensemble_model_mean.png")); err != nil {
		return err
	}
	return saveSampleFigures(exp, res, cfg)
}

// saveSampleFigures draws up to maxSampleFigures random rows from the
// thinned flat chain and saves each as its own model figure.
func saveSampleFigures(exp *experiment, res *invert.Result, cfg driverConfig) error {
	// Burn-in was already dropped by the sampler, so only thin here.
	flat, err := res.FlatChain(0, cfg.Thin)
	if err != nil {
		return err
	}
	rows, dim := flat.Dims()
	count := maxSampleFigures
	if rows < count {
		count = rows
	}
	rng := rand.New(rand.NewSource(seed))
	for k := 0; k < count; k++ {
		row := rng.Intn(rows)
		sample := make([]float64, dim)
		for j := 0; j < dim; j++ {
			sample[j] = flat.At(row, j)
		}
		path := filepath.Join(outputDir, fmt.Sprintf("ert_ensemble_sample_%02d.png", k))
		if err := figure.SaveModel(exp.invGrid, sample,
			fmt.Sprintf("Posterior sample %d (Ωm)", k), path); err != nil {
			return err
		}
	}
	return nil
}
