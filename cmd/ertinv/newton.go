package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katavolt/resistiv/figure"
	"github.com/katavolt/resistiv/invert"
)

// newtonCmd runs the deterministic end of the example: minimize the
// Tikhonov-regularized log-data misfit with gonum's Newton minimizer.
var newtonCmd = &cobra.Command{
	Use:   "newton",
	Short: "minimize the regularized misfit with a Newton solver",
	Long: `newton simulates a noisy dipole-dipole survey over a two-block
half-space, assembles the smoothness-regularized inverse problem on a
coarser grid, and minimizes it with a Hessian-based Newton iteration.`,
	RunE: runNewton,
}

func runNewton(cmd *cobra.Command, args []string) error {
	cfg, err := overlayFile(newtonConfig(), configPath)
	if err != nil {
		return err
	}
	logger.Info("running newton inversion",
		zap.Float64("lambda", cfg.Lambda),
		zap.Uint64("seed", seed))

	exp, err := buildExperiment("ERT dipole-dipole (newton)", cfg, seed, logger)
	if err != nil {
		return err
	}
	if showSummary {
		fmt.Fprintln(cmd.OutOrStdout(), exp.problem.Summary())
	}

	opts := invert.DefaultOptions()
	opts.Tool = invert.ToolNewton
	opts.Newton.MaxIterations = cfg.MaxIterations
	opts.Newton.GradientTolerance = cfg.GradTol

	inv, err := invert.New(exp.problem, opts)
	if err != nil {
		return err
	}
	res, err := inv.Run()
	if err != nil {
		return err
	}
	logger.Info("newton finished",
		zap.Int("iterations", res.Iterations),
		zap.Bool("converged", res.Converged),
		zap.Float64("misfit", res.Misfit))
	if showSummary {
		fmt.Fprintln(cmd.OutOrStdout(), res.Summary())
	}

	if !savePlot {
		return nil
	}
	if err := exp.saveCommonFigures(outputDir, "ert_newton"); err != nil {
		return err
	}
	if err := figure.SaveModel(exp.invGrid, res.Model, "Inferred resistivity model (Ωm)",
		filepath.Join(outputDir, "ert_newton_model_inferred.png")); err != nil {
		return err
	}
	if err := figure.SaveTrace(res.Trace, "Data misfit per iteration",
		filepath.Join(outputDir, "ert_newton_misfit_trace.png")); err != nil {
		return err
	}
	synth, err := exp.op.Response(res.Model)
	if err != nil {
		return fmt.Errorf("response of inferred model: %w", err)
	}
	return figure.SaveData(exp.scheme, synth, "Apparent resistivity of inferred model (Ωm)",
		filepath.Join(outputDir, "ert_newton_data_inferred.png"))
}
