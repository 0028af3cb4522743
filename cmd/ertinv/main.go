// Command ertinv runs the example ERT inversions end to end: synthetic
// survey, forward modelling, problem assembly, and an imported back end,
// with figures written to disk as the only persisted artifact.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	outputDir   string
	savePlot    bool
	showSummary bool
	verbose     bool
	seed        uint64
	configPath  string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ertinv",
	Short: "ertinv - example ERT inversions over a synthetic dipole-dipole survey",
	Long: `ertinv assembles an electrical resistivity tomography problem
(forward operator, jacobian, residual, misfit, regularization, gradient,
hessian) and hands it to an imported back end.

Subcommands select the back end: "newton" minimizes the regularized
misfit, "ensemble" samples the Bayesian posterior. Both write their
figures below --output-dir.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output-dir", "o", ".", "output folder for figures")
	rootCmd.PersistentFlags().BoolVar(&savePlot, "save-plot", true, "write figure PNGs")
	rootCmd.PersistentFlags().BoolVar(&showSummary, "show-summary", true, "print problem and result summaries")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "debug logging")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 42, "seed for noise, jitter and sampling")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "yaml hyperparameter file")

	rootCmd.AddCommand(newtonCmd)
	rootCmd.AddCommand(ensembleCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
