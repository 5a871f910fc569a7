// Package cli wires the subselect command tree: shared --data/--budget/
// --sigma flags (plus --eps/--m on the streaming commands, --seed on
// random, and --seed/--m on bench), a dataset loader, and one subcommand
// per optimizer plus a bench command that sweeps epsilons.
package cli

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/subselect/internal/dataset"
	"github.com/katalvlaran/subselect/kernel"
	"github.com/katalvlaran/subselect/submodular"
)

// NewRootCommand builds the subselect command tree.
func NewRootCommand(logger zerolog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "subselect",
		Short: "Select a representative subset of a dataset under a cardinality constraint",
		Long: `subselect picks K representative rows from a dataset using one of four
submodular optimizers over the Informative Vector Machine objective.`,
	}

	root.AddCommand(
		newGreedyCommand(logger),
		newRandomCommand(logger),
		newSieveCommand(logger),
		newSievePPCommand(logger),
		newBenchCommand(logger),
	)

	return root
}

// runConfig holds the flag values of one subcommand; each subcommand
// registers only the flags it uses.
type runConfig struct {
	dataPath string
	budget   int
	sigma    float64
	eps      float64
	seed     int64
	m        float64
}

func addCommonFlags(cmd *cobra.Command, cfg *runConfig) {
	cmd.Flags().StringVar(&cfg.dataPath, "data", "", "path to an ARFF-like dataset file (required)")
	cmd.Flags().IntVar(&cfg.budget, "budget", 5, "cardinality constraint K")
	cmd.Flags().Float64Var(&cfg.sigma, "sigma", 0, "RBF bandwidth (default sqrt(dimensionality))")
	_ = cmd.MarkFlagRequired("data")
}

func addStreamingFlags(cmd *cobra.Command, cfg *runConfig) {
	cmd.Flags().Float64Var(&cfg.eps, "eps", 0.1, "epsilon for the threshold grid")
	cmd.Flags().Float64Var(&cfg.m, "m", 1.0, "upper bound on the singleton objective value")
}

// zerologAdapter lets the dependency-free dataset package log through the
// driver's zerolog.Logger without importing it directly.
type zerologAdapter struct{ logger zerolog.Logger }

func (z zerologAdapter) Warnf(format string, args ...interface{}) {
	z.logger.Warn().Msgf(format, args...)
}

// loadDataset reads the configured file and resolves sigma to
// sqrt(dimensionality) when the caller left it at its zero value.
func loadDataset(cfg runConfig, logger zerolog.Logger) ([][]float64, []int64, float64, error) {
	X, ids, err := dataset.Load(cfg.dataPath, zerologAdapter{logger})
	if err != nil {
		return nil, nil, 0, fmt.Errorf("loading %s: %w", cfg.dataPath, err)
	}
	if len(X) == 0 {
		return nil, nil, 0, fmt.Errorf("no usable rows in %s", cfg.dataPath)
	}

	sigma := cfg.sigma
	if sigma <= 0 {
		sigma = math.Sqrt(float64(len(X[0])))
	}

	return X, ids, sigma, nil
}

// buildFastIVM constructs the shared FastIVM objective: RBF(sigma, 1.0)
// as the kernel, sigma as the IVM bandwidth.
func buildFastIVM(budget int, sigma float64) (*submodular.FastIVM, error) {
	rbf, err := kernel.NewRBF(sigma, 1.0)
	if err != nil {
		return nil, err
	}

	return submodular.NewFastIVM(budget, rbf, sigma)
}

// result is the subset of the optimizer surface the driver needs to log.
type result interface {
	Solution() [][]float64
	FVal() float64
	NumCandidateSolutions() int
	NumElementsStored() int
}

func logResult(logger zerolog.Logger, name string, r result, elapsed time.Duration) {
	logger.Info().
		Str("optimizer", name).
		Int("selected", len(r.Solution())).
		Float64("fval", r.FVal()).
		Dur("runtime", elapsed).
		Int("num_elements_stored", r.NumElementsStored()).
		Int("num_candidate_solutions", r.NumCandidateSolutions()).
		Msg("run complete")
}
