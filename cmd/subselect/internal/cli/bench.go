package cli

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/subselect/optimizer"
)

// benchEpsilons is the epsilon sweep used when benchmarking the streaming
// optimizers back to back.
var benchEpsilons = []float64{0.01, 0.02, 0.05, 0.1}

func newBenchCommand(logger zerolog.Logger) *cobra.Command {
	var cfg runConfig
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run greedy, random, and a SieveStreaming/SieveStreaming++ epsilon sweep back to back",
		RunE: func(cmd *cobra.Command, args []string) error {
			X, ids, sigma, err := loadDataset(cfg, logger)
			if err != nil {
				return err
			}

			greedyF, err := buildFastIVM(cfg.budget, sigma)
			if err != nil {
				return err
			}
			g, err := optimizer.NewGreedy(cfg.budget, greedyF)
			if err != nil {
				return err
			}
			start := time.Now()
			if err := g.Fit(X, ids); err != nil {
				return err
			}
			logResult(logger, "greedy", g, time.Since(start))

			randomF, err := buildFastIVM(cfg.budget, sigma)
			if err != nil {
				return err
			}
			r, err := optimizer.NewRandom(cfg.budget, randomF, cfg.seed)
			if err != nil {
				return err
			}
			start = time.Now()
			if err := r.Fit(X, ids); err != nil {
				return err
			}
			logResult(logger, "random", r, time.Since(start))

			for _, eps := range benchEpsilons {
				sieveF, err := buildFastIVM(cfg.budget, sigma)
				if err != nil {
					return err
				}
				s, err := optimizer.NewSieveStreaming(cfg.budget, sieveF, cfg.m, eps)
				if err != nil {
					return err
				}
				start = time.Now()
				if err := s.Fit(X, ids); err != nil {
					return err
				}
				logResult(logger, "sieve-streaming", s, time.Since(start))

				sievePPF, err := buildFastIVM(cfg.budget, sigma)
				if err != nil {
					return err
				}
				pp, err := optimizer.NewSieveStreamingPP(cfg.budget, sievePPF, cfg.m, eps)
				if err != nil {
					return err
				}
				start = time.Now()
				if err := pp.Fit(X, ids); err != nil {
					return err
				}
				logResult(logger, "sieve-streaming++", pp, time.Since(start))
			}

			return nil
		},
	}
	addCommonFlags(cmd, &cfg)
	cmd.Flags().Int64Var(&cfg.seed, "seed", 0, "PRNG seed for Random")
	cmd.Flags().Float64Var(&cfg.m, "m", 1.0, "upper bound on the singleton objective value")

	return cmd
}
