package cli

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/subselect/optimizer"
)

func newRandomCommand(logger zerolog.Logger) *cobra.Command {
	var cfg runConfig
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Select K representatives via a seeded random baseline",
		RunE: func(cmd *cobra.Command, args []string) error {
			X, ids, sigma, err := loadDataset(cfg, logger)
			if err != nil {
				return err
			}

			f, err := buildFastIVM(cfg.budget, sigma)
			if err != nil {
				return err
			}

			r, err := optimizer.NewRandom(cfg.budget, f, cfg.seed)
			if err != nil {
				return err
			}

			start := time.Now()
			if err := r.Fit(X, ids); err != nil {
				return err
			}
			logResult(logger, "random", r, time.Since(start))

			return nil
		},
	}
	addCommonFlags(cmd, &cfg)
	cmd.Flags().Int64Var(&cfg.seed, "seed", 0, "PRNG seed")

	return cmd
}
