package cli

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/subselect/optimizer"
)

func newGreedyCommand(logger zerolog.Logger) *cobra.Command {
	var cfg runConfig
	cmd := &cobra.Command{
		Use:   "greedy",
		Short: "Select K representatives via offline 1-1/e greedy maximization",
		RunE: func(cmd *cobra.Command, args []string) error {
			X, ids, sigma, err := loadDataset(cfg, logger)
			if err != nil {
				return err
			}

			f, err := buildFastIVM(cfg.budget, sigma)
			if err != nil {
				return err
			}

			g, err := optimizer.NewGreedy(cfg.budget, f)
			if err != nil {
				return err
			}

			start := time.Now()
			if err := g.Fit(X, ids); err != nil {
				return err
			}
			logResult(logger, "greedy", g, time.Since(start))

			return nil
		},
	}
	addCommonFlags(cmd, &cfg)

	return cmd
}
