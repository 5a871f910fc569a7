package cli

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/subselect/optimizer"
)

func newSieveCommand(logger zerolog.Logger) *cobra.Command {
	var cfg runConfig
	cmd := &cobra.Command{
		Use:   "sieve",
		Short: "Select K representatives via streaming SieveStreaming",
		RunE: func(cmd *cobra.Command, args []string) error {
			X, ids, sigma, err := loadDataset(cfg, logger)
			if err != nil {
				return err
			}

			f, err := buildFastIVM(cfg.budget, sigma)
			if err != nil {
				return err
			}

			s, err := optimizer.NewSieveStreaming(cfg.budget, f, cfg.m, cfg.eps)
			if err != nil {
				return err
			}

			start := time.Now()
			if err := s.Fit(X, ids); err != nil {
				return err
			}
			logResult(logger, "sieve-streaming", s, time.Since(start))

			return nil
		},
	}
	addCommonFlags(cmd, &cfg)
	addStreamingFlags(cmd, &cfg)

	return cmd
}
