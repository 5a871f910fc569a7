// Command subselect selects a representative subset of a dataset under a
// cardinality constraint, using one of four submodular optimizers: greedy,
// random, and two streaming sieve variants.
package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/subselect/cmd/subselect/internal/cli"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	if err := cli.NewRootCommand(logger).Execute(); err != nil {
		logger.Fatal().Err(err).Msg("subselect failed")
	}
}
