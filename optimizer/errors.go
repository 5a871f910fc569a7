package optimizer

import "errors"

var (
	// ErrBadParam marks an invalid construction parameter: a budget of 0,
	// or an epsilon <= 0 passed to Thresholds / a streaming optimizer.
	ErrBadParam = errors.New("optimizer: invalid parameter")

	// ErrUnsupportedOperation marks an operation an optimizer does not
	// support by design: Next on the offline optimizers Greedy and Random.
	ErrUnsupportedOperation = errors.New("optimizer: unsupported operation")
)
