package kernel

import "errors"

// ErrBadParam is returned when a kernel is constructed with an out-of-range
// parameter, e.g. a non-positive sigma or scale for RBF.
var ErrBadParam = errors.New("kernel: invalid parameter")
