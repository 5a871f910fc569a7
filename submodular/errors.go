package submodular

import "errors"

// ErrNonSPD is returned by FastIVM.Peek and FastIVM.Update when appending
// the candidate would leave I + K(S,S)/sigma^2 not positive-definite. The
// identity term keeps that matrix positive-definite for any positive
// semi-definite kernel (RBF included), even with duplicate items, so this
// is reached only through a kernel that is not positive semi-definite.
// Per the package policy, Peek returns math.Inf(-1) together with this
// error so that an argmax-style caller which ignores the error still skips
// the candidate; Update returns only the error.
var ErrNonSPD = errors.New("submodular: candidate would make the kernel matrix non-SPD")
