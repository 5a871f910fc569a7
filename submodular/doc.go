// Package submodular defines the stateful submodular-function contract
// shared by every optimizer in this module (Eval/Peek/Update/Clone), and
// provides two concrete instantiations of the log-determinant Informative
// Vector Machine objective:
//
//   - IVM recomputes the kernel Gram matrix from scratch on every Eval
//     call. It exists as a slow, obviously-correct reference.
//   - FastIVM maintains a lower-triangular Cholesky factor incrementally,
//     so that Peek is O(k^2) instead of O(k^3) and Update is O(k^2).
//
// Both are monotone submodular: f(S union {x}) - f(S) >= 0 for any x not
// already (numerically) a duplicate of something in S.
package submodular
