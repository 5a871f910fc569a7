// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric primitives the submodular
// optimizers are built on: a capacity-aware symmetric matrix and an
// in-place Cholesky factorization.
//
// SymmetricMatrix stores an N×N dense buffer but tracks an active extent
// n ≤ N separately, so a kernel Gram matrix can grow one row/column at a
// time (as items are added to a candidate solution) without reallocating.
// Cholesky operates on the leading n×n block only, which is what lets
// FastIVM maintain its factor incrementally instead of recomputing it
// from scratch on every probe.
package matrix
