// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in private helpers (if any).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Methods return these sentinels wrapped with
// call context via fmt.Errorf("ctx: %w", ErrX); callers use errors.Is to
// match them.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrExtentExceedsCapacity signals that a requested active extent n is
	// larger than the matrix's allocated capacity N.
	ErrExtentExceedsCapacity = errors.New("matrix: extent exceeds capacity")

	// ErrNonSPD is returned when Cholesky encounters a non-positive pivot:
	// the leading block is not (numerically) symmetric positive-definite.
	ErrNonSPD = errors.New("matrix: not symmetric positive-definite")
)
