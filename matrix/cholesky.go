// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Cholesky returns a new matrix L, of the same capacity as the receiver,
// whose lower triangle (including the diagonal) holds the Cholesky factor
// of the leading n×n block: L·Lᵀ = A[0:n, 0:n]. The upper triangle of the
// returned matrix is unspecified (stale zeros from allocation); only the
// diagonal and lower entries are read by LogDetFromCholesky and by callers
// doing forward substitution.
//
// Algorithm, for j = 0..n-1:
//
//	L[j,j] = sqrt(A[j,j] - sum_{k<j} L[j,k]^2)
//	for i > j: L[i,j] = (A[i,j] - sum_{k<j} L[i,k]*L[j,k]) / L[j,j]
//
// Returns ErrNonSPD if any diagonal term would be non-positive.
func (m *SymmetricMatrix) Cholesky(n int) (*SymmetricMatrix, error) {
	if n < 0 || n > m.n {
		return nil, fmt.Errorf("SymmetricMatrix.Cholesky(%d): capacity %d: %w", n, m.n, ErrExtentExceedsCapacity)
	}

	L, err := NewSymmetricMatrix(m.n)
	if err != nil {
		return nil, fmt.Errorf("SymmetricMatrix.Cholesky(%d): %w", n, err)
	}
	L.ext = n

	for j := 0; j < n; j++ {
		sum := 0.0
		for k := 0; k < j; k++ {
			ljk := L.data[j*L.n+k]
			sum += ljk * ljk
		}

		ajj, _ := m.At(j, j)
		diagSq := ajj - sum
		if diagSq <= 0 {
			return nil, fmt.Errorf("SymmetricMatrix.Cholesky(%d): pivot %d: %w", n, j, ErrNonSPD)
		}
		ljj := math.Sqrt(diagSq)
		L.data[j*L.n+j] = ljj

		for i := j + 1; i < n; i++ {
			sum = 0.0
			for k := 0; k < j; k++ {
				sum += L.data[i*L.n+k] * L.data[j*L.n+k]
			}
			aij, _ := m.At(i, j)
			L.data[i*L.n+j] = (aij - sum) / ljj
		}
	}

	return L, nil
}

// LogDetFromCholesky returns 2 * sum_{i<n} ln(L[i,i]), the log-determinant
// of A where L is A's Cholesky factor (L·Lᵀ = A). Relies on the identity
// |A| = |L|·|Lᵀ| = (prod diag(L))^2 for a lower-triangular L.
func LogDetFromCholesky(L *SymmetricMatrix, n int) float64 {
	det := 0.0
	for i := 0; i < n; i++ {
		d := L.data[i*L.n+i]
		det += math.Log(d)
	}

	return 2 * det
}
