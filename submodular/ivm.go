package submodular

import (
	"math"

	"github.com/katalvlaran/subselect/kernel"
	"github.com/katalvlaran/subselect/matrix"
)

// IVM is the reference Informative Vector Machine objective:
//
//	f(S) = log det(I + K(S,S) / sigma^2)
//
// where K is the kernel Gram matrix of S. Every Eval call recomputes K and
// its Cholesky factor from scratch; Update is a no-op. Use FastIVM for
// anything performance sensitive — IVM exists to check FastIVM against.
type IVM struct {
	kernel kernel.Kernel
	sigma  float64
}

// NewIVM constructs an IVM objective over the given kernel and bandwidth
// sigma. The kernel is cloned so the IVM owns an independent copy.
func NewIVM(k kernel.Kernel, sigma float64) *IVM {
	return &IVM{kernel: k.Clone(), sigma: sigma}
}

// Eval implements Function.
func (v *IVM) Eval(cur [][]float64) float64 {
	k := len(cur)
	if k == 0 {
		return 0
	}

	gram, err := matrix.NewSymmetricMatrix(k)
	if err != nil {
		// k > 0 here, so NewSymmetricMatrix cannot fail; defensive only.
		return math.Inf(-1)
	}
	_ = gram.SetExtent(k)

	sigmaSq := v.sigma * v.sigma
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			kv := v.kernel.Eval(cur[i], cur[j]) / sigmaSq
			if i == j {
				kv += 1.0
			}
			_ = gram.Set(i, j, kv)
			_ = gram.Set(j, i, kv)
		}
	}

	L, err := gram.Cholesky(k)
	if err != nil {
		// The Gram matrix is singular: the true determinant is 0, so the
		// log-determinant is -infinity.
		return math.Inf(-1)
	}

	return matrix.LogDetFromCholesky(L, k)
}

// Peek implements Function by copying cur, placing x, and calling Eval.
func (v *IVM) Peek(cur [][]float64, x []float64, pos int) (float64, error) {
	return v.Eval(place(cur, x, pos)), nil
}

// Update implements Function; IVM carries no incremental state.
func (v *IVM) Update(cur [][]float64, x []float64, pos int) error { return nil }

// Clone returns an independent copy of this IVM objective.
func (v *IVM) Clone() Function {
	return &IVM{kernel: v.kernel.Clone(), sigma: v.sigma}
}
