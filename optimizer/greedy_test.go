package optimizer_test

import (
	"testing"

	"github.com/katalvlaran/subselect/kernel"
	"github.com/katalvlaran/subselect/optimizer"
	"github.com/katalvlaran/subselect/submodular"
	"github.com/stretchr/testify/require"
)

func newFastIVM(t *testing.T, budget int, sigma float64) submodular.Function {
	t.Helper()
	k, err := kernel.NewRBF(sigma, 1.0)
	require.NoError(t, err)
	f, err := submodular.NewFastIVM(budget, k, sigma)
	require.NoError(t, err)

	return f
}

func TestNewGreedy_BadBudget(t *testing.T) {
	t.Parallel()

	_, err := optimizer.NewGreedy(0, newFastIVM(t, 1, 1))
	require.ErrorIs(t, err, optimizer.ErrBadParam)
}

func TestGreedy_SelectsDistinctPoints(t *testing.T) {
	t.Parallel()

	f := newFastIVM(t, 3, 1.0)
	g, err := optimizer.NewGreedy(3, f)
	require.NoError(t, err)

	X := [][]float64{{0, 0}, {5, 5}, {10, 10}}
	ids := []int64{100, 200, 300}
	require.NoError(t, g.Fit(X, ids))

	require.LessOrEqual(t, len(g.Solution()), 3)
	require.Equal(t, len(g.Solution()), len(g.IDs()))
	require.True(t, g.IsFitted())
	require.Equal(t, 1, g.NumCandidateSolutions())
}

// TestGreedy_NonPSDKernelStopsEarly checks that Greedy stops short of its
// budget when every remaining candidate is NonSPD against the committed
// solution, rather than erroring out. Under RBF (or any genuinely PSD
// kernel) the maintained factor I + K(S,S)/sigma^2 has eigenvalues >= 1 for
// any S, so exact duplicate points alone never reach this path; this uses a
// deliberately non-PSD kernel (small diagonal, large off-diagonal) instead.
func TestGreedy_NonPSDKernelStopsEarly(t *testing.T) {
	t.Parallel()

	notPSD := kernel.FromClosure(func(x, y []float64) float64 {
		if len(x) == len(y) {
			same := true
			for i := range x {
				if x[i] != y[i] {
					same = false
					break
				}
			}
			if same {
				return 0
			}
		}

		return 100
	})
	f, err := submodular.NewFastIVM(2, notPSD, 1.0)
	require.NoError(t, err)

	g, err := optimizer.NewGreedy(2, f)
	require.NoError(t, err)

	X := [][]float64{{1, 1}, {2, 2}, {3, 3}}
	require.NoError(t, g.Fit(X, nil))

	require.Equal(t, 1, len(g.Solution()))
}

func TestGreedy_NextUnsupported(t *testing.T) {
	t.Parallel()

	f := newFastIVM(t, 2, 1.0)
	g, err := optimizer.NewGreedy(2, f)
	require.NoError(t, err)

	err = g.Next([]float64{0, 0}, nil)
	require.ErrorIs(t, err, optimizer.ErrUnsupportedOperation)
}

func TestGreedy_Refittable(t *testing.T) {
	t.Parallel()

	f := newFastIVM(t, 2, 1.0)
	g, err := optimizer.NewGreedy(2, f)
	require.NoError(t, err)

	require.NoError(t, g.Fit([][]float64{{0, 0}, {1, 1}}, nil))
	first := len(g.Solution())

	require.NoError(t, g.Fit([][]float64{{0, 0}, {1, 1}, {2, 2}}, nil))
	require.LessOrEqual(t, len(g.Solution()), 2)
	require.GreaterOrEqual(t, first, 1)
}

// TestGreedy_OptimalOnSmallBruteForce checks that greedy's fval is within
// (1-1/e) of the brute-force optimum for small N, K.
func TestGreedy_OptimalOnSmallBruteForce(t *testing.T) {
	t.Parallel()

	X := [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {2, 2}, {3, 1}}
	const K = 3

	f := newFastIVM(t, K, 2.0)
	g, err := optimizer.NewGreedy(K, f)
	require.NoError(t, err)
	require.NoError(t, g.Fit(X, nil))

	opt := bruteForceOpt(t, X, K, 2.0)
	require.GreaterOrEqual(t, g.FVal(), (1-1/2.718281828459045)*opt-1e-6)
}

func bruteForceOpt(t *testing.T, X [][]float64, K int, sigma float64) float64 {
	t.Helper()

	n := len(X)
	best := 0.0
	var combo func(start int, chosen []int)
	combo = func(start int, chosen []int) {
		if len(chosen) > 0 {
			f := newFastIVM(t, len(chosen), sigma)
			S := make([][]float64, 0, len(chosen))
			for _, idx := range chosen {
				S = append(S, X[idx])
			}
			cur := [][]float64{}
			fv := 0.0
			for _, x := range S {
				v, err := f.Peek(cur, x, len(cur))
				if err != nil {
					fv = -1e18
					break
				}
				require.NoError(t, f.Update(cur, x, len(cur)))
				cur = append(cur, x)
				fv = v
			}
			if fv > best {
				best = fv
			}
		}
		if len(chosen) == K {
			return
		}
		for i := start; i < n; i++ {
			combo(i+1, append(chosen, i))
		}
	}
	combo(0, nil)

	return best
}
