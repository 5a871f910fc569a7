package optimizer_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/subselect/kernel"
	"github.com/katalvlaran/subselect/optimizer"
	"github.com/katalvlaran/subselect/submodular"
	"github.com/stretchr/testify/require"
)

func TestNewSieveStreaming_BadParam(t *testing.T) {
	t.Parallel()

	_, err := optimizer.NewSieveStreaming(0, newFastIVM(t, 1, 1), 1, 0.1)
	require.ErrorIs(t, err, optimizer.ErrBadParam)

	_, err = optimizer.NewSieveStreaming(3, newFastIVM(t, 3, 1), 1, 0)
	require.ErrorIs(t, err, optimizer.ErrBadParam)
}

func TestSieveStreaming_RespectsBudget(t *testing.T) {
	t.Parallel()

	const K = 3
	f := newFastIVM(t, K, 2.0)
	s, err := optimizer.NewSieveStreaming(K, f, 1.0, 0.2)
	require.NoError(t, err)
	require.Greater(t, s.NumCandidateSolutions(), 0)

	X := [][]float64{{0, 0}, {1, 0}, {0, 1}, {5, 5}, {9, 9}, {3, 4}}
	require.NoError(t, s.Fit(X, nil))

	require.LessOrEqual(t, len(s.Solution()), K)
}

func randomPoints(n, dim int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	X := make([][]float64, n)
	for i := range X {
		p := make([]float64, dim)
		for j := range p {
			p[j] = rng.Float64() * 10
		}
		X[i] = p
	}

	return X
}

func maxSingletonValue(t *testing.T, fnTemplate func() submodular.Function, X [][]float64) float64 {
	t.Helper()

	best := 0.0
	for _, x := range X {
		f := fnTemplate()
		val, err := f.Peek(nil, x, 0)
		if err != nil {
			continue
		}
		if val > best {
			best = val
		}
	}

	return best
}

// TestSieveStreaming_GuaranteeAgainstGreedy checks that, on 100
// random 5-D points with RBF(sigma=sqrt(5)) and K=5, eps=0.1,
// SieveStreaming.fval >= 0.4 * Greedy.fval (allowing slack below the
// theoretical 1/2 - eps).
func TestSieveStreaming_GuaranteeAgainstGreedy(t *testing.T) {
	t.Parallel()

	const K = 5
	const sigma = 2.23606797749979 // sqrt(5)
	X := randomPoints(100, 5, 17)

	mkFn := func() submodular.Function {
		rbf, err := kernel.NewRBF(sigma, 1.0)
		require.NoError(t, err)
		f, err := submodular.NewFastIVM(K, rbf, sigma)
		require.NoError(t, err)

		return f
	}

	g, err := optimizer.NewGreedy(K, mkFn())
	require.NoError(t, err)
	require.NoError(t, g.Fit(X, nil))

	m := maxSingletonValue(t, mkFn, X)
	if m <= 0 {
		m = 1e-6
	}

	s, err := optimizer.NewSieveStreaming(K, mkFn(), m, 0.1)
	require.NoError(t, err)
	require.NoError(t, s.Fit(X, nil))

	require.GreaterOrEqual(t, s.FVal(), 0.4*g.FVal()-1e-6)
}

func TestSieveStreaming_NumElementsStoredAcrossSieves(t *testing.T) {
	t.Parallel()

	const K = 3
	f := newFastIVM(t, K, 1.5)
	s, err := optimizer.NewSieveStreaming(K, f, 0.5, 0.3)
	require.NoError(t, err)

	X := randomPoints(20, 3, 3)
	require.NoError(t, s.Fit(X, nil))

	require.GreaterOrEqual(t, s.NumElementsStored(), len(s.Solution()))
}
