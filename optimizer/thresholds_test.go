package optimizer_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/subselect/optimizer"
	"github.com/stretchr/testify/require"
)

func TestThresholds_BadEps(t *testing.T) {
	t.Parallel()

	_, err := optimizer.Thresholds(1, 10, 0)
	require.ErrorIs(t, err, optimizer.ErrBadParam)

	_, err = optimizer.Thresholds(1, 10, -0.1)
	require.ErrorIs(t, err, optimizer.ErrBadParam)
}

// TestThresholds_Bounds checks that every generated threshold lies within
// [lower, upper] and consecutive thresholds have ratio approximately
// 1+eps.
func TestThresholds_Bounds(t *testing.T) {
	t.Parallel()

	const lower, upper, eps = 1.0, 100.0, 0.1
	ts, err := optimizer.Thresholds(lower, upper, eps)
	require.NoError(t, err)
	require.NotEmpty(t, ts)

	for i, v := range ts {
		require.GreaterOrEqual(t, v, lower)
		require.LessOrEqual(t, v, upper)
		if i > 0 {
			ratio := v / ts[i-1]
			require.InDelta(t, 1+eps, ratio, 1e-9)
		}
	}
}

func TestThresholds_Ascending(t *testing.T) {
	t.Parallel()

	ts, err := optimizer.Thresholds(0.5, 20, 0.2)
	require.NoError(t, err)

	for i := 1; i < len(ts); i++ {
		require.Greater(t, ts[i], ts[i-1])
	}
}

func TestThresholds_EmptyWhenUpperBelowLower(t *testing.T) {
	t.Parallel()

	ts, err := optimizer.Thresholds(10, 1, 0.1)
	require.NoError(t, err)
	require.Empty(t, ts)
}

func TestThresholds_SmallEpsDenseGrid(t *testing.T) {
	t.Parallel()

	ts, err := optimizer.Thresholds(1, math.Sqrt2, 0.01)
	require.NoError(t, err)
	require.Greater(t, len(ts), 10)
}
