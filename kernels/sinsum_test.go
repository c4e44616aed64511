// SPDX-License-Identifier: MIT
package kernels_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvsolve/kernels"
	"github.com/katalvlaran/lvsolve/parallel"
	"github.com/stretchr/testify/require"
)

func mustPool(tb testing.TB, cfg parallel.Config) *parallel.Pool {
	tb.Helper()
	p, err := parallel.New(cfg)
	require.NoError(tb, err)
	tb.Cleanup(p.Close)

	return p
}

// TestSinSumFullPeriod: one full period sums to 0 up to rounding.
func TestSinSumFullPeriod(t *testing.T) {
	s64, err := kernels.SinSum[float64](100_000)
	require.NoError(t, err)
	require.Less(t, math.Abs(s64), 1e-5)

	s32, err := kernels.SinSum[float32](1000)
	require.NoError(t, err)
	require.False(t, math.IsNaN(float64(s32)))
	require.Less(t, math.Abs(float64(s32)), 1.0)
}

// TestSinSumSingleTerm: n == 1 is sin(0).
func TestSinSumSingleTerm(t *testing.T) {
	s, err := kernels.SinSum[float64](1)
	require.NoError(t, err)
	require.Zero(t, s)
}

func TestSinSumParallel(t *testing.T) {
	const n = 100_000
	inline, err := kernels.SinSumParallel[float64](nil, n)
	require.NoError(t, err)
	require.Less(t, math.Abs(inline), 1e-8)

	for _, workers := range []int{2, 4, 7} {
		p := mustPool(t, parallel.Config{Workers: workers})
		got, err := kernels.SinSumParallel[float64](p, n)
		require.NoError(t, err)
		require.InDelta(t, inline, got, 1e-9)

		again, err := kernels.SinSumParallel[float64](p, n)
		require.NoError(t, err)
		require.Equal(t, got, again)
	}

	p := mustPool(t, parallel.Config{Workers: 4, Schedule: parallel.Guided})
	s32, err := kernels.SinSumParallel[float32](p, 1000)
	require.NoError(t, err)
	require.Less(t, math.Abs(float64(s32)), 0.1)
}

func TestSinSumInvalid(t *testing.T) {
	_, err := kernels.SinSum[float64](0)
	require.ErrorIs(t, err, kernels.ErrInvalidSteps)
	_, err = kernels.SinSumParallel[float32](nil, -1)
	require.ErrorIs(t, err, kernels.ErrInvalidSteps)
}
