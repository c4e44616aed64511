// SPDX-License-Identifier: MIT
package iterative_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsolve/iterative"
	"github.com/katalvlaran/lvsolve/parallel"
	"github.com/stretchr/testify/require"
)

// TestResidualNormProperties: up, down ≥ 0 and up == 0 exactly when ax == b.
func TestResidualNormProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for range 20 {
		n := 1 + rng.Intn(40)
		ax := make([]float64, n)
		b := make([]float64, n)
		for i := range b {
			ax[i] = rng.NormFloat64()
			b[i] = rng.NormFloat64()
		}
		up, down := iterative.ResidualNorm(ax, b)
		require.GreaterOrEqual(t, up, 0.0)
		require.GreaterOrEqual(t, down, 0.0)
		require.Positive(t, up)

		up, _ = iterative.ResidualNorm(b, b)
		require.Zero(t, up)
	}
}

// TestResidualNormValues checks a hand-computed case.
func TestResidualNormValues(t *testing.T) {
	up, down := iterative.ResidualNorm([]float64{1, 2, 3}, []float64{1, 0, 1})
	require.Equal(t, 8.0, up)
	require.Equal(t, 2.0, down)
	require.InDelta(t, 2.0, iterative.RelativeResidual(up, down), 1e-15)
}

// TestRelativeResidualZeroRHS: with down == 0 the criterion falls back to ‖Ax-b‖.
func TestRelativeResidualZeroRHS(t *testing.T) {
	require.Equal(t, 3.0, iterative.RelativeResidual(9, 0))
	require.Zero(t, iterative.RelativeResidual(0, 0))
	require.True(t, iterative.Converged(0, 0, 1e-5))
	require.False(t, iterative.Converged(1, 0, 1e-5))
}

// TestConvergedStrict: the predicate is a strict comparison.
func TestConvergedStrict(t *testing.T) {
	require.False(t, iterative.Converged(1, 4, 0.5))
	require.True(t, iterative.Converged(1, 4, math.Nextafter(0.5, 1)))
}

// TestResidualNormParallel agrees with the serial sums for several pools.
func TestResidualNormParallel(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	const n = 1000
	ax := make([]float64, n)
	b := make([]float64, n)
	for i := range b {
		ax[i] = rng.Float64()
		b[i] = rng.Float64()
	}
	wantUp, wantDown := iterative.ResidualNorm(ax, b)

	for _, workers := range []int{1, 2, 7, 16} {
		p := mustPool(t, parallel.Config{Workers: workers, Schedule: parallel.Dynamic, Chunk: 32})
		up, down := iterative.ResidualNormParallel(p, ax, b)
		require.InEpsilon(t, wantUp, up, 1e-12)
		require.InEpsilon(t, wantDown, down, 1e-12)

		// Same pool, same partition: bitwise repeatable.
		up2, down2 := iterative.ResidualNormParallel(p, ax, b)
		require.Equal(t, up, up2)
		require.Equal(t, down, down2)
	}

	up, down := iterative.ResidualNormParallel(nil, ax, b)
	require.Equal(t, wantUp, up)
	require.Equal(t, wantDown, down)
}
