// SPDX-License-Identifier: MIT
package kernels_test

import (
	"testing"

	"github.com/katalvlaran/lvsolve/kernels"
	"github.com/katalvlaran/lvsolve/matrix"
	"github.com/katalvlaran/lvsolve/parallel"
	"github.com/stretchr/testify/require"
)

// dgemvExpected is y[i] = Σ_j (i+j)·j = i·Σj + Σj², exact in float64 for small sizes.
func dgemvExpected(m, n int) []float64 {
	s1 := float64(n * (n - 1) / 2)
	s2 := float64((n - 1) * n * (2*n - 1) / 6)
	y := make([]float64, m)
	for i := range y {
		y[i] = float64(i)*s1 + s2
	}

	return y
}

func TestDGEMVFixture(t *testing.T) {
	for _, shape := range [][2]int{{1, 1}, {7, 5}, {300, 300}} {
		m, n := shape[0], shape[1]
		f, err := kernels.NewDGEMVFixture(m, n)
		require.NoError(t, err)
		require.Equal(t, m, f.A.Rows())
		require.Equal(t, n, f.A.Cols())

		require.NoError(t, f.Run())
		require.Equal(t, dgemvExpected(m, n), f.Y)
	}
}

func TestDGEMVFixtureParallel(t *testing.T) {
	f, err := kernels.NewDGEMVFixture(257, 129)
	require.NoError(t, err)
	want := dgemvExpected(257, 129)

	for _, workers := range []int{1, 2, 4, 8} {
		p := mustPool(t, parallel.Config{Workers: workers})
		clear(f.Y)
		require.NoError(t, f.RunParallel(p))
		require.Equal(t, want, f.Y)
	}
}

func TestDGEMVFixtureErrors(t *testing.T) {
	_, err := kernels.NewDGEMVFixture(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = kernels.NewDGEMVFixture(1<<20, 1<<20)
	require.ErrorIs(t, err, matrix.ErrAllocation)
}
