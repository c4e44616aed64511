// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvsolve/matrix"
	"github.com/stretchr/testify/require"
)

// TestWithEpsilonPanics: nonsensical literals are programmer errors.
func TestWithEpsilonPanics(t *testing.T) {
	for _, eps := range []float64{-1, math.NaN(), math.Inf(1)} {
		require.Panics(t, func() { matrix.WithEpsilon(eps) }, "eps=%v", eps)
	}
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
}

// TestNaNInfPolicy: validation is on by default and can be disabled per matrix.
func TestNaNInfPolicy(t *testing.T) {
	data := []float64{1, math.NaN(), 3, 4}

	_, err := matrix.NewDenseFrom(2, 2, data)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err := matrix.NewDenseFrom(2, 2, data, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.True(t, math.IsNaN(v))

	_, err = matrix.NewDenseFrom(2, 2, data, matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestDominanceEpsilon: the tolerance lets a row miss weak dominance by eps.
func TestDominanceEpsilon(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 2, []float64{1, 1.0005, 0, 1})
	require.NoError(t, err)

	ok, err := matrix.IsDiagonallyDominant(m)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.IsDiagonallyDominant(m, matrix.WithEpsilon(1e-3))
	require.NoError(t, err)
	require.True(t, ok)
}
