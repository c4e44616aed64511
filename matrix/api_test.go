// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvsolve/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDiagOffDiag(t *testing.T) {
	a, err := matrix.NewDiagOffDiag(3, 2, 1)
	require.NoError(t, err)
	require.Equal(t, "[2, 1, 1]\n[1, 2, 1]\n[1, 1, 2]\n", a.String())

	_, err = matrix.NewDiagOffDiag(0, 2, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDiagOffDiag(2, math.NaN(), 1)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestNewFromFunc(t *testing.T) {
	a, err := matrix.NewFromFunc(2, 3, func(i, j int) float64 { return float64(10*i + j) })
	require.NoError(t, err)
	require.Equal(t, "[0, 1, 2]\n[10, 11, 12]\n", a.String())

	_, err = matrix.NewFromFunc(2, 2, func(i, j int) float64 { return math.Inf(1) })
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	b, err := matrix.NewFromFunc(1, 1, func(i, j int) float64 { return math.Inf(1) }, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	v, err := b.At(0, 0)
	require.NoError(t, err)
	require.True(t, math.IsInf(v, 1))
}

func TestNewConstVector(t *testing.T) {
	b, err := matrix.NewConstVector(4, 5)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 5, 5, 5}, b)

	_, err = matrix.NewConstVector(0, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewConstVector(matrix.MaxElements+1, 1)
	require.ErrorIs(t, err, matrix.ErrAllocation)
}

func TestAllCloseVec(t *testing.T) {
	ok, err := matrix.AllCloseVec([]float64{1, 2}, []float64{1 + 1e-12, 2}, 1e-9, 0)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllCloseVec([]float64{1, 2}, []float64{1.1, 2}, 1e-9, -1e-3)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllCloseVec([]float64{1}, []float64{1, 2}, 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.AllCloseVec(nil, []float64{1}, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.AllCloseVec([]float64{1}, []float64{1}, math.Inf(1), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
