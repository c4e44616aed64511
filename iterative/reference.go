// SPDX-License-Identifier: MIT

package iterative

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsolve/matrix"
	"gonum.org/v1/gonum/mat"
)

// denseData returns a row-major copy of a's entries.
func denseData(a matrix.Matrix) ([]float64, error) {
	if d, ok := a.(*matrix.Dense); ok {
		return d.RawData(), nil
	}
	r, c := a.Rows(), a.Cols()
	data := make([]float64, r*c)
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if data[i*c+j], err = a.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return data, nil
}

// ReferenceSolve solves a·x = b directly with gonum's LU factorization.
// It is an oracle for verifying iterative results, not a solver for
// ill-conditioned systems: a near-singular matrix fails with
// ErrReferenceFailed.
//
// Complexity: Time O(n³), Space O(n²).
func ReferenceSolve(a matrix.Matrix, b []float64) ([]float64, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, solverErrorf(opReferenceSolve, err)
	}
	n := a.Rows()
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return nil, solverErrorf(opReferenceSolve, err)
	}
	data, err := denseData(a)
	if err != nil {
		return nil, solverErrorf(opReferenceSolve, err)
	}

	var x mat.VecDense
	rhs := mat.NewVecDense(n, append([]float64(nil), b...))
	if err = x.SolveVec(mat.NewDense(n, n, data), rhs); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil, solverErrorf(opReferenceSolve, fmt.Errorf("%w: condition number %g", ErrReferenceFailed, float64(cond)))
		}
		return nil, solverErrorf(opReferenceSolve, fmt.Errorf("%w: %v", ErrReferenceFailed, err))
	}

	return append([]float64(nil), x.RawVector().Data...), nil
}

// StableStepBound returns 2/λmax for a symmetric positive definite a.
// x := x - τ(Ax - b) contracts exactly when 0 < τ < 2/λmax; for the 2/1
// benchmark matrix λmax = n+1.
//
// Errors:
//   - matrix.ErrNonSquare, matrix.ErrAsymmetry (within matrix.DefaultEpsilon).
//   - ErrNotPositiveDefinite when λmin ≤ 0.
//   - ErrReferenceFailed when the eigen decomposition does not converge.
//
// Complexity: Time O(n³), Space O(n²).
func StableStepBound(a matrix.Matrix) (float64, error) {
	if err := matrix.ValidateSymmetric(a, matrix.DefaultEpsilon); err != nil {
		return 0, solverErrorf(opStableStepBound, err)
	}
	n := a.Rows()
	data, err := denseData(a)
	if err != nil {
		return 0, solverErrorf(opStableStepBound, err)
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(mat.NewSymDense(n, data), false); !ok {
		return 0, solverErrorf(opStableStepBound, ErrReferenceFailed)
	}
	values := eig.Values(nil) // ascending
	if values[0] <= 0 {
		return 0, solverErrorf(opStableStepBound, fmt.Errorf("%w: λmin=%g", ErrNotPositiveDefinite, values[0]))
	}

	return 2 / values[n-1], nil
}
