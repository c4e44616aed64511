// SPDX-License-Identifier: MIT
// Package matrix : constructors for common fixtures and vector comparisons.
//
// Determinism & Policy:
//   - Generators use fixed loop orders and no randomness.
//   - Comparisons validate inputs with the central validators.

package matrix

import (
	"fmt"
	"math"
)

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	I, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewDiagOffDiag returns the n×n matrix with diag on the diagonal and off
// everywhere else. NewDiagOffDiag(n, 2, 1) is the benchmark system matrix:
// symmetric positive definite with eigenvalues 1 (n-1 times) and n+1.
//
// Errors: ErrInvalidDimensions, ErrAllocation, ErrNaNInf (non-finite diag/off).
// Complexity: O(n^2).
func NewDiagOffDiag(n int, diag, off float64, opts ...Option) (*Dense, error) {
	m, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	if m.validateNaNInf && !(isFinite(diag) && isFinite(off)) {
		return nil, fmt.Errorf("NewDiagOffDiag: diag=%v off=%v: %w", diag, off, ErrNaNInf)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				m.data[i*n+j] = diag
			} else {
				m.data[i*n+j] = off
			}
		}
	}

	return m, nil
}

// NewFromFunc returns the rows×cols matrix with entry (i, j) = f(i, j),
// filled in row-major order.
//
// Errors: ErrInvalidDimensions, ErrAllocation, ErrNaNInf (non-finite f value
// under the default policy).
// Complexity: O(rows*cols) calls of f.
func NewFromFunc(rows, cols int, f func(i, j int) float64, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v = f(i, j)
			if m.validateNaNInf && !isFinite(v) {
				return nil, denseErrorf("NewFromFunc", i, j, ErrNaNInf)
			}
			m.data[i*cols+j] = v
		}
	}

	return m, nil
}

// NewConstVector returns a length-n vector filled with v.
// Errors: ErrInvalidDimensions for n <= 0, ErrAllocation above MaxElements.
func NewConstVector(n int, v float64) ([]float64, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	if _, err := elementCount(n, 1); err != nil {
		return nil, err
	}
	x := make([]float64, n)
	for i := range x {
		x[i] = v
	}

	return x, nil
}

// AllCloseVec checks element-wise |a-b| ≤ atol + rtol*|b| for equal-length vectors.
// Negative tolerances are normalized to their absolute value.
//
// Errors: ErrNilMatrix (nil vector), ErrDimensionMismatch, ErrNaNInf (tolerance).
// Complexity: O(n).
func AllCloseVec(a, b []float64, rtol, atol float64) (bool, error) {
	if !isFinite(rtol) || !isFinite(atol) {
		return false, matrixErrorf("AllCloseVec", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if a == nil || b == nil {
		return false, matrixErrorf("AllCloseVec", ErrNilMatrix)
	}
	if err := ValidateVecLen(a, len(b)); err != nil {
		return false, matrixErrorf("AllCloseVec", err)
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > atol+rtol*math.Abs(b[i]) {
			return false, nil
		}
	}

	return true, nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
