// SPDX-License-Identifier: MIT
// Package matrix: matrix-vector kernels.
//
// Purpose:
//   - Provide y = A·x in an allocating form (MatVec), an in-place form that
//     writes a caller-supplied buffer (MatVecInto) and a row-parallel form
//     over a parallel.Pool (MatVecParallel).
//   - Keep one canonical row kernel so all three produce bitwise identical rows.
//
// Notes:
//   - All kernels use the central validators and wrap with matrixErrorf.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvsolve/parallel"
)

// ZeroSum is the initial value of every row accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMatVec         = "MatVec"
	opMatVecInto     = "MatVecInto"
	opMatVecParallel = "MatVecParallel"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Call only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateMatVec checks m non-nil, len(x) == Cols() and len(dst) == Rows().
func validateMatVec(dst []float64, m Matrix, x []float64) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return err
	}

	return ValidateVecLen(dst, m.Rows())
}

// denseRows computes dst[i] = Σ_j a[i,j]·x[j] for rows [start, end).
// Fixed j order per row; no bounds checks beyond the slice ones.
func denseRows(dst []float64, d *Dense, x []float64, start, end int) {
	var i, j, base int
	var acc float64
	for i = start; i < end; i++ {
		acc = ZeroSum
		base = i * d.c
		row := d.data[base : base+d.c]
		for j = range row {
			acc += row[j] * x[j]
		}
		dst[i] = acc
	}
}

// genericRows is the interface fallback of denseRows via At.
func genericRows(dst []float64, m Matrix, x []float64, start, end int) error {
	cols := m.Cols()
	var mv, acc float64
	var err error
	for i := start; i < end; i++ {
		acc = ZeroSum
		for j := 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			acc += mv * x[j]
		}
		dst[i] = acc
	}

	return nil
}

// MatVecInto computes dst = m·x without allocating.
//
// Contract: m non-nil; len(x) == m.Cols(); len(dst) == m.Rows(); dst must not
// alias x.
//
// Errors:
//   - ErrNilMatrix (nil m, x or dst), ErrDimensionMismatch (lengths).
//
// Determinism:
//   - Fixed i→j loop order.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func MatVecInto(dst []float64, m Matrix, x []float64) error {
	if err := validateMatVec(dst, m, x); err != nil {
		return matrixErrorf(opMatVecInto, err)
	}
	if d, ok := m.(*Dense); ok {
		denseRows(dst, d, x, 0, d.r)
		return nil
	}
	if err := genericRows(dst, m, x, 0, m.Rows()); err != nil {
		return matrixErrorf(opMatVecInto, err)
	}

	return nil
}

// MatVec computes y = m·x into a freshly allocated vector of length m.Rows().
//
// Errors: as MatVecInto (nil x is ErrNilMatrix).
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, m.Rows())
	if err := MatVecInto(y, m, x); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	return y, nil
}

// MatVecParallel computes dst = m·x with rows partitioned across pool.
// Each row is produced by exactly one worker in fixed j order, so dst is
// bitwise identical to MatVecInto for every pool configuration. A nil pool
// runs serially.
//
// Errors: as MatVecInto.
// Complexity: Time O(r*c / workers) per worker, Space O(1) (plus pool bookkeeping).
func MatVecParallel(pool *parallel.Pool, dst []float64, m Matrix, x []float64) error {
	if err := validateMatVec(dst, m, x); err != nil {
		return matrixErrorf(opMatVecParallel, err)
	}
	if d, ok := m.(*Dense); ok {
		pool.For(d.r, func(start, end int) { denseRows(dst, d, x, start, end) })
		return nil
	}

	// Interface fallback: rows are independent, keep the first error by row order.
	errs := make([]error, m.Rows())
	pool.For(m.Rows(), func(start, end int) {
		for i := start; i < end; i++ {
			errs[i] = genericRows(dst, m, x, i, i+1)
		}
	})
	for _, err := range errs {
		if err != nil {
			return matrixErrorf(opMatVecParallel, err)
		}
	}

	return nil
}
