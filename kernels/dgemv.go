// SPDX-License-Identifier: MIT

package kernels

import (
	"github.com/katalvlaran/lvsolve/matrix"
	"github.com/katalvlaran/lvsolve/parallel"
)

// DGEMVFixture holds y = A·v with A[i,j] = i+j and v[j] = j.
type DGEMVFixture struct {
	A *matrix.Dense
	V []float64
	Y []float64
}

// NewDGEMVFixture allocates and fills an m×n fixture.
//
// Errors: matrix.ErrInvalidDimensions, matrix.ErrAllocation.
// Complexity: O(m·n).
func NewDGEMVFixture(m, n int) (*DGEMVFixture, error) {
	a, err := matrix.NewFromFunc(m, n, func(i, j int) float64 { return float64(i + j) },
		matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, kernelErrorf(opDGEMV, err)
	}
	v := make([]float64, n)
	for j := range v {
		v[j] = float64(j)
	}

	return &DGEMVFixture{A: a, V: v, Y: make([]float64, m)}, nil
}

// Run computes Y = A·V serially.
func (f *DGEMVFixture) Run() error {
	if err := matrix.MatVecInto(f.Y, f.A, f.V); err != nil {
		return kernelErrorf(opDGEMV, err)
	}

	return nil
}

// RunParallel computes Y = A·V with rows split across p.
func (f *DGEMVFixture) RunParallel(p *parallel.Pool) error {
	if err := matrix.MatVecParallel(p, f.Y, f.A, f.V); err != nil {
		return kernelErrorf(opDGEMV, err)
	}

	return nil
}
