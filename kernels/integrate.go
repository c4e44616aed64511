// SPDX-License-Identifier: MIT

package kernels

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsolve/parallel"
)

// Gaussian is exp(-x²), the benchmark integrand.
func Gaussian(x float64) float64 {
	return math.Exp(-x * x)
}

// validateMidpoint checks the interval and step count shared by both forms.
func validateMidpoint(a, b float64, n int) error {
	if n <= 0 {
		return kernelErrorf(opMidpoint, ErrInvalidSteps)
	}
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) || !(a < b) {
		return kernelErrorf(opMidpoint, fmt.Errorf("%w: [%g, %g]", ErrInvalidInterval, a, b))
	}

	return nil
}

// Midpoint approximates ∫_a^b f with n midpoint cells: h·Σ_{i<n} f(a + h(i+½)),
// h = (b-a)/n.
//
// Errors: ErrInvalidSteps (n ≤ 0), ErrInvalidInterval (non-finite or a ≥ b).
// Complexity: O(n) evaluations of f.
func Midpoint(f func(float64) float64, a, b float64, n int) (float64, error) {
	if err := validateMidpoint(a, b, n); err != nil {
		return 0, err
	}
	h := (b - a) / float64(n)

	var sum float64
	for i := 0; i < n; i++ {
		sum += f(a + h*(float64(i)+0.5))
	}

	return sum * h, nil
}

// MidpointParallel is Midpoint with the cells split across p; f must be safe
// for concurrent calls.
func MidpointParallel(p *parallel.Pool, f func(float64) float64, a, b float64, n int) (float64, error) {
	if err := validateMidpoint(a, b, n); err != nil {
		return 0, err
	}
	h := (b - a) / float64(n)

	sum := parallel.SumFloat64(p, n, func(start, end int) float64 {
		var part float64
		for i := start; i < end; i++ {
			part += f(a + h*(float64(i)+0.5))
		}
		return part
	})

	return sum * h, nil
}
