// SPDX-License-Identifier: MIT

package kernels

import (
	"math"

	"github.com/katalvlaran/lvsolve/parallel"
)

// Float is the element precision of SinSum.
type Float interface {
	~float32 | ~float64
}

// SinSum returns Σ_{k<n} sin(2π·t_k) with t_0 = 0 and t_{k+1} = t_k + 1/n,
// every operation rounded to T. The argument is accumulated, so float32 drifts
// visibly over long runs.
//
// Complexity: O(n).
func SinSum[T Float](n int) (T, error) {
	if n <= 0 {
		return 0, kernelErrorf(opSinSum, ErrInvalidSteps)
	}
	pi := T(math.Pi)
	delta := 1 / T(n)

	var sum, arg T
	for k := 0; k < n; k++ {
		sum += T(math.Sin(float64(2 * pi * arg)))
		arg += delta
	}

	return sum, nil
}

// SinSumParallel is SinSum with the index range split across p. Each term
// uses t_k = k·(1/n) directly, since an accumulated argument cannot be split.
// A nil p runs inline.
func SinSumParallel[T Float](p *parallel.Pool, n int) (T, error) {
	if n <= 0 {
		return 0, kernelErrorf(opSinSum, ErrInvalidSteps)
	}
	pi := T(math.Pi)
	delta := 1 / T(n)

	sum := parallel.Reduce(p, n, T(0), func(start, end int) T {
		var part T
		for k := start; k < end; k++ {
			part += T(math.Sin(float64(2 * pi * T(k) * delta)))
		}
		return part
	}, func(acc, part T) T { return acc + part })

	return sum, nil
}
