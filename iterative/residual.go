// SPDX-License-Identifier: MIT

package iterative

import (
	"math"

	"github.com/katalvlaran/lvsolve/parallel"
)

// ResidualNorm returns up = Σ(ax[i]-b[i])² and down = Σ b[i]².
// Both are ≥ 0, and up == 0 exactly when ax == b. Lengths must match;
// callers validate them (Solver does so at construction).
//
// Complexity: O(n).
func ResidualNorm(ax, b []float64) (up, down float64) {
	return residualSpan(ax, b, 0, len(b))
}

// ResidualNormParallel is ResidualNorm with the index range split across p.
// Each span keeps its own partial sums; partials are combined in span order,
// so the result is deterministic for a given pool configuration and may
// differ from ResidualNorm only by floating-point reassociation.
func ResidualNormParallel(p *parallel.Pool, ax, b []float64) (up, down float64) {
	sum := parallel.Reduce(p, len(b), parallel.Pair{}, func(start, end int) parallel.Pair {
		u, d := residualSpan(ax, b, start, end)
		return parallel.Pair{A: u, B: d}
	}, parallel.AddPair)

	return sum.A, sum.B
}

// residualSpan accumulates both sums over [start, end).
func residualSpan(ax, b []float64, start, end int) (up, down float64) {
	var diff float64
	for i := start; i < end; i++ {
		diff = ax[i] - b[i]
		up += diff * diff
		down += b[i] * b[i]
	}

	return up, down
}

// RelativeResidual returns sqrt(up)/sqrt(down), or sqrt(up) when down == 0.
func RelativeResidual(up, down float64) float64 {
	if down == 0 {
		return math.Sqrt(up)
	}

	return math.Sqrt(up) / math.Sqrt(down)
}

// Converged reports RelativeResidual(up, down) < eps (strict).
func Converged(up, down, eps float64) bool {
	return RelativeResidual(up, down) < eps
}
