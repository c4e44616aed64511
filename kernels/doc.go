// Package kernels holds the flat numeric loops that sit next to the iterative
// solver in the benchmark suite, each in a serial form and a form spread over
// a parallel.Pool.
//
//   - SinSum / SinSumParallel: Σ sin(2π·k/n) over one period, in float32 or
//     float64 precision. The exact value is 0, so the result is the
//     accumulated rounding error of the chosen precision.
//   - Midpoint / MidpointParallel: the midpoint rule h·Σ f(a + h(i+½)).
//     Gaussian on [-4, 4] integrates to √π up to a tail below 1e-7.
//   - DGEMVFixture: the dense matrix-vector product fixture A[i,j] = i+j,
//     v[j] = j, run through matrix.MatVecInto or matrix.MatVecParallel.
//
// Parallel sums keep one partial per span and combine them in span order, so
// a given (n, parallel.Config) always produces the same bits. They may differ
// from the serial sums by floating-point reassociation.
package kernels
