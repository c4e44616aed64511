// Package harness drives the timing benchmarks: it builds a fixture, runs it
// once serially, then once per worker count on a fresh parallel.Pool, and
// writes elapsed times and serial/parallel speedups to an io.Writer.
//
// Runners:
//
//	RunIteration: the simple-iteration solver on A = (diag 2, off 1), b = n+1.
//	RunDGEMV:     y = A·v with A[i,j] = i+j, v[j] = j.
//	RunIntegrate: midpoint rule for exp(-x²), error against √π.
//	RunSinSum:    Σ sin over one period in float32 or float64.
//
// Every runner returns a Report holding the serial Run and one Run per worker
// count, in the order the counts were given. Output lines use 6 decimals for
// seconds; the exact layouts are documented on each runner.
//
// Fixture allocation failures surface as matrix.ErrAllocation; the CLI maps
// them to "Error allocate memory!" and exit status 1.
package harness
