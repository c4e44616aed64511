// Package lvsolve is a small suite of numeric benchmarks that time a serial
// loop against the same loop spread over a persistent worker pool.
//
// 🚀 What is inside?
//
//	• Simple iteration: solve Ax = b with x := x - τ(Ax - b) until
//	  ‖Ax-b‖/‖b‖ < ε, serially or with every phase split across workers
//	• Dense matrix-vector product with a parallel row loop
//	• Midpoint-rule integration and a sine-series sum as reduction kernels
//	• A harness that sweeps worker counts and reports elapsed time and speedup
//
// Under the hood, everything is organized into these subpackages:
//
//	matrix/     row-major Dense storage, MatVec kernels, validators, generators
//	parallel/   worker Pool with static, dynamic and guided schedules; For and Reduce
//	iterative/  Solver state machine, residual norms, gonum reference checks
//	kernels/    SinSum, Midpoint and the DGEMV fixture
//	harness/    benchmark runners writing timing reports
//	cmd/lvsolve CLI: iterate, dgemv, integrate, sinsum
//
// Quick start:
//
//	go run ./cmd/lvsolve iterate -workers 1,2,4 50
//
// The solver on the benchmark system (diagonal 2, off-diagonal 1, b = n+1)
// converges to the ones vector whenever 0 < τ < 2/(n+1).
package lvsolve
