// Package iterative solves a linear system A·x = b by simple (fixed-point)
// iteration
//
//	x := x - τ(Ax - b)
//
// stopping when the relative residual ‖Ax-b‖/‖b‖ drops below ε.
//
// What
//
//   - Solver owns A, b, the estimate x and the A·x scratch vector.
//   - Step runs one iteration in three phases: matvec, residual reduction,
//     elementwise update. The update is skipped once the criterion holds.
//   - Solve loops Step until convergence (never recursion) and reports the
//     wall-clock time. WithMaxIter bounds the loop; exceeding it yields
//     StateFailed and ErrConvergenceFailed alongside the populated Result.
//   - WithPool switches to the data-parallel mode: each phase is split across
//     a parallel.Pool with a barrier between phases.
//   - ReferenceSolve and StableStepBound use gonum to verify results and to
//     pick a step size (τ < 2/λmax).
//
// States
//
//	initialized → iterating ⇄ diverging → converged | failed
//
// Determinism
//
//	Matvec rows and update entries are written by exactly one worker each, so
//	they are bitwise identical to the serial mode. Only the two reduction sums
//	may differ in the last bits (floating-point reassociation); with a fixed
//	pool configuration they are reproducible.
//
// Usage
//
//	a, _ := matrix.NewDiagOffDiag(n, 2, 1)
//	b, _ := matrix.NewConstVector(n, float64(n+1))
//	res, err := iterative.Solve(ctx, a, b, nil, iterative.WithTau(0.001))
//	if errors.Is(err, iterative.ErrConvergenceFailed) {
//		// res.State == iterative.StateFailed
//	}
package iterative
