// Package matrix offers dense row-major matrices and the matrix-vector kernels
// used by the iterative solvers.
//
// The matrix package provides:
//
//   - Dense: flat []float64 storage with bounds-checked At/Set, Row views and
//     an optional finite-value policy (WithValidateNaNInf, the default).
//   - MatVec / MatVecInto: y = A·x, allocating or into a caller buffer.
//   - MatVecParallel: the same kernel with rows split across a parallel.Pool;
//     results are bitwise identical to MatVecInto.
//   - Generators for benchmark fixtures (NewDiagOffDiag, NewIdentity,
//     NewConstVector) and validators (ValidateSquare, ValidateVecLen, ...).
//
// Every failure is a sentinel from errors.go, matched with errors.Is.
// Requests above MaxElements fail with ErrAllocation before allocating.
package matrix
