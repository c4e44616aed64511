// SPDX-License-Identifier: MIT

package iterative

import (
	"errors"
	"fmt"
)

// Sentinel errors for solver construction and execution.
var (
	// ErrConvergenceFailed is returned by Step and Solve when MaxIter updates
	// were applied without meeting the residual criterion. Solve still returns
	// the populated Result (State == StateFailed).
	ErrConvergenceFailed = errors.New("iterative: convergence failed")

	// ErrOptionViolation is returned when an invalid Option is supplied
	// (e.g. non-positive tau). It is recorded while options are applied and
	// surfaced by NewSolver.
	ErrOptionViolation = errors.New("iterative: invalid option supplied")

	// ErrNotPositiveDefinite is returned by StableStepBound when the smallest
	// eigenvalue is not positive, so no step size makes the iteration contract.
	ErrNotPositiveDefinite = errors.New("iterative: matrix is not positive definite")

	// ErrReferenceFailed is returned when the gonum reference factorization fails.
	ErrReferenceFailed = errors.New("iterative: reference solve failed")
)

// Operation tags for error wrapping.
const (
	opNewSolver       = "NewSolver"
	opStep            = "Step"
	opSolve           = "Solve"
	opReferenceSolve  = "ReferenceSolve"
	opStableStepBound = "StableStepBound"
)

// solverErrorf wraps err with an operation tag, preserving it for errors.Is.
func solverErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
