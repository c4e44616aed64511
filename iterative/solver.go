// SPDX-License-Identifier: MIT

package iterative

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/lvsolve/matrix"
)

// Solver owns the system matrix, the right-hand side, the solution estimate
// and the A·x scratch vector of one fixed-point iteration x := x - τ(Ax - b).
//
// A Solver is not safe for concurrent use; the parallel mode parallelizes
// inside each step.
type Solver struct {
	a    matrix.Matrix
	b    []float64 // owned copy, read-only after construction
	x0   []float64 // owned copy of the initial guess
	x    []float64 // current estimate
	ax   []float64 // A·x of the last check
	opts Options

	state    State
	iter     int     // updates applied since construction or Reset
	residual float64 // relative residual of the last checked x
}

// NewSolver validates the system and allocates the solution and scratch
// vectors. b and the initial guess are copied.
//
// Errors:
//   - ErrOptionViolation for invalid options.
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch
//     for an invalid system or initial guess.
//   - matrix.ErrNaNInf when b or x0 holds a non-finite value.
func NewSolver(a matrix.Matrix, b []float64, opts ...Option) (*Solver, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.err != nil {
		return nil, solverErrorf(opNewSolver, o.err)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, solverErrorf(opNewSolver, err)
	}
	n := a.Rows()
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return nil, solverErrorf(opNewSolver, fmt.Errorf("b: %w", err))
	}
	if err := matrix.ValidateFinite(b); err != nil {
		return nil, solverErrorf(opNewSolver, fmt.Errorf("b: %w", err))
	}

	s := &Solver{
		a:    a,
		b:    append([]float64(nil), b...),
		x0:   make([]float64, n),
		x:    make([]float64, n),
		ax:   make([]float64, n),
		opts: o,
	}
	if o.X0 != nil {
		if err := matrix.ValidateVecLen(o.X0, n); err != nil {
			return nil, solverErrorf(opNewSolver, fmt.Errorf("x0: %w", err))
		}
		if err := matrix.ValidateFinite(o.X0); err != nil {
			return nil, solverErrorf(opNewSolver, fmt.Errorf("x0: %w", err))
		}
		copy(s.x0, o.X0)
	}
	s.Reset()

	return s, nil
}

// Reset restores x to the initial guess and the solver to StateInitialized,
// for a repeated timing run on the same system.
func (s *Solver) Reset() {
	copy(s.x, s.x0)
	clear(s.ax)
	s.state = StateInitialized
	s.iter = 0
	s.residual = math.Inf(1)
}

// State returns the current lifecycle state.
func (s *Solver) State() State { return s.state }

// Iterations returns the number of updates applied since construction or Reset.
func (s *Solver) Iterations() int { return s.iter }

// Residual returns the relative residual of the last checked x
// (+Inf before the first step).
func (s *Solver) Residual() float64 { return s.residual }

// X returns a copy of the current solution estimate.
func (s *Solver) X() []float64 { return append([]float64(nil), s.x...) }

// Step performs one iteration:
//   - Stage 1: ax := A·x (parallel over rows in parallel mode).
//   - Stage 2: (up, down) := ResidualNorm(ax, b); if sqrt(up)/sqrt(down) < ε,
//     leave x unchanged, enter StateConverged and return true.
//   - Stage 3: when MaxIter updates were already applied, enter StateFailed
//     and return ErrConvergenceFailed.
//   - Stage 4: x[i] -= τ(ax[i] - b[i]) for every i and return false.
//
// Each stage finishes before the next begins. Calling Step on a converged x
// returns true again without touching x.
func (s *Solver) Step() (bool, error) {
	pool := s.opts.Pool

	var up, down float64
	if pool == nil {
		if err := matrix.MatVecInto(s.ax, s.a, s.x); err != nil {
			return false, solverErrorf(opStep, err)
		}
		up, down = ResidualNorm(s.ax, s.b)
	} else {
		if err := matrix.MatVecParallel(pool, s.ax, s.a, s.x); err != nil {
			return false, solverErrorf(opStep, err)
		}
		up, down = ResidualNormParallel(pool, s.ax, s.b)
	}

	prev := s.residual
	s.residual = RelativeResidual(up, down)
	if s.residual < s.opts.Epsilon {
		s.state = StateConverged
		return true, nil
	}
	if s.opts.MaxIter > 0 && s.iter >= s.opts.MaxIter {
		s.state = StateFailed
		return false, solverErrorf(opStep, fmt.Errorf("%d updates, residual %g: %w", s.iter, s.residual, ErrConvergenceFailed))
	}

	tau, x, ax, b := s.opts.Tau, s.x, s.ax, s.b
	if pool == nil {
		update(x, ax, b, tau, 0, len(x))
	} else {
		pool.For(len(x), func(start, end int) { update(x, ax, b, tau, start, end) })
	}
	s.iter++

	if s.residual > prev {
		s.state = StateDiverging
	} else {
		s.state = StateIterating
	}

	return false, nil
}

// update applies x[i] -= τ(ax[i] - b[i]) over [start, end).
func update(x, ax, b []float64, tau float64, start, end int) {
	for i := start; i < end; i++ {
		x[i] -= tau * (ax[i] - b[i])
	}
}

// Solve steps until convergence and returns the converged estimate with the
// wall-clock duration. The loop is iterative; the context is checked between
// iterations only.
//
// Errors:
//   - ErrConvergenceFailed after MaxIter updates; the Result is still populated.
//   - ctx.Err() wrapped when the context ends between iterations.
//   - Any error returned by the OnIteration hook.
func (s *Solver) Solve() (Result, error) {
	ctx := s.opts.Ctx
	hook := s.opts.OnIteration
	start := time.Now()

	for {
		done, err := s.Step()
		if hookErr := hook(s.iter, s.residual, s.state); hookErr != nil && err == nil {
			err = fmt.Errorf("OnIteration at %d: %w", s.iter, hookErr)
		}
		if err != nil {
			return s.result(time.Since(start)), solverErrorf(opSolve, err)
		}
		if done {
			return s.result(time.Since(start)), nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return s.result(time.Since(start)), solverErrorf(opSolve, ctxErr)
		}
	}
}

// result snapshots the solver into a Result.
func (s *Solver) result(elapsed time.Duration) Result {
	return Result{
		X:          s.X(),
		Iterations: s.iter,
		Residual:   s.residual,
		Elapsed:    elapsed,
		State:      s.state,
	}
}

// Solve is the one-shot form: it builds a Solver for (a, b) starting from x0
// (nil means zeros) and runs it to convergence under ctx.
func Solve(ctx context.Context, a matrix.Matrix, b, x0 []float64, opts ...Option) (Result, error) {
	all := append(append([]Option(nil), opts...), WithContext(ctx), WithInitialGuess(x0))
	s, err := NewSolver(a, b, all...)
	if err != nil {
		return Result{}, err
	}

	return s.Solve()
}
