// SPDX-License-Identifier: MIT

package iterative

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/lvsolve/parallel"
)

// Defaults of the benchmark configuration.
const (
	// DefaultTau is the step size τ of x := x - τ(Ax - b).
	DefaultTau = 0.0005

	// DefaultEpsilon is the relative-residual threshold ε.
	DefaultEpsilon = 1e-5

	// DefaultMaxIter caps the number of updates; 0 disables the cap.
	DefaultMaxIter = 1_000_000
)

// State is the position of a Solver in its lifecycle.
type State int

const (
	// StateInitialized: constructed or Reset, no step taken yet.
	StateInitialized State = iota
	// StateIterating: the last update reduced (or kept) the residual.
	StateIterating
	// StateDiverging: the last update increased the residual. Not terminal.
	StateDiverging
	// StateConverged: the residual criterion holds for the current x. Terminal.
	StateConverged
	// StateFailed: MaxIter updates were applied without convergence. Terminal.
	StateFailed
)

var stateNames = [...]string{
	StateInitialized: "initialized",
	StateIterating:   "iterating",
	StateDiverging:   "diverging",
	StateConverged:   "converged",
	StateFailed:      "failed",
}

// String returns the lower-case state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}

	return stateNames[s]
}

// Option configures a Solver via functional arguments.
// If an Option is invalid (e.g. negative tau), it is recorded internally and
// surfaced as ErrOptionViolation by NewSolver.
type Option func(*Options)

// Options holds the parameters and callbacks of a solve.
type Options struct {
	// Ctx is checked between iterations; an iteration always runs to completion.
	Ctx context.Context

	// Tau is the step size τ (> 0).
	Tau float64

	// Epsilon is the relative-residual threshold ε (> 0).
	Epsilon float64

	// MaxIter caps the number of updates. 0 disables the cap.
	MaxIter int

	// Pool runs the matvec, reduction and update phases in parallel.
	// nil selects the serial mode.
	Pool *parallel.Pool

	// X0 is the initial guess; nil means the zero vector.
	X0 []float64

	// OnIteration is called after every step with the number of updates
	// applied so far, the relative residual of the x that was checked and the
	// resulting state. Returning an error aborts Solve with that error.
	OnIteration func(iter int, residual float64, state State) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the benchmark defaults: τ = DefaultTau,
// ε = DefaultEpsilon, MaxIter = DefaultMaxIter, serial mode, zero x0,
// background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Tau:         DefaultTau,
		Epsilon:     DefaultEpsilon,
		MaxIter:     DefaultMaxIter,
		OnIteration: func(int, float64, State) error { return nil },
	}
}

// WithContext sets a custom context for cancellation between iterations.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTau sets the step size. tau must be finite and > 0.
func WithTau(tau float64) Option {
	return func(o *Options) {
		if math.IsNaN(tau) || math.IsInf(tau, 0) || tau <= 0 {
			o.err = fmt.Errorf("%w: tau must be finite and > 0 (%v)", ErrOptionViolation, tau)
			return
		}
		o.Tau = tau
	}
}

// WithEpsilon sets the relative-residual threshold. eps must be finite and > 0.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
			o.err = fmt.Errorf("%w: epsilon must be finite and > 0 (%v)", ErrOptionViolation, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithMaxIter caps the number of updates.
//
//	n > 0: at most n updates, then ErrConvergenceFailed
//	n == 0: explicit no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIter cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIter = n
	}
}

// WithPool selects the data-parallel mode on p. A nil pool keeps the serial mode.
func WithPool(p *parallel.Pool) Option {
	return func(o *Options) { o.Pool = p }
}

// WithInitialGuess sets x0. Its length is checked by NewSolver.
func WithInitialGuess(x0 []float64) Option {
	return func(o *Options) { o.X0 = x0 }
}

// WithOnIteration registers a progress callback; returning an error from it
// stops Solve.
func WithOnIteration(fn func(iter int, residual float64, state State) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

// Result is the outcome of Solve.
type Result struct {
	// X is a copy of the final solution estimate.
	X []float64

	// Iterations is the number of updates applied.
	Iterations int

	// Residual is ‖Ax-b‖/‖b‖ for X (‖Ax-b‖ when b == 0).
	Residual float64

	// Elapsed is the wall-clock duration of the solve.
	Elapsed time.Duration

	// State is StateConverged on success, StateFailed after MaxIter.
	State State
}
