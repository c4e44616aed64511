// SPDX-License-Identifier: MIT

package harness

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/lvsolve/iterative"
	"github.com/katalvlaran/lvsolve/matrix"
	"github.com/katalvlaran/lvsolve/parallel"
	"gonum.org/v1/gonum/floats"
)

func (c IterationConfig) validate() error {
	if c.N <= 0 {
		return fmt.Errorf("%w: N must be > 0 (%d)", ErrInvalidConfig, c.N)
	}

	return c.Sweep.validate()
}

func (c IterationConfig) solverOptions(ctx context.Context, p *parallel.Pool) []iterative.Option {
	opts := []iterative.Option{
		iterative.WithContext(ctx),
		iterative.WithTau(c.Tau),
		iterative.WithEpsilon(c.Epsilon),
		iterative.WithMaxIter(c.MaxIter),
		iterative.WithPool(p),
	}
	if c.OnIteration != nil {
		opts = append(opts, iterative.WithOnIteration(c.OnIteration))
	}

	return opts
}

// RunIteration solves the n×n system A = (diag 2, off 1), b[i] = n+1 from
// x0 = 0, first serially and then once per cfg.Workers entry, and writes
//
//	Elapsed time (serial): %.6f sec.
//	<blank>
//	Elapsed time (parallel): %.6f sec.
//	On %d threads: %.6f
//	<blank>
//
// with the parallel pair repeated per worker count. With cfg.Verify the
// serial result is compared with iterative.ReferenceSolve and every parallel
// result with the serial one; a distance above VerifyTolerance fails with
// ErrVerification.
//
// Errors: ErrInvalidConfig, matrix.ErrAllocation, iterative.ErrOptionViolation,
// iterative.ErrConvergenceFailed, ErrVerification, ctx errors, write errors.
// The returned Report holds every run completed before the error.
func RunIteration(ctx context.Context, cfg IterationConfig, w io.Writer) (Report, error) {
	var rep Report
	if err := cfg.validate(); err != nil {
		return rep, harnessErrorf(opRunIteration, err)
	}
	a, err := matrix.NewDiagOffDiag(cfg.N, 2, 1)
	if err != nil {
		return rep, harnessErrorf(opRunIteration, err)
	}
	b, err := matrix.NewConstVector(cfg.N, float64(cfg.N+1))
	if err != nil {
		return rep, harnessErrorf(opRunIteration, err)
	}
	out := &printer{w: w}

	solve := func(p *parallel.Pool) (Run, error) {
		res, err := iterative.Solve(ctx, a, b, nil, cfg.solverOptions(ctx, p)...)
		if err != nil {
			return Run{}, err
		}
		return Run{Elapsed: res.Elapsed, Iterations: res.Iterations, Residual: res.Residual, X: res.X}, nil
	}

	if rep.Serial, err = solve(nil); err != nil {
		return rep, harnessErrorf(opRunIteration, err)
	}
	rep.Serial.Speedup = 1
	out.printf("Elapsed time (serial): %.6f sec.\n\n", rep.Serial.Elapsed.Seconds())

	if cfg.Verify {
		ref, err := iterative.ReferenceSolve(a, b)
		if err != nil {
			return rep, harnessErrorf(opRunIteration, err)
		}
		if err = within(rep.Serial.X, ref, "reference"); err != nil {
			return rep, harnessErrorf(opRunIteration, err)
		}
	}

	rep.Parallel, err = sweep(ctx, cfg.Sweep, rep.Serial.Elapsed, func(p *parallel.Pool) (Run, error) {
		run, err := solve(p)
		if err != nil {
			return run, err
		}
		out.printf("Elapsed time (parallel): %.6f sec.\n", run.Elapsed.Seconds())
		if cfg.Verify {
			err = within(run.X, rep.Serial.X, "serial")
		}
		return run, err
	}, func(run Run) {
		out.printf("On %d threads: %.6f\n\n", run.Workers, run.Speedup)
	})
	if err != nil {
		return rep, harnessErrorf(opRunIteration, err)
	}

	return rep, out.err
}

// within fails with ErrVerification when max|x-want| > VerifyTolerance.
func within(x, want []float64, against string) error {
	if floats.EqualApprox(x, want, VerifyTolerance) {
		return nil
	}

	return fmt.Errorf("%w: max deviation from %s solution %.3e", ErrVerification, against, floats.Distance(x, want, math.Inf(1)))
}
