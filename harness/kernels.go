// SPDX-License-Identifier: MIT

package harness

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/katalvlaran/lvsolve/kernels"
	"github.com/katalvlaran/lvsolve/parallel"
)

// RunDGEMV times y = A·v on an N×N fixture and writes
//
//	Elapsed time (serial): %.6f sec.
//	Elapsed time (parallel): %.6f sec.
//	On %d threads: %.6f
//
// with the last two lines repeated per worker count. The fixture is built
// once and reused by every run.
//
// Errors: ErrInvalidConfig, matrix.ErrAllocation, ctx errors, write errors.
func RunDGEMV(ctx context.Context, cfg DGEMVConfig, w io.Writer) (Report, error) {
	var rep Report
	if cfg.N <= 0 {
		return rep, harnessErrorf(opRunDGEMV, fmt.Errorf("%w: N must be > 0 (%d)", ErrInvalidConfig, cfg.N))
	}
	if err := cfg.Sweep.validate(); err != nil {
		return rep, harnessErrorf(opRunDGEMV, err)
	}
	f, err := kernels.NewDGEMVFixture(cfg.N, cfg.N)
	if err != nil {
		return rep, harnessErrorf(opRunDGEMV, err)
	}
	out := &printer{w: w}

	start := time.Now()
	if err = f.Run(); err != nil {
		return rep, harnessErrorf(opRunDGEMV, err)
	}
	rep.Serial = Run{Elapsed: time.Since(start), Speedup: 1}
	out.printf("Elapsed time (serial): %.6f sec.\n", rep.Serial.Elapsed.Seconds())

	rep.Parallel, err = sweep(ctx, cfg.Sweep, rep.Serial.Elapsed, func(p *parallel.Pool) (Run, error) {
		clear(f.Y)
		start := time.Now()
		if err := f.RunParallel(p); err != nil {
			return Run{}, err
		}
		run := Run{Elapsed: time.Since(start)}
		out.printf("Elapsed time (parallel): %.6f sec.\n", run.Elapsed.Seconds())
		return run, nil
	}, func(run Run) {
		out.printf("On %d threads: %.6f\n", run.Workers, run.Speedup)
	})
	if err != nil {
		return rep, harnessErrorf(opRunDGEMV, err)
	}

	return rep, out.err
}

// RunIntegrate integrates exp(-x²) over [A, B] with the midpoint rule and
// writes
//
//	Integration f(x) on [%.12f, %.12f], nsteps = %d
//	Result (serial): %.12f; error %.12f
//	Execution time (serial): %.6f
//	<blank>
//	Result (parallel): %.12f; error %.12f
//	Execution time (parallel %d threads): %.6f
//	Speedup: %.2f
//	<blank>
//
// with the parallel block repeated per worker count. The error is |result - √π|.
//
// Errors: ErrInvalidConfig, kernels.ErrInvalidSteps, kernels.ErrInvalidInterval,
// ctx errors, write errors.
func RunIntegrate(ctx context.Context, cfg IntegrateConfig, w io.Writer) (Report, error) {
	var rep Report
	if err := cfg.Sweep.validate(); err != nil {
		return rep, harnessErrorf(opRunIntegrate, err)
	}
	exact := math.Sqrt(math.Pi)
	out := &printer{w: w}
	out.printf("Integration f(x) on [%.12f, %.12f], nsteps = %d\n", cfg.A, cfg.B, cfg.Steps)

	start := time.Now()
	res, err := kernels.Midpoint(kernels.Gaussian, cfg.A, cfg.B, cfg.Steps)
	if err != nil {
		return rep, harnessErrorf(opRunIntegrate, err)
	}
	rep.Serial = Run{Elapsed: time.Since(start), Speedup: 1, Value: res}
	out.printf("Result (serial): %.12f; error %.12f\n", res, math.Abs(res-exact))
	out.printf("Execution time (serial): %.6f\n\n", rep.Serial.Elapsed.Seconds())

	rep.Parallel, err = sweep(ctx, cfg.Sweep, rep.Serial.Elapsed, func(p *parallel.Pool) (Run, error) {
		start := time.Now()
		res, err := kernels.MidpointParallel(p, kernels.Gaussian, cfg.A, cfg.B, cfg.Steps)
		if err != nil {
			return Run{}, err
		}
		run := Run{Elapsed: time.Since(start), Value: res}
		out.printf("Result (parallel): %.12f; error %.12f\n", res, math.Abs(res-exact))
		return run, nil
	}, func(run Run) {
		out.printf("Execution time (parallel %d threads): %.6f\n", run.Workers, run.Elapsed.Seconds())
		out.printf("Speedup: %.2f\n\n", run.Speedup)
	})
	if err != nil {
		return rep, harnessErrorf(opRunIntegrate, err)
	}

	return rep, out.err
}

// RunSinSum sums sin over one period of N points and writes
//
//	float64 sum of sinus in [0; 2pi]: %g
//	Elapsed time (serial): %.6f sec.
//
// (float32 with cfg.Float32), followed by an "Elapsed time (parallel)" and
// "On %d threads" pair per worker count, when any are given.
//
// Errors: ErrInvalidConfig, kernels.ErrInvalidSteps, ctx errors, write errors.
func RunSinSum(ctx context.Context, cfg SinSumConfig, w io.Writer) (Report, error) {
	if cfg.Float32 {
		return runSinSum[float32](ctx, cfg, "float32", w)
	}

	return runSinSum[float64](ctx, cfg, "float64", w)
}

func runSinSum[T kernels.Float](ctx context.Context, cfg SinSumConfig, name string, w io.Writer) (Report, error) {
	var rep Report
	if err := cfg.Sweep.validate(); err != nil {
		return rep, harnessErrorf(opRunSinSum, err)
	}
	out := &printer{w: w}

	start := time.Now()
	sum, err := kernels.SinSum[T](cfg.N)
	if err != nil {
		return rep, harnessErrorf(opRunSinSum, err)
	}
	rep.Serial = Run{Elapsed: time.Since(start), Speedup: 1, Value: float64(sum)}
	out.printf("%s sum of sinus in [0; 2pi]: %g\n", name, sum)
	out.printf("Elapsed time (serial): %.6f sec.\n", rep.Serial.Elapsed.Seconds())

	rep.Parallel, err = sweep(ctx, cfg.Sweep, rep.Serial.Elapsed, func(p *parallel.Pool) (Run, error) {
		start := time.Now()
		sum, err := kernels.SinSumParallel[T](p, cfg.N)
		if err != nil {
			return Run{}, err
		}
		run := Run{Elapsed: time.Since(start), Value: float64(sum)}
		out.printf("Elapsed time (parallel): %.6f sec.\n", run.Elapsed.Seconds())
		return run, nil
	}, func(run Run) {
		out.printf("On %d threads: %.6f\n", run.Workers, run.Speedup)
	})
	if err != nil {
		return rep, harnessErrorf(opRunSinSum, err)
	}

	return rep, out.err
}
