// SPDX-License-Identifier: MIT

package harness

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/katalvlaran/lvsolve/parallel"
)

// Run is one timed execution of a benchmark.
type Run struct {
	// Workers is the pool size; 0 marks the serial run.
	Workers int

	Elapsed time.Duration

	// Speedup is serial elapsed / this elapsed (1 for the serial run).
	Speedup float64

	// Value is the scalar result of a kernel (integral or sum).
	Value float64

	// Iterations and Residual are filled by RunIteration.
	Iterations int
	Residual   float64

	// X is the solution of a RunIteration run.
	X []float64
}

// Report collects the serial run and the parallel runs in sweep order.
type Report struct {
	Serial   Run
	Parallel []Run
}

// speedup returns serial/par, +Inf when par is below the clock resolution.
func speedup(serial, par time.Duration) float64 {
	if par <= 0 {
		return math.Inf(1)
	}

	return serial.Seconds() / par.Seconds()
}

// printer writes formatted lines and keeps the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// sweep runs body once per worker count, each on its own pool that is closed
// before the next count starts, and hands every completed Run to emit. The
// context is checked between runs.
func sweep(ctx context.Context, s Sweep, serial time.Duration, body func(p *parallel.Pool) (Run, error), emit func(Run)) ([]Run, error) {
	runs := make([]Run, 0, len(s.Workers))
	for _, workers := range s.Workers {
		if err := ctx.Err(); err != nil {
			return runs, err
		}
		p, err := s.pool(workers)
		if err != nil {
			return runs, err
		}
		run, err := body(p)
		p.Close()
		if err != nil {
			return runs, err
		}
		run.Workers = workers
		run.Speedup = speedup(serial, run.Elapsed)
		runs = append(runs, run)
		emit(run)
	}

	return runs, nil
}
