package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/katalvlaran/lvsolve/harness"
	"github.com/katalvlaran/lvsolve/iterative"
)

func cmdIterate(ctx context.Context, args []string) error {
	cfg := harness.DefaultIterationConfig()
	fs := flag.NewFlagSet("iterate", flag.ExitOnError)
	fs.Float64Var(&cfg.Tau, "tau", cfg.Tau, "step size")
	fs.Float64Var(&cfg.Epsilon, "eps", cfg.Epsilon, "relative residual threshold")
	fs.IntVar(&cfg.MaxIter, "max-iter", cfg.MaxIter, "update cap (0: none)")
	fs.BoolVar(&cfg.Verify, "verify", false, "check results against a direct solve")
	verbose := fs.Bool("v", false, "log solver progress")
	var sf sweepFlags
	sf.register(fs, cfg.Workers)
	fs.Parse(args)

	var err error
	if cfg.N, err = sizeArg(fs, cfg.N); err != nil {
		return err
	}
	if cfg.Sweep, err = sf.sweep(); err != nil {
		return err
	}
	if *verbose {
		cfg.OnIteration = progress(cfg.N)
	}
	_, err = harness.RunIteration(ctx, cfg, os.Stdout)

	return err
}

// progress logs every 1000th update and the final state.
func progress(n int) func(int, float64, iterative.State) error {
	return func(iter int, residual float64, state iterative.State) error {
		if iter%1000 == 0 || state == iterative.StateConverged || state == iterative.StateFailed {
			log.Printf("n=%d iter=%d residual=%.3e state=%s", n, iter, residual, state)
		}
		return nil
	}
}
