package main

import (
	"context"
	"flag"
	"os"

	"github.com/katalvlaran/lvsolve/harness"
)

func cmdDGEMV(ctx context.Context, args []string) error {
	cfg := harness.DefaultDGEMVConfig()
	fs := flag.NewFlagSet("dgemv", flag.ExitOnError)
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
	_, err = harness.RunDGEMV(ctx, cfg, os.Stdout)

	return err
}

func cmdIntegrate(ctx context.Context, args []string) error {
	cfg := harness.DefaultIntegrateConfig()
	fs := flag.NewFlagSet("integrate", flag.ExitOnError)
	fs.IntVar(&cfg.Steps, "steps", cfg.Steps, "number of midpoint cells")
	fs.Float64Var(&cfg.A, "a", cfg.A, "lower bound")
	fs.Float64Var(&cfg.B, "b", cfg.B, "upper bound")
	var sf sweepFlags
	sf.register(fs, cfg.Workers)
	fs.Parse(args)
	if err := noArgs(fs); err != nil {
		return err
	}

	var err error
	if cfg.Sweep, err = sf.sweep(); err != nil {
		return err
	}
	_, err = harness.RunIntegrate(ctx, cfg, os.Stdout)

	return err
}

func cmdSinSum(ctx context.Context, args []string) error {
	cfg := harness.DefaultSinSumConfig()
	fs := flag.NewFlagSet("sinsum", flag.ExitOnError)
	fs.IntVar(&cfg.N, "n", cfg.N, "number of terms")
	fs.BoolVar(&cfg.Float32, "float32", false, "sum in float32 precision")
	var sf sweepFlags
	sf.register(fs, cfg.Workers)
	fs.Parse(args)
	if err := noArgs(fs); err != nil {
		return err
	}

	var err error
	if cfg.Sweep, err = sf.sweep(); err != nil {
		return err
	}
	_, err = harness.RunSinSum(ctx, cfg, os.Stdout)

	return err
}
