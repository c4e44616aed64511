// SPDX-License-Identifier: MIT

package harness

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvsolve/iterative"
	"github.com/katalvlaran/lvsolve/parallel"
)

var (
	// SolverThreadCounts are the worker counts swept by the solver benchmark.
	SolverThreadCounts = []int{1, 2, 4, 7, 8, 16, 20, 40, 80, 160, 320}

	// KernelThreadCounts are the worker counts swept by DGEMV and the integral.
	KernelThreadCounts = []int{1, 2, 4, 7, 8, 16, 20, 40}
)

// Defaults of the CLI benchmarks.
const (
	DefaultIterationN = 5
	DefaultDGEMVN     = 20000
	DefaultSteps      = 40_000_000
	DefaultSinSumN    = 10_000_000

	// VerifyTolerance bounds the max-norm distance between an iterative
	// result and the direct solution when verification is enabled.
	VerifyTolerance = 1e-3
)

// Sweep lists the worker counts of the parallel runs and the schedule every
// pool is built with.
type Sweep struct {
	Workers  []int
	Schedule parallel.Schedule
	Chunk    int
}

// validate rejects non-positive worker counts and an invalid schedule.
func (s Sweep) validate() error {
	for _, w := range s.Workers {
		if w <= 0 {
			return fmt.Errorf("%w: worker count must be > 0 (%d)", ErrInvalidConfig, w)
		}
	}
	cfg := parallel.Config{Workers: 1, Chunk: s.Chunk, Schedule: s.Schedule}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

func (s Sweep) pool(workers int) (*parallel.Pool, error) {
	return parallel.New(parallel.Config{Workers: workers, Chunk: s.Chunk, Schedule: s.Schedule})
}

// IterationConfig configures RunIteration.
type IterationConfig struct {
	// N is the system size.
	N int

	Tau     float64
	Epsilon float64
	MaxIter int

	// Verify checks every run against iterative.ReferenceSolve.
	Verify bool

	// OnIteration, when set, is passed to every solve.
	OnIteration func(iter int, residual float64, state iterative.State) error

	Sweep
}

// DefaultIterationConfig returns n = 5, τ = 0.0005, ε = 1e-5 over SolverThreadCounts.
func DefaultIterationConfig() IterationConfig {
	return IterationConfig{
		N:       DefaultIterationN,
		Tau:     iterative.DefaultTau,
		Epsilon: iterative.DefaultEpsilon,
		MaxIter: iterative.DefaultMaxIter,
		Sweep:   Sweep{Workers: slices.Clone(SolverThreadCounts)},
	}
}

// DGEMVConfig configures RunDGEMV; the fixture is N×N.
type DGEMVConfig struct {
	N int
	Sweep
}

// DefaultDGEMVConfig returns N = 20000 over KernelThreadCounts.
func DefaultDGEMVConfig() DGEMVConfig {
	return DGEMVConfig{N: DefaultDGEMVN, Sweep: Sweep{Workers: slices.Clone(KernelThreadCounts)}}
}

// IntegrateConfig configures RunIntegrate over [A, B].
type IntegrateConfig struct {
	A, B  float64
	Steps int
	Sweep
}

// DefaultIntegrateConfig returns [-4, 4] with 40 000 000 cells over KernelThreadCounts.
func DefaultIntegrateConfig() IntegrateConfig {
	return IntegrateConfig{A: -4, B: 4, Steps: DefaultSteps, Sweep: Sweep{Workers: slices.Clone(KernelThreadCounts)}}
}

// SinSumConfig configures RunSinSum. An empty Workers list runs serially only.
type SinSumConfig struct {
	N       int
	Float32 bool
	Sweep
}

// DefaultSinSumConfig returns n = 10 000 000 in float64, serial only.
func DefaultSinSumConfig() SinSumConfig {
	return SinSumConfig{N: DefaultSinSumN}
}
