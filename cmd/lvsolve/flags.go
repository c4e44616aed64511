package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvsolve/harness"
	"github.com/katalvlaran/lvsolve/parallel"
)

// sweepFlags registers the worker-sweep flags shared by every command.
type sweepFlags struct {
	workers  string
	schedule string
	chunk    int
}

func (s *sweepFlags) register(fs *flag.FlagSet, workers []int) {
	fs.StringVar(&s.workers, "workers", joinInts(workers), "comma-separated worker counts")
	fs.StringVar(&s.schedule, "schedule", parallel.Static.String(), "loop schedule: static, dynamic or guided")
	fs.IntVar(&s.chunk, "chunk", 0, "span size (0: schedule default)")
}

func (s *sweepFlags) sweep() (harness.Sweep, error) {
	workers, err := parseInts(s.workers)
	if err != nil {
		return harness.Sweep{}, fmt.Errorf("-workers: %w", err)
	}
	sched, err := parallel.ParseSchedule(s.schedule)
	if err != nil {
		return harness.Sweep{}, fmt.Errorf("-schedule: %w", err)
	}

	return harness.Sweep{Workers: workers, Schedule: sched, Chunk: s.chunk}, nil
}

// parseInts parses "1,2,4"; an empty string is an empty list.
func parseInts(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}

// sizeArg returns the optional positional N, or def when absent. Flags must
// precede N: flag parsing stops at the first positional argument, so anything
// after it is rejected rather than silently dropped.
func sizeArg(fs *flag.FlagSet, def int) (int, error) {
	if fs.NArg() == 0 {
		return def, nil
	}
	if fs.NArg() > 1 {
		return 0, fmt.Errorf("unexpected arguments after N: %q (flags go before N)", fs.Args()[1:])
	}
	n, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return 0, fmt.Errorf("N: %w", err)
	}

	return n, nil
}

// noArgs rejects positional arguments for commands that take none.
func noArgs(fs *flag.FlagSet) error {
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %q", fs.Args())
	}

	return nil
}
