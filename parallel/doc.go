// Package parallel provides a persistent, reusable worker pool that executes
// flat data-parallel loops over an index range [0, n).
//
// What
//
//   - Pool spawns Config.Workers goroutines once and reuses them for every
//     phase; Close shuts them down.
//   - For runs a map-style body over disjoint index spans and blocks until
//     every span finished (the phase barrier).
//   - Reduce runs a body per span, keeps one partial result per span and
//     combines the partials in span order after the barrier.
//   - Schedule selects how spans are laid out and handed to workers:
//   - Static: chunk 0: contiguous blocks of ⌈n/workers⌉; chunk c: spans of c
//     dealt round-robin (span k → worker k mod workers).
//   - Dynamic: spans of c (default 1) taken from a shared atomic counter.
//   - Guided: decreasing spans max(⌈remaining/workers⌉, c), taken from a
//     shared atomic counter.
//
// Determinism
//
//	The span layout depends only on (n, Config). Because Reduce combines
//	partials by span index, not by completion order, its result is the same
//	for every run with the same inputs, under every schedule.
//
// Nil pool
//
//	A nil *Pool is valid and runs every loop inline on the caller's goroutine.
//	A closed pool does the same.
//
// Usage
//
//	pool, err := parallel.New(parallel.Config{Workers: 8})
//	if err != nil {
//		// ErrInvalidConfig
//	}
//	defer pool.Close()
//
//	pool.For(len(y), func(start, end int) {
//		for i := start; i < end; i++ {
//			y[i] = 2 * x[i]
//		}
//	})
//
// Bodies passed to For and Reduce must not call back into the same pool.
package parallel
