// Package parallel_test covers span layout, every schedule, and reductions.
package parallel_test

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/lvsolve/parallel"
	"github.com/stretchr/testify/require"
)

// allConfigs enumerates the schedules with default and explicit chunks.
func allConfigs(workers int) []parallel.Config {
	return []parallel.Config{
		{Workers: workers, Schedule: parallel.Static},
		{Workers: workers, Chunk: 3, Schedule: parallel.Static},
		{Workers: workers, Schedule: parallel.Dynamic},
		{Workers: workers, Chunk: 4, Schedule: parallel.Dynamic},
		{Workers: workers, Schedule: parallel.Guided},
		{Workers: workers, Chunk: 2, Schedule: parallel.Guided},
	}
}

func mustPool(t *testing.T, cfg parallel.Config) *parallel.Pool {
	t.Helper()
	p, err := parallel.New(cfg)
	require.NoError(t, err)
	t.Cleanup(p.Close)

	return p
}

// TestNewDefaultWorkers checks that Workers == 0 resolves to GOMAXPROCS.
func TestNewDefaultWorkers(t *testing.T) {
	p := mustPool(t, parallel.Config{})
	require.Equal(t, runtime.GOMAXPROCS(0), p.Workers())
	require.Equal(t, parallel.Static, p.Config().Schedule)
}

// TestNewInvalidConfig rejects negative fields and unknown schedules.
func TestNewInvalidConfig(t *testing.T) {
	for _, cfg := range []parallel.Config{
		{Workers: -1},
		{Workers: 2, Chunk: -4},
		{Workers: 2, Schedule: parallel.Schedule(42)},
	} {
		_, err := parallel.New(cfg)
		require.ErrorIs(t, err, parallel.ErrInvalidConfig, "%+v", cfg)
	}
}

// TestForVisitsEveryIndexOnce runs each schedule over awkward sizes and counts visits.
func TestForVisitsEveryIndexOnce(t *testing.T) {
	for _, workers := range []int{1, 2, 4, 7} {
		for _, cfg := range allConfigs(workers) {
			p := mustPool(t, cfg)
			for _, n := range []int{1, 5, 13, 100, 1001} {
				t.Run(fmt.Sprintf("%s/c=%d/w=%d/n=%d", cfg.Schedule, cfg.Chunk, workers, n), func(t *testing.T) {
					hits := make([]int32, n)
					var empty atomic.Int32
					p.For(n, func(start, end int) {
						if start >= end {
							empty.Add(1) // spans are never empty
						}
						for i := start; i < end; i++ {
							atomic.AddInt32(&hits[i], 1)
						}
					})
					require.Zero(t, empty.Load())
					for i, h := range hits {
						require.Equal(t, int32(1), h, "index %d", i)
					}
				})
			}
		}
	}
}

// TestForZeroLength never calls the body.
func TestForZeroLength(t *testing.T) {
	p := mustPool(t, parallel.Config{Workers: 4})
	called := false
	p.For(0, func(int, int) { called = true })
	require.False(t, called)
}

// TestNilAndClosedPoolRunInline executes the body once over the full range.
func TestNilAndClosedPoolRunInline(t *testing.T) {
	var nilPool *parallel.Pool
	require.Equal(t, 1, nilPool.Workers())

	closed, err := parallel.New(parallel.Config{Workers: 3})
	require.NoError(t, err)
	closed.Close()
	closed.Close() // idempotent

	for _, p := range []*parallel.Pool{nilPool, closed} {
		var spans [][2]int
		p.For(10, func(start, end int) { spans = append(spans, [2]int{start, end}) })
		require.Equal(t, [][2]int{{0, 10}}, spans)
	}
}

// TestStaticBlockPartition checks contiguous ⌈n/workers⌉ blocks.
func TestStaticBlockPartition(t *testing.T) {
	p := mustPool(t, parallel.Config{Workers: 4, Schedule: parallel.Static})

	got := make([][2]int, 0, 4)
	ch := make(chan [2]int, 4)
	p.For(10, func(start, end int) { ch <- [2]int{start, end} })
	close(ch)
	for s := range ch {
		got = append(got, s)
	}
	require.ElementsMatch(t, [][2]int{{0, 3}, {3, 6}, {6, 9}, {9, 10}}, got)
}

// TestReduceMatchesSerialSum compares a parallel sum of integers (exact in float64)
// against the closed form for every schedule.
func TestReduceMatchesSerialSum(t *testing.T) {
	const n = 10_000
	want := float64(n*(n-1)) / 2
	for _, cfg := range allConfigs(8) {
		p := mustPool(t, cfg)
		got := parallel.SumFloat64(p, n, func(start, end int) float64 {
			s := 0.0
			for i := start; i < end; i++ {
				s += float64(i)
			}
			return s
		})
		require.Equal(t, want, got, "%+v", cfg)
	}
}

// TestReduceDeterministic repeats a rounding-sensitive reduction and
// requires bitwise equal results across runs.
func TestReduceDeterministic(t *testing.T) {
	const n = 4097
	body := func(start, end int) float64 {
		s := 0.0
		for i := start; i < end; i++ {
			s += 1.0 / float64(i+1)
		}
		return s
	}
	for _, cfg := range allConfigs(6) {
		p := mustPool(t, cfg)
		first := parallel.SumFloat64(p, n, body)
		for range 20 {
			require.Equal(t, first, parallel.SumFloat64(p, n, body), "%+v", cfg)
		}
	}
}

// TestReducePair accumulates two sums in one pass.
func TestReducePair(t *testing.T) {
	p := mustPool(t, parallel.Config{Workers: 3, Schedule: parallel.Dynamic, Chunk: 2})
	got := parallel.Reduce(p, 9, parallel.Pair{}, func(start, end int) parallel.Pair {
		var acc parallel.Pair
		for i := start; i < end; i++ {
			acc.A += 1
			acc.B += float64(i)
		}
		return acc
	}, parallel.AddPair)
	require.Equal(t, parallel.Pair{A: 9, B: 36}, got)

	require.Equal(t, parallel.Pair{A: -1}, parallel.Reduce(p, 0, parallel.Pair{A: -1}, nil, parallel.AddPair))
}

// TestParseSchedule round-trips names and rejects unknown ones.
func TestParseSchedule(t *testing.T) {
	for _, s := range []parallel.Schedule{parallel.Static, parallel.Dynamic, parallel.Guided} {
		got, err := parallel.ParseSchedule(s.String())
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
	got, err := parallel.ParseSchedule("GUIDED")
	require.NoError(t, err)
	require.Equal(t, parallel.Guided, got)

	_, err = parallel.ParseSchedule("auto")
	require.ErrorIs(t, err, parallel.ErrInvalidConfig)
	require.Equal(t, "Schedule(9)", parallel.Schedule(9).String())
}

// TestCloseDuringPhases: Close racing For and Reduce never panics, and every
// phase still covers its whole range, on the workers or inline.
func TestCloseDuringPhases(t *testing.T) {
	const n, phases = 257, 200
	for round := range 20 {
		p, err := parallel.New(parallel.Config{Workers: 4, Schedule: parallel.Dynamic, Chunk: 8})
		require.NoError(t, err)

		var wg sync.WaitGroup
		var bad atomic.Int32
		for g := range 4 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range phases {
					if g%2 == 0 {
						var hits atomic.Int64
						p.For(n, func(start, end int) { hits.Add(int64(end - start)) })
						if hits.Load() != n {
							bad.Add(1)
						}
						continue
					}
					sum := parallel.SumFloat64(p, n, func(start, end int) float64 { return float64(end - start) })
					if sum != n {
						bad.Add(1)
					}
				}
			}()
		}
		if round%2 == 0 {
			runtime.Gosched()
		}
		p.Close()
		wg.Wait()
		require.Zero(t, bad.Load(), "round %d", round)
	}
}
