// SPDX-License-Identifier: MIT

package parallel

import (
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool reused across many parallel phases.
// Workers are spawned once by New and live until Close. For and Reduce may be
// called from several goroutines; Close waits for running phases to finish.
type Pool struct {
	cfg       Config
	workC     chan workItem
	closeOnce sync.Once
	closed    atomic.Bool

	// held shared by every phase and exclusively by Close
	life sync.RWMutex

	// last computed layout, reused while n stays the same
	mu    sync.Mutex
	lastN int
	last  []span
}

// workItem is one worker's share of a phase.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool configured by cfg and spawns its workers.
// Workers == 0 resolves to runtime.GOMAXPROCS(0).
//
// Errors:
//   - ErrInvalidConfig from cfg.Validate.
func New(cfg Config) (*Pool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()

	p := &Pool{
		cfg: cfg,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, cfg.Workers*2),
		lastN: -1,
	}
	for range cfg.Workers {
		go p.worker()
	}

	return p, nil
}

// worker is the main loop of each persistent goroutine.
func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// Workers returns the number of workers; a nil pool reports 1.
func (p *Pool) Workers() int {
	if p == nil {
		return 1
	}

	return p.cfg.Workers
}

// Config returns the normalized configuration of the pool.
func (p *Pool) Config() Config {
	if p == nil {
		return Config{Workers: 1, Schedule: Static}
	}

	return p.cfg
}

// Close shuts down the workers after pending work completes.
// Calling Close multiple times is safe; later loops run inline.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.closeOnce.Do(func() {
		p.life.Lock()
		defer p.life.Unlock()
		p.closed.Store(true)
		close(p.workC)
	})
}

// spans returns the cached layout for n, recomputing it when n changes.
func (p *Pool) spans(n int) []span {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.lastN != n {
		p.last = layout(n, p.cfg)
		p.lastN = n
	}

	return p.last
}

// run executes body(k, spans[k]) for every span and blocks until all return.
// Spans are assigned per the pool's schedule; inline when the pool is nil,
// closed, or only one worker would get work.
func (p *Pool) run(n int, body func(k int, s span)) {
	if n <= 0 {
		return
	}
	if !p.acquire() {
		body(0, span{0, n})
		return
	}
	defer p.life.RUnlock()

	p.runSpans(p.spans(n), body)
}

// acquire reports whether p is open; on true the caller holds p.life shared
// and must release it with RUnlock once its phase completed.
func (p *Pool) acquire() bool {
	if p == nil {
		return false
	}
	p.life.RLock()
	if p.closed.Load() {
		p.life.RUnlock()
		return false
	}

	return true
}

// runSpans dispatches a precomputed layout to the workers.
func (p *Pool) runSpans(spans []span, body func(k int, s span)) {
	workers := min(p.cfg.Workers, len(spans))
	if workers == 1 {
		for k, s := range spans {
			body(k, s)
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(workers)

	if p.cfg.Schedule == Static {
		// Span k belongs to worker k mod workers.
		for w := range workers {
			p.workC <- workItem{
				fn: func() {
					for k := w; k < len(spans); k += workers {
						body(k, spans[k])
					}
				},
				barrier: &wg,
			}
		}
		wg.Wait()
		return
	}

	// Dynamic and Guided: workers pull the next span from a shared counter.
	var next atomic.Int64
	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					k := int(next.Add(1)) - 1
					if k >= len(spans) {
						return
					}
					body(k, spans[k])
				}
			},
			barrier: &wg,
		}
	}
	wg.Wait()
}

// For executes fn over disjoint spans covering [0, n) and blocks until every
// span completed. fn receives (start, end) and must process [start, end);
// it must not call back into p.
func (p *Pool) For(n int, fn func(start, end int)) {
	p.run(n, func(_ int, s span) { fn(s.start, s.end) })
}
