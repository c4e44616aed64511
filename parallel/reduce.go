// SPDX-License-Identifier: MIT

package parallel

import "golang.org/x/sys/cpu"

// slot holds one span's partial on its own cache line.
type slot[T any] struct {
	v T
	_ cpu.CacheLinePad
}

// Reduce evaluates body over disjoint spans covering [0, n), keeps one
// partial per span and folds them as combine(...combine(zero, p0)..., pk) in
// span order once every span finished. No locks or atomics touch the
// partials in the hot loop.
//
// Returns zero when n <= 0.
//
// Complexity: Time O(n/workers + spans), Space O(spans).
func Reduce[T any](p *Pool, n int, zero T, body func(start, end int) T, combine func(acc, part T) T) T {
	if n <= 0 {
		return zero
	}
	if !p.acquire() {
		return combine(zero, body(0, n))
	}
	defer p.life.RUnlock()

	spans := p.spans(n)
	partials := make([]slot[T], len(spans))
	p.runSpans(spans, func(k int, s span) { partials[k].v = body(s.start, s.end) })

	acc := zero
	for k := range partials {
		acc = combine(acc, partials[k].v)
	}

	return acc
}

// Pair is a two-component accumulator for reductions that track two sums in
// a single pass.
type Pair struct {
	A, B float64
}

// AddPair combines two Pair partials component-wise.
func AddPair(acc, part Pair) Pair {
	return Pair{A: acc.A + part.A, B: acc.B + part.B}
}

// SumFloat64 reduces body's per-span float64 partials by addition.
func SumFloat64(p *Pool, n int, body func(start, end int) float64) float64 {
	return Reduce(p, n, 0, body, func(acc, part float64) float64 { return acc + part })
}
