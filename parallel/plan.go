// SPDX-License-Identifier: MIT

package parallel

// span is a half-open index range [start, end).
type span struct {
	start, end int
}

// layout computes the span sequence for n items under cfg.
// The result covers [0, n) exactly once, in increasing order.
//
// Complexity: O(len(spans)).
func layout(n int, cfg Config) []span {
	if n <= 0 {
		return nil
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	switch cfg.Schedule {
	case Guided:
		minChunk := max(cfg.Chunk, 1)
		spans := make([]span, 0, workers)
		for start := 0; start < n; {
			remaining := n - start
			size := max((remaining+workers-1)/workers, minChunk)
			end := min(start+size, n)
			spans = append(spans, span{start, end})
			start = end
		}

		return spans

	case Dynamic:
		return fixed(n, max(cfg.Chunk, 1))

	default: // Static
		if cfg.Chunk > 0 {
			return fixed(n, cfg.Chunk)
		}
		// Block partition: ensure all items are covered.
		return fixed(n, (n+workers-1)/workers)
	}
}

// fixed splits [0, n) into spans of size (the last may be shorter).
func fixed(n, size int) []span {
	spans := make([]span, 0, (n+size-1)/size)
	for start := 0; start < n; start += size {
		spans = append(spans, span{start, min(start+size, n)})
	}

	return spans
}
