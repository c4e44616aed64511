package parallel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sizes(spans []span) []int {
	out := make([]int, len(spans))
	for i, s := range spans {
		out[i] = s.end - s.start
	}

	return out
}

func TestLayoutGuidedDecreasing(t *testing.T) {
	got := sizes(layout(100, Config{Workers: 4, Schedule: Guided}))
	require.Equal(t, []int{25, 19, 14, 11, 8, 6, 5, 3, 3, 2, 1, 1, 1, 1}, got)

	// Chunk acts as a floor on the span size.
	got = sizes(layout(20, Config{Workers: 4, Chunk: 4, Schedule: Guided}))
	require.Equal(t, []int{5, 4, 4, 4, 3}, got)
}

func TestLayoutStaticAndDynamic(t *testing.T) {
	require.Equal(t, []int{3, 3, 3, 1}, sizes(layout(10, Config{Workers: 4})))
	require.Equal(t, []int{4, 4, 2}, sizes(layout(10, Config{Workers: 4, Chunk: 4})))
	require.Equal(t, []int{1, 1, 1}, sizes(layout(3, Config{Workers: 8, Schedule: Dynamic})))
	require.Nil(t, layout(0, Config{Workers: 2}))
}
