package scrabble

import (
	"context"
	"slices"

	"github.com/arielf-camacho/cold-stream/primitives"
	"github.com/arielf-camacho/cold-stream/sinks"
	"github.com/arielf-camacho/cold-stream/sources"
)

// Histogram maps a letter to the number of times it occurs in a word.
type Histogram map[byte]int

// Entry is a single letter count of a Histogram.
type Entry struct {
	Letter byte
	Count  int
}

// Entries returns the letter counts of the histogram ordered by letter.
func (h Histogram) Entries() []Entry {
	entries := make([]Entry, 0, len(h))
	for letter, count := range h {
		entries = append(entries, Entry{Letter: letter, Count: count})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return int(a.Letter) - int(b.Letter)
	})
	return entries
}

// HistogramCache memoizes, per word, the flow that computes the histogram of
// that word. The flows are built lazily on first request and are themselves
// cold: every collection folds the letters of the word again.
//
// A HistogramCache must be populated by a single goroutine at a time.
type HistogramCache struct {
	flows map[string]primitives.Flow[Histogram]
}

// NewHistogramCache returns an empty HistogramCache.
func NewHistogramCache() *HistogramCache {
	return &HistogramCache{flows: make(map[string]primitives.Flow[Histogram])}
}

// Flow returns the histogram flow of the word, building and caching it on the
// first request.
func (c *HistogramCache) Flow(word string) primitives.Flow[Histogram] {
	if flow, ok := c.flows[word]; ok {
		return flow
	}

	flow := sources.Producer(func(ctx context.Context, sink primitives.Sink[Histogram]) error {
		histogram, err := sinks.Fold(
			ctx,
			primitives.Flow[byte](sources.Chars(word).Build()),
			Histogram{},
			func(acc Histogram, letter byte) (Histogram, error) {
				acc[letter]++
				return acc, nil
			},
		)
		if err != nil {
			return err
		}
		return sink.Emit(ctx, histogram)
	}).Build()

	c.flows[word] = flow
	return flow
}

// Len returns how many words have a cached flow.
func (c *HistogramCache) Len() int {
	return len(c.flows)
}
