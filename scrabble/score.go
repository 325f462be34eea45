package scrabble

import (
	"context"
	"fmt"

	"github.com/arielf-camacho/cold-stream/flows"
	"github.com/arielf-camacho/cold-stream/operators"
	"github.com/arielf-camacho/cold-stream/primitives"
	"github.com/arielf-camacho/cold-stream/sinks"
	"github.com/arielf-camacho/cold-stream/sources"
)

const (
	// MaxBlanks is the greatest blank cost a word may have to be playable.
	MaxBlanks = 2

	fullRackLength = 7
	fullRackBonus  = 50
	bonusWindow    = 3
)

// Scorer computes blank costs and scores of words as flows composed over the
// histograms of a HistogramCache.
type Scorer struct {
	tables Tables
	cache  *HistogramCache
}

// NewScorer creates a Scorer over the given tables and cache. A nil cache is
// replaced by a new one.
func NewScorer(tables Tables, cache *HistogramCache) *Scorer {
	if cache == nil {
		cache = NewHistogramCache()
	}
	return &Scorer{tables: tables, cache: cache}
}

// Histogram returns the letter histogram of the word.
func (s *Scorer) Histogram(ctx context.Context, word string) (Histogram, error) {
	return sinks.Single(ctx, s.cache.Flow(word))
}

// BlankCost returns how many letters of the word exceed the tile supply, that
// is the number of blank tiles needed to play it.
func (s *Scorer) BlankCost(ctx context.Context, word string) (int, error) {
	return sinks.Single(ctx, s.blankCostFlow(word))
}

// Score returns the score of the word: the points of its letters capped by
// the supply plus the best letter among its first and last three letters,
// doubled, plus a bonus when the word uses a full rack.
func (s *Scorer) Score(ctx context.Context, word string) (int, error) {
	return sinks.Single(ctx, s.scoreFlow(word))
}

func (s *Scorer) entries(word string) primitives.Flow[Entry] {
	return flows.FlatMap(s.cache.Flow(word), func(h Histogram) ([]Entry, error) {
		return h.Entries(), nil
	}).Build()
}

func (s *Scorer) blankCostFlow(word string) primitives.Flow[int] {
	return sources.Producer(func(ctx context.Context, sink primitives.Sink[int]) error {
		blanks := operators.Map(s.entries(word), func(e Entry) (int, error) {
			i, err := letterIndex(e.Letter)
			if err != nil {
				return 0, err
			}
			return max(0, e.Count-s.tables.Supply[i]), nil
		}).Build()

		cost, err := sinks.Sum[int](ctx, blanks)
		if err != nil {
			return fmt.Errorf("blank cost of %q: %w", word, err)
		}
		return sink.Emit(ctx, cost)
	}).Build()
}

func (s *Scorer) letterScoreFlow(word string) primitives.Flow[int] {
	return sources.Producer(func(ctx context.Context, sink primitives.Sink[int]) error {
		scores := operators.Map(s.entries(word), func(e Entry) (int, error) {
			i, err := letterIndex(e.Letter)
			if err != nil {
				return 0, err
			}
			return s.tables.Points[i] * min(e.Count, s.tables.Supply[i]), nil
		}).Build()

		score, err := sinks.Sum[int](ctx, scores)
		if err != nil {
			return fmt.Errorf("letter score of %q: %w", word, err)
		}
		return sink.Emit(ctx, score)
	}).Build()
}

func (s *Scorer) bonusFlow(word string) primitives.Flow[int] {
	return sources.Producer(func(ctx context.Context, sink primitives.Sink[int]) error {
		window := flows.Concat[byte](
			sources.Chars(word).Until(bonusWindow).Build(),
			sources.Chars(word).From(len(word)-bonusWindow).Build(),
		).Build()

		points := operators.Map(window, func(letter byte) (int, error) {
			i, err := letterIndex(letter)
			if err != nil {
				return 0, err
			}
			return s.tables.Points[i], nil
		}).Build()

		bonus, err := sinks.Max[int](ctx, points)
		if err != nil {
			return fmt.Errorf("bonus of %q: %w", word, err)
		}
		return sink.Emit(ctx, bonus)
	}).Build()
}

func (s *Scorer) scoreFlow(word string) primitives.Flow[int] {
	return sources.Producer(func(ctx context.Context, sink primitives.Sink[int]) error {
		letters, err := sinks.Single(ctx, s.letterScoreFlow(word))
		if err != nil {
			return err
		}
		bonus, err := sinks.Single(ctx, s.bonusFlow(word))
		if err != nil {
			return err
		}

		score := (letters + bonus) * 2
		if len(word) == fullRackLength {
			score += fullRackBonus
		}
		return sink.Emit(ctx, score)
	}).Build()
}
