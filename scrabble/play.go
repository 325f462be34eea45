// Package scrabble ranks the words of a corpus by their scrabble score,
// computing histograms, blank costs and scores entirely with flows.
package scrabble

import (
	"context"
	"slices"

	"github.com/arielf-camacho/cold-stream/flows"
	"github.com/arielf-camacho/cold-stream/operators"
	"github.com/arielf-camacho/cold-stream/primitives"
	"github.com/arielf-camacho/cold-stream/sinks"
	"github.com/arielf-camacho/cold-stream/sources"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// DefaultTop is the number of ranks Play returns.
const DefaultTop = 3

// WordSet is the dictionary of playable words.
type WordSet interface {
	Contains(word string) bool
}

// Rank is a score together with the words achieving it, in the order they
// were found in the corpus.
type Rank struct {
	Score int      `json:"score"`
	Words []string `json:"words"`
}

// Player ranks corpora against a dictionary.
type Player struct {
	tables Tables
	top    int
	cache  *HistogramCache
}

// PlayerBuilder is a fluent builder for Player.
type PlayerBuilder struct {
	tables Tables
	top    int
	cache  *HistogramCache
}

// NewPlayer creates a new PlayerBuilder for building a Player over the given
// tables.
func NewPlayer(tables Tables) *PlayerBuilder {
	return &PlayerBuilder{
		tables: tables,
		top:    DefaultTop,
	}
}

// Top sets how many ranks a play returns.
func (b *PlayerBuilder) Top(top int) *PlayerBuilder {
	b.top = top
	return b
}

// Cache makes every play share the given cache. Without it, every play
// starts from an empty cache. A shared cache restricts the Player to a
// single goroutine.
func (b *PlayerBuilder) Cache(cache *HistogramCache) *PlayerBuilder {
	b.cache = cache
	return b
}

// Build validates the tables and creates the Player.
func (b *PlayerBuilder) Build() (*Player, error) {
	if err := b.tables.Validate(); err != nil {
		return nil, err
	}

	return &Player{
		tables: b.tables,
		top:    b.top,
		cache:  b.cache,
	}, nil
}

// Play ranks the corpus with the default number of ranks.
func Play(
	ctx context.Context,
	corpus []string,
	dictionary WordSet,
	tables Tables,
) ([]Rank, error) {
	player, err := NewPlayer(tables).Build()
	if err != nil {
		return nil, err
	}
	return player.Play(ctx, corpus, dictionary)
}

// Play keeps the words of the corpus that are in the dictionary and need at
// most MaxBlanks blank tiles, groups them by score and returns the best
// ranks, highest score first. Repeated corpus words count once.
func (p *Player) Play(
	ctx context.Context,
	corpus []string,
	dictionary WordSet,
) ([]Rank, error) {
	logger := zerolog.Ctx(ctx)

	scorer := NewScorer(p.tables, p.cache)
	scanned := 0

	words := operators.PassThrough[string](
		sources.Cursor(sinks.NewOrderedSet(corpus...).Cursor()).Build(),
	).OnEach(func(string) error {
		scanned++
		return nil
	}).Build()

	playable := operators.Filter[string](words, func(word string) (bool, error) {
		if !IsWord(word) || !dictionary.Contains(word) {
			return false, nil
		}
		blanks, err := scorer.BlankCost(ctx, word)
		if err != nil {
			return false, err
		}
		return blanks <= MaxBlanks, nil
	}).Build()

	scoring := sources.Producer(func(ctx context.Context, sink primitives.Sink[ranking]) error {
		r, err := sinks.Fold[string](ctx, playable, ranking{}, func(acc ranking, word string) (ranking, error) {
			score, err := scorer.Score(ctx, word)
			if err != nil {
				return nil, err
			}
			acc[score] = append(acc[score], word)
			return acc, nil
		})
		if err != nil {
			return err
		}
		return sink.Emit(ctx, r)
	}).Build()

	entries := flows.FlatMap(scoring, func(r ranking) ([]Rank, error) {
		return r.ranks(), nil
	}).Build()

	best, err := operators.Take[Rank](entries, p.top).Build()
	if err != nil {
		return nil, err
	}

	ranks, err := sinks.ToList[Rank](ctx, best, nil)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Int("scanned", scanned).
		Int("histograms", scorer.cache.Len()).
		Int("ranks", len(ranks)).
		Msg("corpus ranked")

	return ranks, nil
}

// ranking maps a score to the words achieving it.
type ranking map[int][]string

func (r ranking) ranks() []Rank {
	scores := lo.Keys(r)
	slices.Sort(scores)
	slices.Reverse(scores)

	return lo.Map(scores, func(score int, _ int) Rank {
		return Rank{Score: score, Words: r[score]}
	})
}
