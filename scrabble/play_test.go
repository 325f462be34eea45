package scrabble_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/arielf-camacho/cold-stream/primitives"
	"github.com/arielf-camacho/cold-stream/scrabble"
	"github.com/arielf-camacho/cold-stream/sinks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlay(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		corpus     []string
		dictionary []string
		expected   []scrabble.Rank
	}{
		"excludes-words-missing-from-dictionary": {
			corpus:     []string{"cab", "bad", "zzz"},
			dictionary: []string{"cab", "bad"},
			expected: []scrabble.Rank{
				{Score: 20, Words: []string{"cab"}},
				{Score: 18, Words: []string{"bad"}},
			},
		},
		"ties-share-a-rank-in-corpus-order": {
			corpus:     []string{"bad", "cab", "abc"},
			dictionary: []string{"abc", "bad", "cab"},
			expected: []scrabble.Rank{
				{Score: 20, Words: []string{"cab", "abc"}},
				{Score: 18, Words: []string{"bad"}},
			},
		},
		"excludes-words-needing-too-many-blanks": {
			corpus:     []string{"zzzz", "zzz", "cab"},
			dictionary: []string{"zzzz", "zzz", "cab"},
			expected: []scrabble.Rank{
				{Score: 40, Words: []string{"zzz"}},
				{Score: 20, Words: []string{"cab"}},
			},
		},
		"keeps-top-three": {
			corpus:     []string{"bad", "quiz", "cab", "abandon", "zzz"},
			dictionary: []string{"bad", "quiz", "cab", "abandon", "zzz"},
			expected: []scrabble.Rank{
				{Score: 76, Words: []string{"abandon"}},
				{Score: 64, Words: []string{"quiz"}},
				{Score: 40, Words: []string{"zzz"}},
			},
		},
		"skips-words-with-other-characters": {
			corpus:     []string{"o'er", "Cab", "cab"},
			dictionary: []string{"o'er", "Cab", "cab"},
			expected: []scrabble.Rank{
				{Score: 20, Words: []string{"cab"}},
			},
		},
		"repeated-corpus-words-count-once": {
			corpus:     []string{"cab", "cab", "bad"},
			dictionary: []string{"cab", "bad"},
			expected: []scrabble.Rank{
				{Score: 20, Words: []string{"cab"}},
				{Score: 18, Words: []string{"bad"}},
			},
		},
		"empty-corpus": {
			corpus:     nil,
			dictionary: []string{"cab"},
			expected:   nil,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Given
			dictionary := sinks.NewOrderedSet(c.dictionary...)

			// When
			ranks, err := scrabble.Play(context.Background(), c.corpus, dictionary, scrabble.DefaultTables)

			// Then
			require.NoError(t, err)
			assert.Equal(t, c.expected, ranks)
		})
	}
}

func TestPlayer_Top(t *testing.T) {
	t.Parallel()

	corpus := []string{"bad", "quiz", "cab", "abandon", "zzz"}
	dictionary := sinks.NewOrderedSet(corpus...)

	cases := map[string]struct {
		top      int
		expected []int
		err      error
	}{
		"one":           {top: 1, expected: []int{76}},
		"more-than-all": {top: 10, expected: []int{76, 64, 40, 20, 18}},
		"zero":          {top: 0, err: primitives.ErrInvalidArgument},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Given
			player, err := scrabble.NewPlayer(scrabble.DefaultTables).Top(c.top).Build()
			require.NoError(t, err)

			// When
			ranks, err := player.Play(context.Background(), corpus, dictionary)

			// Then
			assert.ErrorIs(t, err, c.err)
			scores := make([]int, 0, len(ranks))
			for _, rank := range ranks {
				scores = append(scores, rank.Score)
			}
			if c.err == nil {
				assert.Equal(t, c.expected, scores)
			}
		})
	}
}

func TestPlayer_SharedCache(t *testing.T) {
	t.Parallel()

	// Given
	cache := scrabble.NewHistogramCache()
	player, err := scrabble.NewPlayer(scrabble.DefaultTables).Cache(cache).Build()
	require.NoError(t, err)
	dictionary := sinks.NewOrderedSet("cab", "bad")

	// When
	first, firstErr := player.Play(context.Background(), []string{"cab", "bad", "zzz"}, dictionary)
	second, secondErr := player.Play(context.Background(), []string{"cab", "bad", "zzz"}, dictionary)

	// Then
	require.NoError(t, firstErr)
	require.NoError(t, secondErr)
	assert.Equal(t, first, second)
	assert.Equal(t, 2, cache.Len())
}

func TestNewPlayer_RejectsInvalidTables(t *testing.T) {
	t.Parallel()

	// Given
	tables := scrabble.DefaultTables
	tables.Supply[0] = -1

	// When
	player, err := scrabble.NewPlayer(tables).Build()
	ranks, playErr := scrabble.Play(context.Background(), []string{"cab"}, sinks.NewOrderedSet("cab"), tables)

	// Then
	assert.ErrorIs(t, err, scrabble.ErrInvalidTables)
	assert.Nil(t, player)
	assert.ErrorIs(t, playErr, scrabble.ErrInvalidTables)
	assert.Nil(t, ranks)
}

func TestPlay_CancelledContext(t *testing.T) {
	t.Parallel()

	// Given
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// When
	ranks, err := scrabble.Play(ctx, []string{"cab"}, sinks.NewOrderedSet("cab"), scrabble.DefaultTables)

	// Then
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, ranks)
}

func TestPlay_LogsThroughContextLogger(t *testing.T) {
	t.Parallel()

	// Given
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	ctx := logger.WithContext(context.Background())

	// When
	_, err := scrabble.Play(ctx, []string{"cab", "bad"}, sinks.NewOrderedSet("cab"), scrabble.DefaultTables)

	// Then
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"message":"corpus ranked"`)
	assert.Contains(t, buf.String(), `"scanned":2`)
}

func BenchmarkPlay(b *testing.B) {
	corpus := make([]string, 0, 5000)
	for i := range 5000 {
		corpus = append(corpus, benchmarkWord(i))
	}
	dictionary := sinks.NewOrderedSet(corpus[:4000]...)
	ctx := context.Background()

	b.ResetTimer()
	for b.Loop() {
		if _, err := scrabble.Play(ctx, corpus, dictionary, scrabble.DefaultTables); err != nil {
			b.Fatal(err)
		}
	}
}

func benchmarkWord(i int) string {
	const letters = "etaoinshrdlucmfwypvbgkqjxz"
	word := []byte(fmt.Sprintf("%d", i))
	for j := range word {
		word[j] = letters[(int(word[j]-'0')*7+j*3+i)%len(letters)]
	}
	return string(word)
}
