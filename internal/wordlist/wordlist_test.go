package wordlist_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arielf-camacho/cold-stream/helpers"
	"github.com/arielf-camacho/cold-stream/internal/wordlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestLines(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		input    string
		expected []string
	}{
		"one-word-per-line": {
			input:    "cab\nbad\nzzz\n",
			expected: []string{"cab", "bad", "zzz"},
		},
		"trims-and-lower-cases": {
			input:    "  Cab \r\nBAD\n",
			expected: []string{"cab", "bad"},
		},
		"skips-blank-lines": {
			input:    "\n\ncab\n   \nbad",
			expected: []string{"cab", "bad"},
		},
		"keeps-duplicates": {
			input:    "cab\ncab\n",
			expected: []string{"cab", "cab"},
		},
		"empty-input": {
			input:    "",
			expected: nil,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// When
			collected, err := helpers.Collect(context.Background(), wordlist.Lines(strings.NewReader(c.input)))

			// Then
			assert.NoError(t, err)
			assert.Equal(t, c.expected, collected)
		})
	}
}

func TestLines_OneShot(t *testing.T) {
	t.Parallel()

	// Given
	lines := wordlist.Lines(strings.NewReader("cab\nbad\n"))
	restartableBeforeCollect := lines.Restartable()

	// When
	first, firstErr := helpers.Collect(context.Background(), lines)
	second, secondErr := helpers.Collect(context.Background(), lines)

	// Then
	assert.NoError(t, firstErr)
	assert.NoError(t, secondErr)
	assert.Equal(t, []string{"cab", "bad"}, first)
	assert.Empty(t, second)
	assert.False(t, restartableBeforeCollect)
	assert.False(t, lines.Restartable())
	assert.True(t, lines.Exhausted())
}

func TestLines_ReadFailure(t *testing.T) {
	t.Parallel()

	// When
	_, err := helpers.Collect(context.Background(), wordlist.Lines(failingReader{}))

	// Then
	assert.ErrorContains(t, err, "disk on fire")
}

func TestLoadSet(t *testing.T) {
	t.Parallel()

	// Given
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("cab\nBad\ncab\nzzz\n"), 0o600))

	// When
	set, err := wordlist.LoadSet(context.Background(), path)

	// Then
	require.NoError(t, err)
	assert.Equal(t, []string{"cab", "bad", "zzz"}, set.Values())
	assert.True(t, set.Contains("bad"))
}

func TestLoadSet_MissingFile(t *testing.T) {
	t.Parallel()

	// When
	set, err := wordlist.LoadSet(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))

	// Then
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Nil(t, set)
}
