package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_PrintsRanks(t *testing.T) {
	// Given
	dir := t.TempDir()
	dictionary := filepath.Join(dir, "dictionary.txt")
	corpus := filepath.Join(dir, "corpus.txt")
	require.NoError(t, os.WriteFile(dictionary, []byte("cab\nbad\nabc\n"), 0o600))
	require.NoError(t, os.WriteFile(corpus, []byte("bad\ncab\nzzz\nabc\n"), 0o600))

	var out bytes.Buffer

	// When
	err := run(context.Background(), []string{
		"--env-file", filepath.Join(dir, "missing.env"),
		"--dictionary", dictionary,
		"--corpus", corpus,
		"--log-level", "error",
	}, &out)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "20\tcab abc\n18\tbad\n", out.String())
}

func TestRun_MissingWordList(t *testing.T) {
	// Given
	dir := t.TempDir()

	// When
	err := run(context.Background(), []string{
		"--env-file", filepath.Join(dir, "missing.env"),
		"--dictionary", filepath.Join(dir, "nope.txt"),
		"--corpus", filepath.Join(dir, "nope.txt"),
		"--log-level", "error",
	}, &bytes.Buffer{})

	// Then
	assert.ErrorIs(t, err, os.ErrNotExist)
}
