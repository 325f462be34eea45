// Package wordlist reads line-delimited word lists as flows.
package wordlist

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arielf-camacho/cold-stream/operators"
	"github.com/arielf-camacho/cold-stream/primitives"
	"github.com/arielf-camacho/cold-stream/sinks"
	"github.com/arielf-camacho/cold-stream/sources"
	"github.com/rs/zerolog"
)

var (
	_ = primitives.Flow[string](&LineFlow{})
	_ = primitives.Restartable(&LineFlow{})
)

// LineFlow is a one-shot flow of the words of a reader, one per line,
// trimmed and lower-cased, skipping blank lines. Collecting it consumes the
// reader.
type LineFlow struct {
	scanner *bufio.Scanner
	source  *sources.CursorSource[string]
	words   primitives.Flow[string]
}

// Lines creates a LineFlow over the reader.
func Lines(r io.Reader) *LineFlow {
	scanner := bufio.NewScanner(r)
	source := sources.Cursor(sources.CursorFunc[string](func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		return scanner.Text(), true
	})).Build()

	normalized := operators.Map[string, string](source, func(line string) (string, error) {
		return strings.ToLower(strings.TrimSpace(line)), nil
	}).Build()

	words := operators.Filter[string](normalized, func(word string) (bool, error) {
		return word != "", nil
	}).Build()

	return &LineFlow{
		scanner: scanner,
		source:  source,
		words:   words,
	}
}

// Collect emits the remaining words of the reader.
func (l *LineFlow) Collect(ctx context.Context, sink primitives.Sink[string]) error {
	if err := l.words.Collect(ctx, sink); err != nil {
		return err
	}
	if err := l.scanner.Err(); err != nil {
		return fmt.Errorf("reading word list: %w", err)
	}
	return nil
}

// Restartable always returns false.
func (l *LineFlow) Restartable() bool {
	return false
}

// Exhausted reports whether the reader has been read to the end.
func (l *LineFlow) Exhausted() bool {
	return l.source.Exhausted()
}

// LoadSet reads the word list at path into an insertion-ordered set.
func LoadSet(ctx context.Context, path string) (*sinks.OrderedSet[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()

	set, err := sinks.ToSet[string](ctx, Lines(f), nil)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Int("words", set.Len()).Msg("word list loaded")
	return set, nil
}
