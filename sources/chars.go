package sources

import (
	"context"

	"github.com/arielf-camacho/cold-stream/primitives"
)

var _ = primitives.Flow[byte](&CharsSource{})

// CharsSource is a source that emits the bytes of a string within the index
// range [from, until), in increasing order, reading them straight from the
// string. It keeps no state between collections, so every collection emits
// the same bytes.
//
// Graphically, the CharsSource looks like this:
//
//	CharsSource ("scrabble").From(2).Until(5)
//
// -- r -- a -- b -- | -->
type CharsSource struct {
	text  string
	from  int
	until int
}

// CharsSourceBuilder is a fluent builder for CharsSource.
type CharsSourceBuilder struct {
	text  string
	from  int
	until int
}

// Chars creates a new CharsSourceBuilder over the whole text.
func Chars(text string) *CharsSourceBuilder {
	return &CharsSourceBuilder{
		text:  text,
		until: len(text),
	}
}

// From sets the first index (inclusive) to emit. Negative values are treated
// as 0.
func (b *CharsSourceBuilder) From(index int) *CharsSourceBuilder {
	b.from = index
	return b
}

// Until sets the index (exclusive) where emission stops. It is clamped to the
// length of the text.
func (b *CharsSourceBuilder) Until(index int) *CharsSourceBuilder {
	b.until = index
	return b
}

// Build creates the CharsSource.
func (b *CharsSourceBuilder) Build() *CharsSource {
	until := min(b.until, len(b.text))
	from := min(max(b.from, 0), max(until, 0))

	return &CharsSource{
		text:  b.text,
		from:  from,
		until: until,
	}
}

// Collect emits the bytes of the range.
func (s *CharsSource) Collect(
	ctx context.Context,
	sink primitives.Sink[byte],
) error {
	for i := s.from; i < s.until; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := sink.Emit(ctx, s.text[i]); err != nil {
			return err
		}
	}

	return nil
}
