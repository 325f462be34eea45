package sources

import (
	"context"
	"iter"

	"github.com/arielf-camacho/cold-stream/primitives"
)

var _ = primitives.Flow[any](&SeqSource[any]{})

// SeqSource is a source that emits the values of a Go iterator. Ranging over
// an iter.Seq calls its function again, so a SeqSource is restartable as long
// as the iterator itself is.
type SeqSource[T any] struct {
	seq iter.Seq[T]
}

// Seq creates a SeqSource from the given iterator.
func Seq[T any](seq iter.Seq[T]) *SeqSource[T] {
	return &SeqSource[T]{seq: seq}
}

// Collect emits the values of the iterator, stopping it on the first error.
func (s *SeqSource[T]) Collect(
	ctx context.Context,
	sink primitives.Sink[T],
) error {
	var err error

	for v := range s.seq {
		if err = ctx.Err(); err != nil {
			break
		}
		if err = sink.Emit(ctx, v); err != nil {
			break
		}
	}

	return err
}
