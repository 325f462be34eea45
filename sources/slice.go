package sources

import (
	"context"

	"github.com/arielf-camacho/cold-stream/primitives"
)

var _ = primitives.Flow[any](&SliceSource[any]{})

// SliceSource is a source that emits the values of a given slice, in order,
// every time it is collected. If the context is cancelled, the SliceSource
// stops emitting and the collection fails with the context error.
//
// Graphically, the SliceSource looks like this:
//
//	SliceSource (1, 2, 3, 4, 5, ...)
//
// -- 1 -- 2 -- 3 -- 4 -- 5 -- | -->
type SliceSource[T any] struct {
	slice []T
}

// SliceSourceBuilder is a fluent builder for SliceSource.
type SliceSourceBuilder[T any] struct {
	slice []T
}

// Slice creates a new SliceSourceBuilder for building a SliceSource.
func Slice[T any](slice []T) *SliceSourceBuilder[T] {
	return &SliceSourceBuilder[T]{slice: slice}
}

// Build creates the SliceSource.
func (b *SliceSourceBuilder[T]) Build() *SliceSource[T] {
	return &SliceSource[T]{slice: b.slice}
}

// Collect emits every value of the slice into the sink.
func (s *SliceSource[T]) Collect(
	ctx context.Context,
	sink primitives.Sink[T],
) error {
	for _, v := range s.slice {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := sink.Emit(ctx, v); err != nil {
			return err
		}
	}

	return nil
}
