package flows

import (
	"context"

	"github.com/arielf-camacho/cold-stream/helpers"
	"github.com/arielf-camacho/cold-stream/primitives"
	"github.com/samber/lo"
)

var (
	_ = primitives.Flow[any](&ConcatFlow[any]{})
	_ = primitives.Restartable(&ConcatFlow[any]{})
)

// ConcatFlow is a flow that collects each of its sources to completion, one
// after the other, forwarding every value in order. A failure in any source
// aborts the whole collection; later sources are not collected.
//
// Graphically, the ConcatFlow looks like this:
//
// -- 1 -- 2 -- | -->
//
// -- 3 -- 4 -- | -->
//
// -- ConcatFlow --
//
// -- 1 -- 2 -- 3 -- 4 -- | -->
type ConcatFlow[T any] struct {
	sources []primitives.Flow[T]
}

// ConcatBuilder is a fluent builder for ConcatFlow.
type ConcatBuilder[T any] struct {
	sources []primitives.Flow[T]
}

// Concat creates a new ConcatBuilder for building a ConcatFlow that emits
// first and then second.
func Concat[T any](first, second primitives.Flow[T]) *ConcatBuilder[T] {
	return &ConcatBuilder[T]{
		sources: []primitives.Flow[T]{first, second},
	}
}

// Then appends another source, collected after the ones already added.
func (b *ConcatBuilder[T]) Then(next primitives.Flow[T]) *ConcatBuilder[T] {
	b.sources = append(b.sources, next)
	return b
}

// Build creates the ConcatFlow.
func (b *ConcatBuilder[T]) Build() *ConcatFlow[T] {
	return &ConcatFlow[T]{sources: b.sources}
}

// Collect collects every source in order into the sink.
func (c *ConcatFlow[T]) Collect(
	ctx context.Context,
	sink primitives.Sink[T],
) error {
	for _, source := range c.sources {
		if err := source.Collect(ctx, sink); err != nil {
			return err
		}
	}

	return nil
}

// Restartable reports whether every source is restartable.
func (c *ConcatFlow[T]) Restartable() bool {
	return lo.EveryBy(c.sources, func(source primitives.Flow[T]) bool {
		return helpers.IsRestartable(source)
	})
}
