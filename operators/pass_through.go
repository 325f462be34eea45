package operators

import (
	"context"

	"github.com/arielf-camacho/cold-stream/helpers"
	"github.com/arielf-camacho/cold-stream/primitives"
)

var (
	_ = primitives.Flow[int](&PassThroughOperator[int]{})
	_ = primitives.Restartable(&PassThroughOperator[int]{})
)

// PassThroughOperator is an operator that forwards every upstream value
// unchanged, calling an observer on each value before it is forwarded. An
// observer error aborts the collection.
type PassThroughOperator[T any] struct {
	upstream primitives.Flow[T]
	observe  func(T) error
}

// PassThroughBuilder is a fluent builder for PassThroughOperator.
type PassThroughBuilder[T any] struct {
	upstream primitives.Flow[T]
	observe  func(T) error
}

// PassThrough creates a new PassThroughBuilder for building a
// PassThroughOperator.
func PassThrough[T any](upstream primitives.Flow[T]) *PassThroughBuilder[T] {
	return &PassThroughBuilder[T]{
		upstream: upstream,
		observe:  func(T) error { return nil },
	}
}

// OnEach sets the observer called on each value.
func (b *PassThroughBuilder[T]) OnEach(
	observe func(T) error,
) *PassThroughBuilder[T] {
	b.observe = observe
	return b
}

// Build creates the PassThroughOperator.
func (b *PassThroughBuilder[T]) Build() *PassThroughOperator[T] {
	return &PassThroughOperator[T]{
		upstream: b.upstream,
		observe:  b.observe,
	}
}

// Collect collects the upstream, observing and forwarding each value.
func (p *PassThroughOperator[T]) Collect(
	ctx context.Context,
	sink primitives.Sink[T],
) error {
	return p.upstream.Collect(ctx, primitives.SinkFunc[T](
		func(ctx context.Context, v T) error {
			if err := p.observe(v); err != nil {
				return err
			}
			return sink.Emit(ctx, v)
		},
	))
}

// Restartable reports whether the upstream is restartable.
func (p *PassThroughOperator[T]) Restartable() bool {
	return helpers.IsRestartable(p.upstream)
}
