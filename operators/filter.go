package operators

import (
	"context"

	"github.com/arielf-camacho/cold-stream/helpers"
	"github.com/arielf-camacho/cold-stream/primitives"
)

var (
	_ = primitives.Flow[int](&FilterOperator[int]{})
	_ = primitives.Restartable(&FilterOperator[int]{})
)

// FilterOperator is an operator that forwards only the upstream values for
// which the predicate returns true.
//
// Graphically, the FilterOperator looks like this:
//
// -- 1 -- 2 -- 3 -- 4 -- 5 -- | -->
//
// -- FilterOperator f(x) = x > 2 --
//
// ------------ 3 -- 4 -- 5 -- | -->
type FilterOperator[T any] struct {
	upstream     primitives.Flow[T]
	predicate    func(T) (bool, error)
	errorHandler func(error)
}

// FilterBuilder is a fluent builder for FilterOperator.
type FilterBuilder[T any] struct {
	upstream     primitives.Flow[T]
	predicate    func(T) (bool, error)
	errorHandler func(error)
}

// Filter creates a new FilterBuilder for building a FilterOperator.
func Filter[T any](
	upstream primitives.Flow[T],
	predicate func(T) (bool, error),
) *FilterBuilder[T] {
	if predicate == nil {
		panic("predicate cannot be nil")
	}

	return &FilterBuilder[T]{
		upstream:  upstream,
		predicate: predicate,
	}
}

// ErrorHandler sets the error handler for the FilterOperator.
func (b *FilterBuilder[T]) ErrorHandler(handler func(error)) *FilterBuilder[T] {
	b.errorHandler = handler
	return b
}

// Build creates the FilterOperator.
func (b *FilterBuilder[T]) Build() *FilterOperator[T] {
	return &FilterOperator[T]{
		upstream:     b.upstream,
		predicate:    b.predicate,
		errorHandler: b.errorHandler,
	}
}

// Collect collects the upstream, forwarding the values passing the predicate.
func (f *FilterOperator[T]) Collect(
	ctx context.Context,
	sink primitives.Sink[T],
) error {
	return f.upstream.Collect(ctx, primitives.SinkFunc[T](
		func(ctx context.Context, v T) error {
			passes, err := f.predicate(v)
			if err != nil {
				if f.errorHandler != nil {
					f.errorHandler(err)
				}
				return err
			}
			if !passes {
				return nil
			}

			return sink.Emit(ctx, v)
		},
	))
}

// Restartable reports whether the upstream is restartable.
func (f *FilterOperator[T]) Restartable() bool {
	return helpers.IsRestartable(f.upstream)
}
