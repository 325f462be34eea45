package operators

import (
	"context"
	"errors"

	"github.com/arielf-camacho/cold-stream/helpers"
	"github.com/arielf-camacho/cold-stream/primitives"
)

var (
	_ = primitives.Flow[any](&TakeWhileOperator[any]{})
	_ = primitives.Restartable(&TakeWhileOperator[any]{})
)

// TakeWhileOperator is an operator that forwards values of its upstream while
// they satisfy the predicate. The first value failing the predicate is not
// forwarded and stops the upstream collection.
//
// Graphically, the TakeWhileOperator looks like this:
//
// -- 1 -- 2 -- 3 -- 4 -- 1 -- | -->
//
// -- TakeWhileOperator f(x) = x < 3 --
//
// -- 1 -- 2 -- | -->
type TakeWhileOperator[T any] struct {
	upstream     primitives.Flow[T]
	predicate    func(T) (bool, error)
	errorHandler func(error)
}

// TakeWhileBuilder is a fluent builder for TakeWhileOperator.
type TakeWhileBuilder[T any] struct {
	upstream     primitives.Flow[T]
	predicate    func(T) (bool, error)
	errorHandler func(error)
}

// TakeWhile creates a new TakeWhileBuilder for building a TakeWhileOperator.
func TakeWhile[T any](
	upstream primitives.Flow[T],
	predicate func(T) (bool, error),
) *TakeWhileBuilder[T] {
	if predicate == nil {
		panic("predicate cannot be nil")
	}

	return &TakeWhileBuilder[T]{
		upstream:  upstream,
		predicate: predicate,
	}
}

// ErrorHandler sets the error handler for the TakeWhileOperator. It is called
// with the predicate error before the error is returned.
func (b *TakeWhileBuilder[T]) ErrorHandler(
	handler func(error),
) *TakeWhileBuilder[T] {
	b.errorHandler = handler
	return b
}

// Build creates the TakeWhileOperator.
func (b *TakeWhileBuilder[T]) Build() *TakeWhileOperator[T] {
	return &TakeWhileOperator[T]{
		upstream:     b.upstream,
		predicate:    b.predicate,
		errorHandler: b.errorHandler,
	}
}

// Collect collects the upstream until the predicate first fails.
func (t *TakeWhileOperator[T]) Collect(
	ctx context.Context,
	sink primitives.Sink[T],
) error {
	stop := newTruncation("takeWhile")
	stopped := false

	err := t.upstream.Collect(ctx, primitives.SinkFunc[T](
		func(ctx context.Context, v T) error {
			if stopped {
				return stop
			}

			passes, err := t.predicate(v)
			if err != nil {
				if t.errorHandler != nil {
					t.errorHandler(err)
				}
				return err
			}
			if !passes {
				stopped = true
				return stop
			}

			return sink.Emit(ctx, v)
		},
	))
	if errors.Is(err, stop) {
		return nil
	}

	return err
}

// Restartable reports whether the upstream is restartable.
func (t *TakeWhileOperator[T]) Restartable() bool {
	return helpers.IsRestartable(t.upstream)
}
