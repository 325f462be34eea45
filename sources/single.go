package sources

import (
	"context"

	"github.com/arielf-camacho/cold-stream/primitives"
)

var _ = primitives.Flow[any](&SingleSource[any]{})

// SingleSource is a source that emits a single value, obtained by calling the
// given function on every collection.
//
// Graphically, the SingleSource looks like this:
//
// -- SingleSource f() = 1 ----------
//
// -- 1 -- | -->
type SingleSource[T any] struct {
	get          func() (T, error)
	errorHandler func(error)
}

// SingleSourceBuilder is a fluent builder for SingleSource.
type SingleSourceBuilder[T any] struct {
	errorHandler func(error)
	get          func() (T, error)
}

// Single creates a new SingleSourceBuilder for building a SingleSource.
func Single[T any](get func() (T, error)) *SingleSourceBuilder[T] {
	return &SingleSourceBuilder[T]{get: get}
}

// Just is a shortcut for a SingleSource emitting a constant value.
func Just[T any](value T) *SingleSource[T] {
	return Single(func() (T, error) { return value, nil }).Build()
}

// ErrorHandler sets the error handler for the SingleSource.
func (b *SingleSourceBuilder[T]) ErrorHandler(
	handler func(error),
) *SingleSourceBuilder[T] {
	b.errorHandler = handler
	return b
}

// Build creates the SingleSource.
func (b *SingleSourceBuilder[T]) Build() *SingleSource[T] {
	return &SingleSource[T]{
		get:          b.get,
		errorHandler: b.errorHandler,
	}
}

// Collect obtains the value and emits it.
func (s *SingleSource[T]) Collect(
	ctx context.Context,
	sink primitives.Sink[T],
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	value, err := s.get()
	if err != nil {
		if s.errorHandler != nil {
			s.errorHandler(err)
		}
		return err
	}

	return sink.Emit(ctx, value)
}
