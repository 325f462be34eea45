package sources

import (
	"context"
	"errors"

	"github.com/arielf-camacho/cold-stream/primitives"
)

var _ = primitives.Flow[any](&ProducerSource[any]{})

// ProducerSource is a source built from an arbitrary producer function. The
// function is run on every collection and may emit any number of values
// through the sink it is given. Every emission returns only once downstream
// has processed the value.
//
// The sink handed to the producer is guarded: once an emission fails, the
// failure is remembered and every later emission returns it again without
// reaching downstream, so a producer that ignores an emission error can't
// push values past a failure or a truncation.
//
// Graphically, the ProducerSource looks like this:
//
// -- ProducerSource f(sink) = emit(1); emit(2); emit(3) --
//
// -- 1 -- 2 -- 3 -- | -->
type ProducerSource[T any] struct {
	produce      func(ctx context.Context, sink primitives.Sink[T]) error
	errorHandler func(error)
}

// ProducerSourceBuilder is a fluent builder for ProducerSource.
type ProducerSourceBuilder[T any] struct {
	produce      func(ctx context.Context, sink primitives.Sink[T]) error
	errorHandler func(error)
}

// Producer creates a new ProducerSourceBuilder for building a ProducerSource.
func Producer[T any](
	produce func(ctx context.Context, sink primitives.Sink[T]) error,
) *ProducerSourceBuilder[T] {
	if produce == nil {
		panic("produce cannot be nil")
	}

	return &ProducerSourceBuilder[T]{produce: produce}
}

// ErrorHandler sets the error handler for the ProducerSource. It observes
// the failures raised by the producer before they are returned; errors
// returned by downstream emissions are not reported.
func (b *ProducerSourceBuilder[T]) ErrorHandler(
	handler func(error),
) *ProducerSourceBuilder[T] {
	b.errorHandler = handler
	return b
}

// Build creates the ProducerSource.
func (b *ProducerSourceBuilder[T]) Build() *ProducerSource[T] {
	return &ProducerSource[T]{
		produce:      b.produce,
		errorHandler: b.errorHandler,
	}
}

// Collect runs the producer, pushing its values into the sink.
func (s *ProducerSource[T]) Collect(
	ctx context.Context,
	sink primitives.Sink[T],
) error {
	guarded := &guardedSink[T]{downstream: sink}

	err := s.produce(ctx, guarded)
	if err == nil {
		err = guarded.err
	}
	if err == nil {
		return nil
	}

	// Downstream failures, truncations included, belong to downstream.
	if guarded.downstreamErr != nil && errors.Is(err, guarded.downstreamErr) {
		return err
	}

	if s.errorHandler != nil {
		s.errorHandler(err)
	}

	return err
}

type guardedSink[T any] struct {
	downstream    primitives.Sink[T]
	err           error
	downstreamErr error
}

func (g *guardedSink[T]) Emit(ctx context.Context, v T) error {
	if g.err != nil {
		return g.err
	}
	if err := ctx.Err(); err != nil {
		g.err = err
		return err
	}

	if err := g.downstream.Emit(ctx, v); err != nil {
		g.err = err
		g.downstreamErr = err
		return err
	}

	return nil
}
