package sinks

import (
	"context"

	"github.com/arielf-camacho/cold-stream/primitives"
)

var _ = primitives.Sink[int](&ReduceSink[int, any]{})

// ReduceSink is a sink that reduces the values it receives to a single value
// using the given reduce function, threading the accumulator through every
// value in emission order. A ReduceSink serves a single collection.
//
// Graphically, the ReduceSink looks like this:
//
// -- 1 -- 2 -- 3 -- 4 -- 5 ------- | -->
//
// -- ReduceSink f(result, value, index) = result + value --
//
// -> ----------------------- 15 -- |
type ReduceSink[IN, OUT any] struct {
	errorHandler func(error, uint, IN, OUT)
	fn           func(result OUT, value IN, index uint) (OUT, error)

	index  uint
	result OUT
}

// ReduceSinkBuilder is a fluent builder for ReduceSink.
type ReduceSinkBuilder[IN, OUT any] struct {
	fn           func(result OUT, value IN, index uint) (OUT, error)
	initial      OUT
	errorHandler func(error, uint, IN, OUT)
}

// Reduce creates a new ReduceSinkBuilder for building a ReduceSink.
func Reduce[IN, OUT any](
	fn func(result OUT, value IN, index uint) (OUT, error),
	initial OUT,
) *ReduceSinkBuilder[IN, OUT] {
	if fn == nil {
		panic("fn cannot be nil")
	}

	return &ReduceSinkBuilder[IN, OUT]{
		fn:      fn,
		initial: initial,
	}
}

// ErrorHandler sets the error handler for the ReduceSink. It receives the
// error, the index and value that caused it and the accumulator before it.
func (b *ReduceSinkBuilder[IN, OUT]) ErrorHandler(
	handler func(error, uint, IN, OUT),
) *ReduceSinkBuilder[IN, OUT] {
	b.errorHandler = handler
	return b
}

// Build creates the ReduceSink.
func (b *ReduceSinkBuilder[IN, OUT]) Build() *ReduceSink[IN, OUT] {
	return &ReduceSink[IN, OUT]{
		fn:           b.fn,
		errorHandler: b.errorHandler,
		result:       b.initial,
	}
}

// Emit accumulates the value. On error, the accumulator is left untouched.
func (s *ReduceSink[IN, OUT]) Emit(_ context.Context, v IN) error {
	result, err := s.fn(s.result, v, s.index)
	if err != nil {
		if s.errorHandler != nil {
			s.errorHandler(err, s.index, v, s.result)
		}
		return err
	}

	s.result = result
	s.index++
	return nil
}

// Result returns the result (as of now) of the reduce operation.
func (s *ReduceSink[IN, OUT]) Result() OUT {
	return s.result
}

// Fold collects the flow once, threading seed through step for every value
// in emission order, and returns the final accumulator. If the collection
// fails, the zero value and the error are returned.
func Fold[T, R any](
	ctx context.Context,
	flow primitives.Flow[T],
	seed R,
	step func(acc R, value T) (R, error),
) (R, error) {
	sink := Reduce(func(acc R, value T, _ uint) (R, error) {
		return step(acc, value)
	}, seed).Build()

	if err := flow.Collect(ctx, sink); err != nil {
		var zero R
		return zero, err
	}

	return sink.Result(), nil
}
