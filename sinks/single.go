package sinks

import (
	"context"
	"errors"

	"github.com/arielf-camacho/cold-stream/primitives"
)

var (
	// ErrEmpty is returned by Single when the flow emits no value.
	ErrEmpty = errors.New("flow is empty")

	// ErrMoreThanOne is returned by Single when the flow emits a second value.
	ErrMoreThanOne = errors.New("flow has more than one element")
)

var _ = primitives.Sink[int](&SingleSink[int]{})

// SingleSink is a sink that gathers the expected SINGLE value from upstream.
// A second value is rejected with ErrMoreThanOne, which stops the upstream
// collection right there.
//
// Graphically, the SingleSink looks like this:
//
// -- 1 --------------------------- | -->
//
// -> 1 --------------------------- | -->
type SingleSink[T any] struct {
	result T
	has    bool
}

// SingleSinkBuilder is a fluent builder for SingleSink.
type SingleSinkBuilder[T any] struct{}

// NewSingle creates a new SingleSinkBuilder for building a SingleSink.
func NewSingle[T any]() *SingleSinkBuilder[T] {
	return &SingleSinkBuilder[T]{}
}

// Build creates the SingleSink.
func (b *SingleSinkBuilder[T]) Build() *SingleSink[T] {
	return &SingleSink[T]{}
}

// Emit stores the value, or fails if one was already stored.
func (s *SingleSink[T]) Emit(_ context.Context, v T) error {
	if s.has {
		return ErrMoreThanOne
	}

	s.result = v
	s.has = true
	return nil
}

// Result returns the value received and whether there was one.
func (s *SingleSink[T]) Result() (T, bool) {
	return s.result, s.has
}

// Single collects the flow and returns its only value.
func Single[T any](ctx context.Context, flow primitives.Flow[T]) (T, error) {
	var zero T

	sink := NewSingle[T]().Build()
	if err := flow.Collect(ctx, sink); err != nil {
		return zero, err
	}

	result, ok := sink.Result()
	if !ok {
		return zero, ErrEmpty
	}

	return result, nil
}
