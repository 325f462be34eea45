package primitives

import "context"

// Sink represents any object that can receive the values of a Flow. Emit
// returns once the value has been fully processed downstream, so producers
// are naturally paced by their consumers. A non-nil error aborts the
// collection the value belongs to.
type Sink[T any] interface {
	Emit(ctx context.Context, value T) error
}

// SinkFunc adapts a plain function into a Sink.
type SinkFunc[T any] func(ctx context.Context, value T) error

// Emit calls f(ctx, value).
func (f SinkFunc[T]) Emit(ctx context.Context, value T) error {
	return f(ctx, value)
}
