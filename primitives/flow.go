package primitives

import "context"

// Flow represents a cold sequence of values of type T. A Flow is only a
// descriptor: nothing is produced until Collect is called, and every call to
// Collect starts the production from scratch, unless the flow closes over a
// one-shot source (see Restartable).
//
// Collect pushes every value into the given sink, one at a time, waiting for
// the sink to return before producing the next one. It returns nil when the
// flow is exhausted, or the first error raised either by the producer or by
// the sink.
type Flow[T any] interface {
	Collect(ctx context.Context, sink Sink[T]) error
}

// FlowFunc adapts a plain function into a Flow. The function is invoked on
// every collection.
type FlowFunc[T any] func(ctx context.Context, sink Sink[T]) error

// Collect calls f(ctx, sink).
func (f FlowFunc[T]) Collect(ctx context.Context, sink Sink[T]) error {
	return f(ctx, sink)
}
