package sinks

import (
	"context"

	"github.com/arielf-camacho/cold-stream/primitives"
)

var _ = primitives.Sink[any](&ChannelSink[any]{})

// ChannelSink is a sink that sends every value it receives into a channel.
// Each emission blocks until the value is received or the context is done.
//
// Graphically, the ChannelSink looks like this:
//
// -- 1 -- 2 -- 3 -- | -->
//
// -> channel <- 1 -- 2 -- 3
type ChannelSink[T any] struct {
	out chan<- T
}

// ChannelSinkBuilder is a fluent builder for ChannelSink.
type ChannelSinkBuilder[T any] struct {
	out chan<- T
}

// Channel creates a new ChannelSinkBuilder for building a ChannelSink.
func Channel[T any](out chan<- T) *ChannelSinkBuilder[T] {
	return &ChannelSinkBuilder[T]{out: out}
}

// Build creates the ChannelSink.
func (b *ChannelSinkBuilder[T]) Build() *ChannelSink[T] {
	return &ChannelSink[T]{out: b.out}
}

// Emit sends the value into the channel.
func (c *ChannelSink[T]) Emit(ctx context.Context, v T) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case c.out <- v:
		return nil
	}
}

// ToChannel collects the flow into the channel and closes the channel once
// the collection is over, whatever its outcome.
func ToChannel[T any](
	ctx context.Context,
	flow primitives.Flow[T],
	out chan<- T,
) error {
	defer close(out)
	return flow.Collect(ctx, Channel(out).Build())
}
