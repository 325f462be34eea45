package sources

import (
	"context"
	"sync/atomic"

	"github.com/arielf-camacho/cold-stream/primitives"
)

var (
	_ = primitives.Flow[any](&ChannelSource[any]{})
	_ = primitives.Restartable(&ChannelSource[any]{})
)

// ChannelSource is a source that emits the values received from a channel
// until it is closed or the context is cancelled. Like any channel consumer
// it is one-shot: values received by one collection are gone, and collecting
// it again after the channel was closed emits nothing.
//
// Graphically, the ChannelSource looks like this:
//
// ---channel -> 1 -- 2 -- 3 -- 4 -- 5 -- | -->
//
// -- ChannelSource --------------------- | -->
//
// ------------- 1 -- 2 -- 3 -- 4 -- 5 -- | -->
type ChannelSource[T any] struct {
	channel <-chan T
	closed  atomic.Bool
}

// ChannelSourceBuilder is a fluent builder for ChannelSource.
type ChannelSourceBuilder[T any] struct {
	channel <-chan T
}

// Channel creates a new ChannelSourceBuilder for building a ChannelSource.
func Channel[T any](channel <-chan T) *ChannelSourceBuilder[T] {
	return &ChannelSourceBuilder[T]{channel: channel}
}

// Build creates the ChannelSource.
func (b *ChannelSourceBuilder[T]) Build() *ChannelSource[T] {
	return &ChannelSource[T]{channel: b.channel}
}

// Collect emits the values received from the channel.
func (s *ChannelSource[T]) Collect(
	ctx context.Context,
	sink primitives.Sink[T],
) error {
	for !s.closed.Load() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case value, ok := <-s.channel:
			if !ok {
				s.closed.Store(true)
				return nil
			}

			if err := sink.Emit(ctx, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// Restartable always returns false.
func (s *ChannelSource[T]) Restartable() bool {
	return false
}

// Exhausted reports whether the channel has been observed closed.
func (s *ChannelSource[T]) Exhausted() bool {
	return s.closed.Load()
}
