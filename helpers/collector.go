package helpers

import (
	"context"

	"github.com/arielf-camacho/cold-stream/primitives"
)

// Collector is a sink that records every value it receives, in order. It can
// optionally fail on a given value to exercise error propagation, and it
// counts how many times it has been emitted to after a failure, which must
// never happen for a well behaved producer.
type Collector[T any] struct {
	items  []T
	failOn func(T) error

	failed        bool
	emitsAfterErr int
}

var _ = primitives.Sink[any](&Collector[any]{})

// NewCollector returns a new, empty Collector.
func NewCollector[T any]() *Collector[T] {
	return &Collector[T]{}
}

// FailOn makes the Collector return the error produced by fn for the first
// value it is not nil for. The failing value is not recorded.
func (c *Collector[T]) FailOn(fn func(T) error) *Collector[T] {
	c.failOn = fn
	return c
}

// Emit records the value.
func (c *Collector[T]) Emit(_ context.Context, v T) error {
	if c.failed {
		c.emitsAfterErr++
	}

	if c.failOn != nil {
		if err := c.failOn(v); err != nil {
			c.failed = true
			return err
		}
	}

	c.items = append(c.items, v)
	return nil
}

// Items returns the items collected so far.
func (c *Collector[T]) Items() []T {
	return c.items
}

// EmitsAfterError returns how many values were emitted after the Collector
// had already failed.
func (c *Collector[T]) EmitsAfterError() int {
	return c.emitsAfterErr
}
