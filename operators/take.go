package operators

import (
	"context"
	"errors"
	"fmt"

	"github.com/arielf-camacho/cold-stream/helpers"
	"github.com/arielf-camacho/cold-stream/primitives"
)

var (
	_ = primitives.Flow[any](&TakeOperator[any]{})
	_ = primitives.Restartable(&TakeOperator[any]{})
)

// TakeOperator is an operator that forwards the first count values of its
// upstream and then stops the upstream collection. Downstream sees a normal
// completion after min(count, upstream length) values.
//
// Graphically, the TakeOperator looks like this:
//
// -- 1 -- 2 -- 3 -- 4 -- 5 -- | -->
//
// -- TakeOperator count = 3 --
//
// -- 1 -- 2 -- 3 -- | -->
type TakeOperator[T any] struct {
	upstream primitives.Flow[T]
	count    int
}

// TakeBuilder is a fluent builder for TakeOperator.
type TakeBuilder[T any] struct {
	upstream primitives.Flow[T]
	count    int
}

// Take creates a new TakeBuilder for building a TakeOperator over upstream.
func Take[T any](upstream primitives.Flow[T], count int) *TakeBuilder[T] {
	return &TakeBuilder[T]{
		upstream: upstream,
		count:    count,
	}
}

// Build creates the TakeOperator. It fails with primitives.ErrInvalidArgument
// when the count is not positive.
func (b *TakeBuilder[T]) Build() (*TakeOperator[T], error) {
	if b.count <= 0 {
		return nil, fmt.Errorf(
			"%w: take count should be positive, but had %d",
			primitives.ErrInvalidArgument, b.count,
		)
	}

	return &TakeOperator[T]{
		upstream: b.upstream,
		count:    b.count,
	}, nil
}

// Collect collects the upstream, forwarding at most count values.
func (t *TakeOperator[T]) Collect(
	ctx context.Context,
	sink primitives.Sink[T],
) error {
	stop := newTruncation("take")
	consumed := 0

	err := t.upstream.Collect(ctx, primitives.SinkFunc[T](
		func(ctx context.Context, v T) error {
			if consumed >= t.count {
				return stop
			}

			if err := sink.Emit(ctx, v); err != nil {
				return err
			}

			consumed++
			if consumed == t.count {
				return stop
			}
			return nil
		},
	))
	if errors.Is(err, stop) {
		return nil
	}

	return err
}

// Restartable reports whether the upstream is restartable.
func (t *TakeOperator[T]) Restartable() bool {
	return helpers.IsRestartable(t.upstream)
}
