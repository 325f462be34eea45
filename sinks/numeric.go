package sinks

import (
	"cmp"
	"context"

	"github.com/arielf-camacho/cold-stream/primitives"
)

// Number is the set of types Sum can add.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Sum returns the sum of the values of the flow, 0 for an empty flow.
func Sum[T Number](ctx context.Context, flow primitives.Flow[T]) (T, error) {
	return Fold(ctx, flow, T(0), func(acc T, v T) (T, error) {
		return acc + v, nil
	})
}

// Max returns the greatest value of the flow, starting from the zero value.
// An empty flow yields the zero value, and so does a flow holding only values
// below it: use MaxOr when the flow may hold negative numbers.
func Max[T cmp.Ordered](ctx context.Context, flow primitives.Flow[T]) (T, error) {
	var zero T
	return MaxOr(ctx, flow, zero)
}

// MaxOr returns the greatest of identity and the values of the flow.
func MaxOr[T cmp.Ordered](
	ctx context.Context,
	flow primitives.Flow[T],
	identity T,
) (T, error) {
	return Fold(ctx, flow, identity, func(acc T, v T) (T, error) {
		return max(acc, v), nil
	})
}

// Count returns how many values the flow emits.
func Count[T any](ctx context.Context, flow primitives.Flow[T]) (int, error) {
	return Fold(ctx, flow, 0, func(acc int, _ T) (int, error) {
		return acc + 1, nil
	})
}
