package helpers

import (
	"context"

	"github.com/arielf-camacho/cold-stream/primitives"
)

// Collect collects the values of the given flow into a slice and returns it.
// If the collection fails, the values gathered so far are returned together
// with the error.
func Collect[T any](ctx context.Context, flow primitives.Flow[T]) ([]T, error) {
	var result []T
	err := flow.Collect(ctx, primitives.SinkFunc[T](func(_ context.Context, v T) error {
		result = append(result, v)
		return nil
	}))

	return result, err
}

// Drain collects the given flow discarding every value. It is useful when only
// the side effects of the producer matter.
func Drain[T any](ctx context.Context, flow primitives.Flow[T]) error {
	return flow.Collect(ctx, primitives.SinkFunc[T](func(context.Context, T) error {
		return nil
	}))
}

// IsRestartable reports whether collecting the flow a second time replays its
// values. Flows that don't implement primitives.Restartable are restartable.
func IsRestartable(flow any) bool {
	if r, ok := flow.(primitives.Restartable); ok {
		return r.Restartable()
	}
	return true
}
