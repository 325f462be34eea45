package sinks

import (
	"context"

	"github.com/arielf-camacho/cold-stream/primitives"
)

// ToList collects the flow once, appending every value to destination in
// emission order, duplicates included. A nil destination starts a new slice.
// If the collection fails, nil and the error are returned.
func ToList[T any](
	ctx context.Context,
	flow primitives.Flow[T],
	destination []T,
) ([]T, error) {
	err := flow.Collect(ctx, primitives.SinkFunc[T](func(_ context.Context, v T) error {
		destination = append(destination, v)
		return nil
	}))
	if err != nil {
		return nil, err
	}

	return destination, nil
}

// ToSet collects the flow once, adding every value to destination. The set
// keeps the order in which values were first seen and drops duplicates. A nil
// destination starts a new set. If the collection fails, nil and the error
// are returned.
func ToSet[T comparable](
	ctx context.Context,
	flow primitives.Flow[T],
	destination *OrderedSet[T],
) (*OrderedSet[T], error) {
	if destination == nil {
		destination = NewOrderedSet[T]()
	}

	err := flow.Collect(ctx, primitives.SinkFunc[T](func(_ context.Context, v T) error {
		destination.Add(v)
		return nil
	}))
	if err != nil {
		return nil, err
	}

	return destination, nil
}
