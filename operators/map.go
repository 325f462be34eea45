package operators

import (
	"context"

	"github.com/arielf-camacho/cold-stream/helpers"
	"github.com/arielf-camacho/cold-stream/primitives"
)

var (
	_ = primitives.Flow[int](&MapOperator[byte, int]{})
	_ = primitives.Restartable(&MapOperator[byte, int]{})
)

// MapOperator is an operator that maps the values of its upstream using the
// given transformation function.
//
// Graphically, the MapOperator looks like this:
//
// -- 1 -- 2 -- 3 -- 4 -- 5  -- | -->
//
// -- MapOperator f(x) = x*2 --
//
// -- 2 -- 4 -- 6 -- 8 -- 10 -- | -->
type MapOperator[IN any, OUT any] struct {
	upstream     primitives.Flow[IN]
	fn           func(IN) (OUT, error)
	errorHandler func(error)
}

// MapBuilder is a fluent builder for MapOperator.
type MapBuilder[IN any, OUT any] struct {
	upstream     primitives.Flow[IN]
	fn           func(IN) (OUT, error)
	errorHandler func(error)
}

// Map creates a new MapBuilder for building a MapOperator.
func Map[IN, OUT any](
	upstream primitives.Flow[IN],
	fn func(IN) (OUT, error),
) *MapBuilder[IN, OUT] {
	if fn == nil {
		panic("fn cannot be nil")
	}

	return &MapBuilder[IN, OUT]{
		upstream: upstream,
		fn:       fn,
	}
}

// ErrorHandler sets the error handler for the MapOperator.
func (b *MapBuilder[IN, OUT]) ErrorHandler(
	handler func(error),
) *MapBuilder[IN, OUT] {
	b.errorHandler = handler
	return b
}

// Build creates the MapOperator.
func (b *MapBuilder[IN, OUT]) Build() *MapOperator[IN, OUT] {
	return &MapOperator[IN, OUT]{
		upstream:     b.upstream,
		fn:           b.fn,
		errorHandler: b.errorHandler,
	}
}

// Collect collects the upstream, forwarding every transformed value.
func (m *MapOperator[IN, OUT]) Collect(
	ctx context.Context,
	sink primitives.Sink[OUT],
) error {
	return m.upstream.Collect(ctx, primitives.SinkFunc[IN](
		func(ctx context.Context, v IN) error {
			transformed, err := m.fn(v)
			if err != nil {
				if m.errorHandler != nil {
					m.errorHandler(err)
				}
				return err
			}

			return sink.Emit(ctx, transformed)
		},
	))
}

// Restartable reports whether the upstream is restartable.
func (m *MapOperator[IN, OUT]) Restartable() bool {
	return helpers.IsRestartable(m.upstream)
}
