package flows

import (
	"context"

	"github.com/arielf-camacho/cold-stream/helpers"
	"github.com/arielf-camacho/cold-stream/primitives"
)

var (
	_ = primitives.Flow[int](&FlatMapFlow[string, int]{})
	_ = primitives.Restartable(&FlatMapFlow[string, int]{})
)

// FlatMapFlow is a flow that expands every upstream value into an ordered,
// finite slice of results and forwards all of them, in order, before the next
// upstream value is produced. Results of different upstream values are never
// interleaved.
//
// Graphically, the FlatMapFlow looks like this:
//
// -- 1 ------- 2 ------------- 3 -- | -->
//
// -- FlatMapFlow f(x) = [x, x*10] --
//
// -- 1 -- 10 -- 2 -- 20 -- 3 -- 30 -- | -->
type FlatMapFlow[IN any, OUT any] struct {
	upstream     primitives.Flow[IN]
	fn           func(IN) ([]OUT, error)
	errorHandler func(error)
}

// FlatMapBuilder is a fluent builder for FlatMapFlow.
type FlatMapBuilder[IN any, OUT any] struct {
	upstream     primitives.Flow[IN]
	fn           func(IN) ([]OUT, error)
	errorHandler func(error)
}

// FlatMap creates a new FlatMapBuilder for building a FlatMapFlow.
func FlatMap[IN, OUT any](
	upstream primitives.Flow[IN],
	fn func(IN) ([]OUT, error),
) *FlatMapBuilder[IN, OUT] {
	if fn == nil {
		panic("fn cannot be nil")
	}

	return &FlatMapBuilder[IN, OUT]{
		upstream: upstream,
		fn:       fn,
	}
}

// ErrorHandler sets the error handler for the FlatMapFlow. It is called with
// the expansion error before the error is returned.
func (b *FlatMapBuilder[IN, OUT]) ErrorHandler(
	handler func(error),
) *FlatMapBuilder[IN, OUT] {
	b.errorHandler = handler
	return b
}

// Build creates the FlatMapFlow.
func (b *FlatMapBuilder[IN, OUT]) Build() *FlatMapFlow[IN, OUT] {
	return &FlatMapFlow[IN, OUT]{
		upstream:     b.upstream,
		fn:           b.fn,
		errorHandler: b.errorHandler,
	}
}

// Collect collects the upstream, forwarding the expansion of each value.
func (f *FlatMapFlow[IN, OUT]) Collect(
	ctx context.Context,
	sink primitives.Sink[OUT],
) error {
	return f.upstream.Collect(ctx, primitives.SinkFunc[IN](
		func(ctx context.Context, v IN) error {
			results, err := f.fn(v)
			if err != nil {
				if f.errorHandler != nil {
					f.errorHandler(err)
				}
				return err
			}

			for _, r := range results {
				if err := sink.Emit(ctx, r); err != nil {
					return err
				}
			}
			return nil
		},
	))
}

// Restartable reports whether the upstream is restartable.
func (f *FlatMapFlow[IN, OUT]) Restartable() bool {
	return helpers.IsRestartable(f.upstream)
}
