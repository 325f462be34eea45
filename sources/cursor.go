package sources

import (
	"context"
	"sync/atomic"

	"github.com/arielf-camacho/cold-stream/primitives"
)

var (
	_ = primitives.Flow[any](&CursorSource[any]{})
	_ = primitives.Restartable(&CursorSource[any]{})
)

// CursorSource is a source that emits the values of an external, already
// positioned cursor. Collecting it advances the cursor, so the CursorSource is
// one-shot: once the cursor is exhausted, a later collection completes
// normally without emitting anything. If a collection stops early, for
// instance under a Take, the next collection resumes where the cursor was
// left.
//
// Graphically, the CursorSource looks like this:
//
// ---cursor -> 1 -- 2 -- 3 -- | -->
//
// -- first collection ------- 1 -- 2 -- 3 -- | -->
//
// -- second collection ------ | -->
type CursorSource[T any] struct {
	cursor    primitives.Cursor[T]
	exhausted atomic.Bool
}

// CursorSourceBuilder is a fluent builder for CursorSource.
type CursorSourceBuilder[T any] struct {
	cursor primitives.Cursor[T]
}

// Cursor creates a new CursorSourceBuilder for building a CursorSource.
func Cursor[T any](cursor primitives.Cursor[T]) *CursorSourceBuilder[T] {
	if cursor == nil {
		panic("cursor cannot be nil")
	}

	return &CursorSourceBuilder[T]{cursor: cursor}
}

// Build creates the CursorSource.
func (b *CursorSourceBuilder[T]) Build() *CursorSource[T] {
	return &CursorSource[T]{cursor: b.cursor}
}

// Collect emits the remaining values of the cursor.
func (s *CursorSource[T]) Collect(
	ctx context.Context,
	sink primitives.Sink[T],
) error {
	for !s.exhausted.Load() {
		if err := ctx.Err(); err != nil {
			return err
		}

		v, ok := s.cursor.Next()
		if !ok {
			s.exhausted.Store(true)
			return nil
		}

		if err := sink.Emit(ctx, v); err != nil {
			return err
		}
	}

	return nil
}

// Restartable always returns false.
func (s *CursorSource[T]) Restartable() bool {
	return false
}

// Exhausted reports whether the cursor has already reported its end.
func (s *CursorSource[T]) Exhausted() bool {
	return s.exhausted.Load()
}

// CursorFunc adapts a next function into a primitives.Cursor.
type CursorFunc[T any] func() (T, bool)

// Next calls f.
func (f CursorFunc[T]) Next() (T, bool) {
	return f()
}

// SliceCursor returns a cursor positioned at the start of the given slice.
func SliceCursor[T any](items []T) primitives.Cursor[T] {
	index := 0
	return CursorFunc[T](func() (T, bool) {
		if index >= len(items) {
			var zero T
			return zero, false
		}
		v := items[index]
		index++
		return v, true
	})
}
