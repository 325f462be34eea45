package sinks

import (
	"context"
	"fmt"
	"io"

	"github.com/arielf-camacho/cold-stream/primitives"
)

var _ = primitives.Sink[[]byte](&WriterSink[[]byte]{})

// WriterSink is a sink that writes every value it receives to an io.Writer,
// formatted by the format function. By default values are printed on their
// own line with fmt.
//
// Graphically, the WriterSink looks like this:
//
// -- 1 -- 2 -- 3 -- 4 -- 5 -- | -->
// -- WriterSink --
// -> 1 -- 2 -- 3 -- 4 -- 5 -- |
type WriterSink[T any] struct {
	writer io.Writer
	format func(T) []byte
}

// WriterSinkBuilder is a fluent builder for WriterSink.
type WriterSinkBuilder[T any] struct {
	writer io.Writer
	format func(T) []byte
}

// Writer creates a new WriterSinkBuilder for building a WriterSink.
func Writer[T any](w io.Writer) *WriterSinkBuilder[T] {
	return &WriterSinkBuilder[T]{
		writer: w,
		format: func(v T) []byte { return fmt.Appendln(nil, v) },
	}
}

// Format sets the function turning values into the bytes written.
func (b *WriterSinkBuilder[T]) Format(
	format func(T) []byte,
) *WriterSinkBuilder[T] {
	b.format = format
	return b
}

// Build creates the WriterSink.
func (b *WriterSinkBuilder[T]) Build() *WriterSink[T] {
	return &WriterSink[T]{
		writer: b.writer,
		format: b.format,
	}
}

// Emit writes the formatted value. A write error aborts the collection.
func (w *WriterSink[T]) Emit(_ context.Context, v T) error {
	if _, err := w.writer.Write(w.format(v)); err != nil {
		return fmt.Errorf("writing value: %w", err)
	}
	return nil
}
