package sinks_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/arielf-camacho/cold-stream/sinks"
	"github.com/arielf-camacho/cold-stream/sources"
	"github.com/stretchr/testify/assert"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}

func TestWriterSink_Emit(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		format   func(int) []byte
		expected string
	}{
		"default-format": {
			expected: "1\n2\n3\n",
		},
		"custom-format": {
			format: func(v int) []byte {
				return fmt.Appendf(nil, "[%d]", v)
			},
			expected: "[1][2][3]",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Given
			var buf bytes.Buffer
			builder := sinks.Writer[int](&buf)
			if c.format != nil {
				builder = builder.Format(c.format)
			}

			// When
			err := sources.Slice([]int{1, 2, 3}).Build().Collect(context.Background(), builder.Build())

			// Then
			assert.NoError(t, err)
			assert.Equal(t, c.expected, buf.String())
		})
	}
}

func TestWriterSink_WriteFailure(t *testing.T) {
	t.Parallel()

	// Given
	sink := sinks.Writer[int](failingWriter{}).Build()

	// When
	err := sources.Slice([]int{1, 2}).Build().Collect(context.Background(), sink)

	// Then
	assert.ErrorIs(t, err, assert.AnError)
}
