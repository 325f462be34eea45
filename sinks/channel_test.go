package sinks_test

import (
	"context"
	"testing"

	"github.com/arielf-camacho/cold-stream/sinks"
	"github.com/arielf-camacho/cold-stream/sources"
	"github.com/stretchr/testify/assert"
)

func TestToChannel(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		items    []int
		expected []int
	}{
		"forwards-all-values": {
			items:    []int{1, 2, 3},
			expected: []int{1, 2, 3},
		},
		"empty-flow-closes-channel": {
			items:    nil,
			expected: nil,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Given
			out := make(chan int)
			errs := make(chan error, 1)

			// When
			go func() {
				errs <- sinks.ToChannel(context.Background(), sources.Slice(c.items).Build(), out)
			}()

			var received []int
			for v := range out {
				received = append(received, v)
			}

			// Then
			assert.NoError(t, <-errs)
			assert.Equal(t, c.expected, received)
		})
	}
}

func TestChannelSink_CancelledContext(t *testing.T) {
	t.Parallel()

	// Given
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sink := sinks.Channel(make(chan int)).Build()

	// When
	err := sink.Emit(ctx, 1)

	// Then
	assert.ErrorIs(t, err, context.Canceled)
}
