package sinks_test

import (
	"context"
	"testing"

	"github.com/arielf-camacho/cold-stream/primitives"
	"github.com/arielf-camacho/cold-stream/sinks"
	"github.com/arielf-camacho/cold-stream/sources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToList(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		items       []string
		destination []string
		expected    []string
	}{
		"nil-destination": {
			items:    []string{"a", "b", "a"},
			expected: []string{"a", "b", "a"},
		},
		"appends-to-destination": {
			items:       []string{"c", "d"},
			destination: []string{"a", "b"},
			expected:    []string{"a", "b", "c", "d"},
		},
		"empty-flow": {
			items:       nil,
			destination: []string{"a"},
			expected:    []string{"a"},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// When
			list, err := sinks.ToList(context.Background(), sources.Slice(c.items).Build(), c.destination)

			// Then
			assert.NoError(t, err)
			assert.Equal(t, c.expected, list)
		})
	}
}

func TestToSet(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		items       []string
		destination *sinks.OrderedSet[string]
		expected    []string
	}{
		"nil-destination-deduplicates-in-first-seen-order": {
			items:    []string{"b", "a", "b", "c", "a"},
			expected: []string{"b", "a", "c"},
		},
		"adds-to-destination": {
			items:       []string{"c", "a", "d"},
			destination: sinks.NewOrderedSet("a", "b"),
			expected:    []string{"a", "b", "c", "d"},
		},
		"empty-flow": {
			items:    nil,
			expected: []string{},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// When
			set, err := sinks.ToSet(context.Background(), sources.Slice(c.items).Build(), c.destination)

			// Then
			require.NoError(t, err)
			assert.Equal(t, c.expected, set.Values())
		})
	}
}

func TestMaterializers_FailAtomically(t *testing.T) {
	t.Parallel()

	// Given
	failing := sources.Producer(func(ctx context.Context, sink primitives.Sink[int]) error {
		if err := sink.Emit(ctx, 1); err != nil {
			return err
		}
		return assert.AnError
	}).Build()

	// When
	list, listErr := sinks.ToList(context.Background(), failing, nil)
	set, setErr := sinks.ToSet(context.Background(), failing, nil)

	// Then
	assert.ErrorIs(t, listErr, assert.AnError)
	assert.Nil(t, list)
	assert.ErrorIs(t, setErr, assert.AnError)
	assert.Nil(t, set)
}
