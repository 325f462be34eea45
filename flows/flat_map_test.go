package flows_test

import (
	"context"
	"testing"

	"github.com/arielf-camacho/cold-stream/flows"
	"github.com/arielf-camacho/cold-stream/helpers"
	"github.com/arielf-camacho/cold-stream/operators"
	"github.com/arielf-camacho/cold-stream/sources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatMapFlow_Collect(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		items    []int
		fn       func(int) ([]int, error)
		expected []int
	}{
		"expands-in-order": {
			items:    []int{1, 2, 3},
			fn:       func(x int) ([]int, error) { return []int{x, x * 10}, nil },
			expected: []int{1, 10, 2, 20, 3, 30},
		},
		"empty-expansions-are-skipped": {
			items: []int{1, 2, 3},
			fn: func(x int) ([]int, error) {
				if x == 2 {
					return nil, nil
				}
				return []int{x}, nil
			},
			expected: []int{1, 3},
		},
		"varying-lengths": {
			items: []int{0, 1, 2, 3},
			fn: func(x int) ([]int, error) {
				out := make([]int, x)
				for i := range out {
					out[i] = x
				}
				return out, nil
			},
			expected: []int{1, 2, 2, 3, 3, 3},
		},
		"empty-upstream": {
			items:    nil,
			fn:       func(x int) ([]int, error) { return []int{x}, nil },
			expected: nil,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Given
			flatMap := flows.FlatMap(sources.Slice(c.items).Build(), c.fn).Build()

			// When
			collected, err := helpers.Collect(context.Background(), flatMap)

			// Then
			assert.NoError(t, err)
			assert.Equal(t, c.expected, collected)
		})
	}
}

func TestFlatMapFlow_ErrorHandling(t *testing.T) {
	t.Parallel()

	// Given
	var handled error
	flatMap := flows.FlatMap(sources.Slice([]int{1, 2, 3}).Build(), func(x int) ([]string, error) {
		if x == 2 {
			return nil, assert.AnError
		}
		return []string{"a", "b"}, nil
	}).ErrorHandler(func(err error) { handled = err }).Build()

	// When
	collected, err := helpers.Collect(context.Background(), flatMap)

	// Then
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, assert.AnError, handled)
	assert.Equal(t, []string{"a", "b"}, collected)
}

func TestFlatMapFlow_TruncatedInsideExpansion(t *testing.T) {
	t.Parallel()

	// Given
	expanded := 0
	flatMap := flows.FlatMap(sources.Slice([]int{1, 2, 3}).Build(), func(x int) ([]int, error) {
		expanded++
		return []int{x, x, x}, nil
	}).Build()
	take, err := operators.Take[int](flatMap, 4).Build()
	require.NoError(t, err)

	// When
	collected, err := helpers.Collect(context.Background(), take)

	// Then
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1, 2}, collected)
	assert.Equal(t, 2, expanded)
}

func TestFlatMap_PanicOnNilFunction(t *testing.T) {
	t.Parallel()

	// Given & When & Then
	assert.Panics(t, func() {
		flows.FlatMap[int, int](sources.Slice([]int{1}).Build(), nil)
	})
}
