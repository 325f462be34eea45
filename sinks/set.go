package sinks

import (
	"github.com/arielf-camacho/cold-stream/primitives"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// OrderedSet is a set that remembers the order in which its values were first
// added. It is not safe for concurrent use.
type OrderedSet[T comparable] struct {
	values *orderedmap.OrderedMap[T, struct{}]
}

// NewOrderedSet returns a set holding the given values, in order, without
// duplicates.
func NewOrderedSet[T comparable](values ...T) *OrderedSet[T] {
	set := &OrderedSet[T]{values: orderedmap.New[T, struct{}]()}
	for _, v := range values {
		set.Add(v)
	}
	return set
}

// Add adds the value and reports whether it was not already present.
func (s *OrderedSet[T]) Add(v T) bool {
	_, present := s.values.Set(v, struct{}{})
	return !present
}

// Contains reports whether the value is in the set.
func (s *OrderedSet[T]) Contains(v T) bool {
	_, present := s.values.Get(v)
	return present
}

// Len returns the number of values in the set.
func (s *OrderedSet[T]) Len() int {
	return s.values.Len()
}

// Values returns the values in insertion order.
func (s *OrderedSet[T]) Values() []T {
	values := make([]T, 0, s.values.Len())
	for pair := s.values.Oldest(); pair != nil; pair = pair.Next() {
		values = append(values, pair.Key)
	}
	return values
}

// Cursor returns a cursor positioned on the first value of the set. Adding
// values while the cursor is in use makes them visible to it.
func (s *OrderedSet[T]) Cursor() primitives.Cursor[T] {
	return &setCursor[T]{set: s}
}

type setCursor[T comparable] struct {
	set     *OrderedSet[T]
	next    *orderedmap.Pair[T, struct{}]
	started bool
}

func (c *setCursor[T]) Next() (T, bool) {
	if !c.started {
		c.next = c.set.values.Oldest()
		c.started = true
	}

	if c.next == nil {
		var zero T
		return zero, false
	}

	v := c.next.Key
	c.next = c.next.Next()
	return v, true
}
