// SPDX-License-Identifier: MIT

package mapping

import (
	"errors"
	"fmt"
)

// ErrUnknownIndex indicates that Unmap was asked for an index this mapping
// never allocated. For indices produced by a clustering algorithm it means
// the algorithm violated its contract.
var ErrUnknownIndex = errors.New("mapping: unknown index")

// IntegerMapping is a bidirectional association between values of type T
// and the dense index range [0, Size()).
//
//   - index holds value → index.
//   - objects holds index → value (position == index).
type IntegerMapping[T comparable] struct {
	index   map[T]int // forward table
	objects []T       // reverse table; len(objects) == len(index)
}

// NewIntegerMapping returns an empty mapping. capacity is a sizing hint
// (e.g. twice the number of comparisons); negative values are treated as 0.
// Complexity: O(capacity) allocation.
func NewIntegerMapping[T comparable](capacity int) *IntegerMapping[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &IntegerMapping[T]{
		index:   make(map[T]int, capacity),
		objects: make([]T, 0, capacity),
	}
}

// Map returns the index of obj, allocating the next unused index (the
// current Size) when obj has not been seen before.
// Complexity: amortized O(1).
func (m *IntegerMapping[T]) Map(obj T) int {
	if idx, ok := m.index[obj]; ok {
		return idx
	}
	idx := len(m.objects)
	m.index[obj] = idx
	m.objects = append(m.objects, obj)

	return idx
}

// Lookup returns the index of obj without allocating one.
func (m *IntegerMapping[T]) Lookup(obj T) (int, bool) {
	idx, ok := m.index[obj]
	return idx, ok
}

// Size returns the number of distinct values mapped so far.
func (m *IntegerMapping[T]) Size() int {
	return len(m.objects)
}

// Unmap returns the value previously associated with idx.
// Errors: ErrUnknownIndex (wrapped with the offending index) when idx is
// outside [0, Size()).
// Complexity: O(1).
func (m *IntegerMapping[T]) Unmap(idx int) (T, error) {
	if idx < 0 || idx >= len(m.objects) {
		var zero T
		return zero, fmt.Errorf("Unmap(%d): %w", idx, ErrUnknownIndex)
	}

	return m.objects[idx], nil
}

// Objects returns a copy of the reverse table in index order.
// Complexity: O(N).
func (m *IntegerMapping[T]) Objects() []T {
	out := make([]T, len(m.objects))
	copy(out, m.objects)

	return out
}
