// SPDX-License-Identifier: MIT
// Package: complabel/stack
//
// stack.go: array-backed LIFO with capacity doubling.
//
// Invariants:
//   • items[0:top] holds the live elements, items[top-1] is the top.
//   • len(items) is the capacity; it only grows, by growthFactor.
//   • grow copies items[0:top] in full before the new element is placed.

package stack

// Stack is a generic LIFO container. The zero value is not usable; call New.
// A Stack is not safe for concurrent use.
type Stack[T any] struct {
	items []T // backing array, len(items) == capacity
	top   int // number of live elements
}

// New returns an empty Stack with the configured initial capacity.
// Complexity: O(capacity) time and memory.
func New[T any](opts ...Option) *Stack[T] {
	cfg := config{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Stack[T]{items: make([]T, cfg.capacity)}
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return s.top == 0
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	return s.top
}

// Cap returns the current backing capacity.
func (s *Stack[T]) Cap() int {
	return len(s.items)
}

// Peek returns the top element without removing it.
// Returns ErrEmptyCollection if the stack is empty.
func (s *Stack[T]) Peek() (T, error) {
	if s.top == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}

	return s.items[s.top-1], nil
}

// Push places x on top of the stack, doubling the capacity first if full.
// Complexity: amortized O(1).
func (s *Stack[T]) Push(x T) {
	if s.top == len(s.items) {
		s.grow()
	}
	s.items[s.top] = x
	s.top++
}

// Pop removes and returns the top element.
// Returns ErrEmptyCollection if the stack is empty.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s.top == 0 {
		return zero, ErrEmptyCollection
	}
	s.top--
	x := s.items[s.top]
	s.items[s.top] = zero // release references held by T

	return x, nil
}

// Reset removes all elements and keeps the backing array for reuse.
func (s *Stack[T]) Reset() {
	var zero T
	for i := 0; i < s.top; i++ {
		s.items[i] = zero
	}
	s.top = 0
}

// grow doubles the backing array and copies every live element, the top included.
func (s *Stack[T]) grow() {
	next := make([]T, len(s.items)*growthFactor)
	for i := 0; i < s.top; i++ {
		next[i] = s.items[i]
	}
	s.items = next
}
