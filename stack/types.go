// SPDX-License-Identifier: MIT
// Package: complabel/stack
//
// types.go: sentinel errors, defaults and functional options.
//
// Contract:
//   • Option constructors validate and panic on meaningless input.
//   • Stack methods never panic; empty reads return ErrEmptyCollection.

package stack

import "errors"

// ErrEmptyCollection is returned by Peek and Pop when the stack holds no elements.
var ErrEmptyCollection = errors.New("stack: collection is empty")

// DefaultCapacity is the initial backing capacity when WithCapacity is not given.
const DefaultCapacity = 10

// growthFactor multiplies the capacity each time the backing array is full.
const growthFactor = 2

// Option customizes a Stack at construction time.
type Option func(*config)

type config struct {
	capacity int
}

// WithCapacity sets the initial backing capacity.
// Panics if n < 1: a zero-capacity array could never double.
func WithCapacity(n int) Option {
	if n < 1 {
		panic("stack: WithCapacity(n<1)")
	}
	return func(c *config) {
		c.capacity = n
	}
}
