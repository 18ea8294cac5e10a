// SPDX-License-Identifier: MIT

// Package stack provides Stack[T], an array-backed LIFO container with
// amortized O(1) push and capacity doubling.
//
// What:
//
//   - Push appends a new top element, doubling the backing array when full.
//   - Peek and Pop read the top element; on an empty stack they return
//     ErrEmptyCollection instead of reading invalid memory.
//   - Growth copies the full occupied range, top element included.
//
// Why:
//
//   - The depth-first labeler keeps its backtracking frames here, so the
//     exploration depth is bounded by heap memory, not by the goroutine stack.
//
// Complexity:
//
//   - Push: amortized O(1), worst case O(n) on growth.
//   - Peek, Pop, IsEmpty, Len, Cap: O(1).
//   - Memory: O(capacity), capacity ≤ 2·max(Len, initial capacity).
//
// Options:
//
//   - WithCapacity(n): initial capacity (default DefaultCapacity). Panics if n < 1.
//
// Errors:
//
//   - ErrEmptyCollection: Peek or Pop on an empty stack.
package stack
