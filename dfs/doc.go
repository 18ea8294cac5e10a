// Package dfs labels 4-connected components of a grid.Grid depth-first.
//
// The scan (see package label) finds each seed in row-major order. From a
// cell, neighbours are probed Right, Down, Left, Up; the first Unvisited
// neighbour is labeled and explored to exhaustion before the remaining
// directions of the current cell are probed. Discovery orders therefore
// follow one branch fully before backtracking.
//
// Exploration is iterative. Each frame on a stack.Stack holds a position and
// the next direction to probe, so the numbering matches a recursive
// implementation while depth is limited only by heap memory.
//
// Complexity:
//
//   - Time:   O(D²) for a D×D interior; each cell is probed at most 4 times.
//   - Memory: O(C) frames, C = size of the largest component.
//
// Errors:
//
//   - label.ErrGridNil   if the grid is nil.
//   - label.ErrCanceled  if the context is done between seeds.
package dfs
