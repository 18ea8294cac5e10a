// Package bfs labels 4-connected components of a grid.Grid breadth-first.
//
// The scan (see package label) finds each seed in row-major order. The
// current cell's neighbours are probed Right, Down, Left, Up; every
// Unvisited neighbour is labeled at the moment it is enqueued, not when it
// is later dequeued. The frontier is then drained in FIFO order, so
// discovery order equals breadth order from the seed.
//
// The frontier is a gods arrayqueue; exploration is a plain loop with no
// recursion on dequeue.
//
// Complexity:
//
//   - Time:   O(D²) for a D×D interior.
//   - Memory: O(W) queue entries, W = widest frontier of any component.
//
// Errors:
//
//   - label.ErrGridNil   if the grid is nil.
//   - label.ErrCanceled  if the context is done between seeds.
package bfs
