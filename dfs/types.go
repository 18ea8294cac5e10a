package dfs

import (
	"github.com/katalvlaran/complabel/grid"
	"github.com/katalvlaran/complabel/label"
	"github.com/katalvlaran/complabel/stack"
)

// frame is one level of the explicit recursion: the cell being explored and
// the index into grid.Directions of the next neighbour to probe.
type frame struct {
	pos  grid.Position
	next int
}

// Labeler is the depth-first component labeler.
// A Labeler reuses its stack across runs and is not safe for concurrent use;
// create one per goroutine.
type Labeler struct {
	opts   label.Options
	frames *stack.Stack[frame]
}

var _ label.Labeler = (*Labeler)(nil)
