package dfs

import (
	"github.com/katalvlaran/complabel/grid"
	"github.com/katalvlaran/complabel/label"
	"github.com/katalvlaran/complabel/stack"
)

// New returns a depth-first labeler configured by opts.
func New(opts ...label.Option) *Labeler {
	return &Labeler{
		opts:   label.NewOptions(opts...),
		frames: stack.New[frame](),
	}
}

// Label labels every foreground cell of g in place and summarizes the run.
func (l *Labeler) Label(g *grid.Grid) (label.Result, error) {
	l.frames.Reset()

	return label.Scan(g, label.ExploreFunc(l.explore), l.opts)
}

// explore labels the component of seed depth-first.
//
// The top frame is popped, its remaining directions are probed in order, and
// on the first hit the frame is pushed back followed by a frame for the new
// cell. A frame whose four directions are exhausted is dropped, which is
// the backtracking step.
func (l *Labeler) explore(s *label.Session, seed grid.Position, id uint32) {
	l.frames.Push(frame{pos: seed})
	s.Observe(l.frames.Len())

	for !l.frames.IsEmpty() {
		f, err := l.frames.Pop()
		if err != nil {
			return
		}
		for f.next < len(grid.Directions) {
			n := f.pos.Step(grid.Directions[f.next])
			f.next++
			if s.Discover(n, id) {
				l.frames.Push(f)
				l.frames.Push(frame{pos: n})
				s.Observe(l.frames.Len())
				break
			}
		}
	}
}
