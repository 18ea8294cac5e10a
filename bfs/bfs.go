package bfs

import (
	"github.com/emirpasic/gods/queues/arrayqueue"

	"github.com/katalvlaran/complabel/grid"
	"github.com/katalvlaran/complabel/label"
)

// Labeler is the breadth-first component labeler.
// A Labeler reuses its queue across runs and is not safe for concurrent use;
// create one per goroutine.
type Labeler struct {
	opts     label.Options
	frontier *arrayqueue.Queue
}

var _ label.Labeler = (*Labeler)(nil)

// New returns a breadth-first labeler configured by opts.
func New(opts ...label.Option) *Labeler {
	return &Labeler{
		opts:     label.NewOptions(opts...),
		frontier: arrayqueue.New(),
	}
}

// Label labels every foreground cell of g in place and summarizes the run.
func (l *Labeler) Label(g *grid.Grid) (label.Result, error) {
	l.frontier.Clear()

	return label.Scan(g, label.ExploreFunc(l.explore), l.opts)
}

// explore labels the component of seed breadth-first.
func (l *Labeler) explore(s *label.Session, seed grid.Position, id uint32) {
	cur := seed
	for {
		l.enqueueNeighbors(s, cur, id)
		s.Observe(l.frontier.Size())

		v, ok := l.frontier.Dequeue()
		if !ok {
			return
		}
		cur = v.(grid.Position)
	}
}

// enqueueNeighbors labels and enqueues each Unvisited 4-neighbour of p in
// probe priority order.
func (l *Labeler) enqueueNeighbors(s *label.Session, p grid.Position, id uint32) {
	for _, d := range grid.Directions {
		n := p.Step(d)
		if s.Discover(n, id) {
			l.frontier.Enqueue(n)
		}
	}
}
