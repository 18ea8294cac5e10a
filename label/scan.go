package label

import (
	"fmt"

	"github.com/katalvlaran/complabel/grid"
)

// Counters owns the id and order counters of one run.
type Counters struct {
	id    uint32
	order int
}

// NewCounters returns counters positioned at FirstID and FirstOrder.
func NewCounters() *Counters {
	return &Counters{id: FirstID, order: FirstOrder}
}

// ID returns the id the next seed will receive.
func (c *Counters) ID() uint32 { return c.id }

// Order returns the order the next discovered cell will receive.
func (c *Counters) Order() int { return c.order }

// Session is the per-run state handed to an Explorer: the grid, the
// counters and the hooks. It is created by Scan and must not be retained.
type Session struct {
	Grid *grid.Grid

	opts     Options
	counters *Counters
	peak     int
}

// Discover labels p with id and the next order if p is Unvisited, firing
// the discovery hook. It reports whether p was labeled.
func (s *Session) Discover(p grid.Position, id uint32) bool {
	if !s.Grid.Discover(p, id, s.counters.order) {
		return false
	}
	order := s.counters.order
	s.counters.order++
	if s.opts.OnDiscover != nil {
		s.opts.OnDiscover(p, id, order)
	}

	return true
}

// Observe records the current work-list occupancy for Result.MaxFrontier.
func (s *Session) Observe(n int) {
	if n > s.peak {
		s.peak = n
	}
}

// Explorer labels the whole component of seed with id. The seed itself is
// already labeled when Explore is called.
type Explorer interface {
	Explore(s *Session, seed grid.Position, id uint32)
}

// ExploreFunc adapts a plain function to Explorer.
type ExploreFunc func(s *Session, seed grid.Position, id uint32)

// Explore calls f(s, seed, id).
func (f ExploreFunc) Explore(s *Session, seed grid.Position, id uint32) {
	f(s, seed, id)
}

// Scan runs the row-major seed scan over g, calling ex for every component.
// Returns ErrGridNil for a nil grid, or ErrCanceled wrapping ctx.Err() if
// the context is done before a seed is processed; cells labeled up to that
// point stay labeled.
func Scan(g *grid.Grid, ex Explorer, opts Options) (Result, error) {
	if g == nil {
		return Result{}, ErrGridNil
	}

	s := &Session{Grid: g, opts: opts, counters: NewCounters()}
	var res Result
	var err error

	dim := g.Dimension()
scan:
	for r := 1; r <= dim; r++ {
		for c := 1; c <= dim; c++ {
			p := grid.Position{Row: r, Col: c}
			if g.At(p).State() != grid.Unvisited {
				continue
			}
			select {
			case <-opts.Ctx.Done():
				err = fmt.Errorf("%w at seed %v: %w", ErrCanceled, p, opts.Ctx.Err())
				break scan
			default:
			}

			id := s.counters.id
			s.counters.id++
			if opts.OnSeed != nil {
				opts.OnSeed(p, id)
			}
			s.Discover(p, id)
			ex.Explore(s, p, id)
			res.Components++
		}
	}

	res.NextID = s.counters.id
	res.NextOrder = s.counters.order
	res.Foreground = s.counters.order - FirstOrder
	res.MaxFrontier = s.peak

	return res, err
}
