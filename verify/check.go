package verify

import (
	"fmt"

	"github.com/katalvlaran/complabel/grid"
	"github.com/katalvlaran/complabel/label"
)

// Check validates a fully labeled grid. It returns nil if every invariant
// holds, or the first violation found wrapped with its location.
func Check(g *grid.Grid) error {
	if g == nil {
		return ErrGridNil
	}
	if err := checkBorder(g); err != nil {
		return err
	}

	// 1) Every foreground cell labeled, orders unique and within 1..F.
	f := g.ForegroundCount()
	seenOrder := make([]bool, f+1)
	var err error
	g.Each(func(p grid.Position, c grid.Cell) {
		if err != nil {
			return
		}
		switch c.State() {
		case grid.Unvisited:
			err = fmt.Errorf("%w at %v", ErrUnlabeled, p)
		case grid.Labeled:
			o := c.Order()
			if o < 1 || o > f || seenOrder[o] {
				err = fmt.Errorf("%w: order %d at %v (F=%d)", ErrOrderNotPermutation, o, p, f)
				return
			}
			seenOrder[o] = true
		}
	})
	if err != nil {
		return err
	}

	// 2) Each reference component carries a single id, the next in scan order.
	//    Components are listed in raster order of their first cell, which is
	//    the seed the scan would pick.
	next := label.FirstID
	for _, comp := range Components(g) {
		id := g.At(comp[0]).ID()
		if id != next {
			return fmt.Errorf("%w: component at %v has id %d, want %d", ErrIDOrder, comp[0], id, next)
		}
		for _, p := range comp[1:] {
			if got := g.At(p).ID(); got != id {
				return fmt.Errorf("%w: %v has id %d, component id %d", ErrPartitionMismatch, p, got, id)
			}
		}
		next++
	}

	return nil
}

// cellSource is the read side of a grid that checkBorder needs.
type cellSource interface {
	Dimension() int
	At(p grid.Position) grid.Cell
}

// checkBorder verifies the sentinel ring. Grids changed only through
// grid.Discover always pass; the ring is still read cell by cell.
func checkBorder(g cellSource) error {
	last := g.Dimension() + 1
	for i := 0; i <= last; i++ {
		for _, p := range [4]grid.Position{
			{Row: 0, Col: i}, {Row: last, Col: i}, {Row: i, Col: 0}, {Row: i, Col: last},
		} {
			c := g.At(p)
			if c.State() != grid.Border || c.Order() != 0 {
				return fmt.Errorf("%w at %v: state %v", ErrBorderModified, p, c.State())
			}
		}
	}

	return nil
}
