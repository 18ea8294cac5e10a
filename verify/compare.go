package verify

import (
	"fmt"

	"github.com/katalvlaran/complabel/grid"
)

// Report summarizes the comparison of two labeled grids.
type Report struct {
	// Cells is the number of foreground cells in each grid.
	Cells int
	// Components is the number of distinct ids in each grid.
	Components int
	// OrderDiffers is the number of cells whose discovery order differs.
	OrderDiffers int
}

// SameOrder reports whether both runs discovered every cell at the same rank.
func (r Report) SameOrder() bool {
	return r.OrderDiffers == 0
}

// Compare checks that a and b hold the same image, the same partition and
// the same id on every cell, and reports how their discovery orders differ.
// Returns ErrShapeMismatch or ErrLabelMismatch on the first difference.
func Compare(a, b *grid.Grid) (Report, error) {
	if a == nil || b == nil {
		return Report{}, ErrGridNil
	}
	if a.Dimension() != b.Dimension() {
		return Report{}, fmt.Errorf("%w: dimension %d vs %d", ErrShapeMismatch, a.Dimension(), b.Dimension())
	}

	var rep Report
	var err error
	ids := make(map[uint32]struct{})
	a.Each(func(p grid.Position, ca grid.Cell) {
		if err != nil {
			return
		}
		cb := b.At(p)
		if ca.IsForeground() != cb.IsForeground() {
			err = fmt.Errorf("%w at %v: %v vs %v", ErrShapeMismatch, p, ca.State(), cb.State())
			return
		}
		if !ca.IsForeground() {
			return
		}
		if ca.ID() != cb.ID() {
			err = fmt.Errorf("%w at %v: %d vs %d", ErrLabelMismatch, p, ca.ID(), cb.ID())
			return
		}
		rep.Cells++
		ids[ca.ID()] = struct{}{}
		if ca.Order() != cb.Order() {
			rep.OrderDiffers++
		}
	})
	if err != nil {
		return Report{}, err
	}
	rep.Components = len(ids)

	return rep, nil
}
