package verify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/complabel/grid"
)

// patchedGrid serves a real grid but replaces the cell at one position.
type patchedGrid struct {
	*grid.Grid
	at   grid.Position
	cell grid.Cell
}

func (p patchedGrid) At(q grid.Position) grid.Cell {
	if q == p.at {
		return p.cell
	}
	return p.Grid.At(q)
}

func TestCheckBorder_Intact(t *testing.T) {
	g, err := grid.FromRows([][]int{{1, 0}, {0, 1}})
	require.NoError(t, err)
	assert.NoError(t, checkBorder(g))
}

func TestCheckBorder_Modified(t *testing.T) {
	g, err := grid.FromRows([][]int{{1, 0}, {0, 1}})
	require.NoError(t, err)
	foreground := g.At(grid.Position{Row: 1, Col: 1})

	for _, at := range []grid.Position{
		{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 3, Col: 1}, {Row: 2, Col: 0}, {Row: 1, Col: 3},
	} {
		err := checkBorder(patchedGrid{Grid: g, at: at, cell: foreground})
		assert.True(t, errors.Is(err, ErrBorderModified), "at %v: got %v", at, err)
		assert.Contains(t, err.Error(), at.String())
	}
}
