// SPDX-License-Identifier: MIT
// Package: complabel/grid
//
// grid.go: padded storage, accessors and the Discover transition.
//
// Invariants:
//   • cells has (dim+2)² entries, row-major with stride dim+2.
//   • Border cells never change; Background cells never change.
//   • Discover moves Unvisited → Labeled once; Labeled is terminal.

package grid

import "fmt"

// Grid is a square image of dimension×dimension interior cells surrounded
// by a sentinel border.
type Grid struct {
	dim    int
	stride int
	cells  []Cell
}

// New returns a grid whose interior is entirely Background.
// Returns ErrInvalidDimension if dim < 0.
// Complexity: O(dim²) time and memory.
func New(dim int) (*Grid, error) {
	if dim < 0 {
		return nil, fmt.Errorf("New(%d): %w", dim, ErrInvalidDimension)
	}

	return newGrid(dim), nil
}

// newGrid allocates the padded array and stamps interior cells as Background.
func newGrid(dim int) *Grid {
	stride := dim + 2
	g := &Grid{dim: dim, stride: stride, cells: make([]Cell, stride*stride)}
	for r := 1; r <= dim; r++ {
		for c := 1; c <= dim; c++ {
			g.cells[r*stride+c].state = Background
		}
	}

	return g
}

// FromRows builds a grid from a square 0/1 matrix of interior values,
// where 1 is foreground. An empty matrix yields a dimension-0 grid.
// Returns ErrNonSquare or ErrBadValue on malformed input.
func FromRows(rows [][]int) (*Grid, error) {
	dim := len(rows)
	for r, row := range rows {
		if len(row) != dim {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w", r, len(row), dim, ErrNonSquare)
		}
	}

	g := newGrid(dim)
	for r, row := range rows {
		for c, v := range row {
			switch v {
			case 0:
			case 1:
				g.cells[(r+1)*g.stride+c+1].state = Unvisited
			default:
				return nil, fmt.Errorf("FromRows: value %d at (%d,%d): %w", v, r, c, ErrBadValue)
			}
		}
	}

	return g, nil
}

// Dimension returns the interior side length.
func (g *Grid) Dimension() int {
	return g.dim
}

// InBounds reports whether p addresses a stored cell, border included.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.stride && p.Col >= 0 && p.Col < g.stride
}

// IsInterior reports whether p lies inside the border.
func (g *Grid) IsInterior(p Position) bool {
	return p.Row >= 1 && p.Row <= g.dim && p.Col >= 1 && p.Col <= g.dim
}

// At returns the cell at p. Positions outside the stored area read as Border.
func (g *Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		return Cell{}
	}

	return g.cells[p.Row*g.stride+p.Col]
}

// Discover labels the Unvisited cell at p with id and order and reports true.
// Any other state, an id below FirstComponentID or an order below 1 leaves
// the cell untouched and reports false.
func (g *Grid) Discover(p Position, id uint32, order int) bool {
	if !g.IsInterior(p) || id < FirstComponentID || order < 1 {
		return false
	}
	c := &g.cells[p.Row*g.stride+p.Col]
	if c.state != Unvisited {
		return false
	}
	c.state, c.id, c.order = Labeled, id, order

	return true
}

// Each calls fn for every interior cell in row-major order.
func (g *Grid) Each(fn func(p Position, c Cell)) {
	for r := 1; r <= g.dim; r++ {
		for c := 1; c <= g.dim; c++ {
			fn(Position{r, c}, g.cells[r*g.stride+c])
		}
	}
}

// ForegroundCount returns the number of Unvisited or Labeled interior cells.
func (g *Grid) ForegroundCount() int {
	n := 0
	g.Each(func(_ Position, c Cell) {
		if c.IsForeground() {
			n++
		}
	})

	return n
}

// Clone returns a deep copy with independent storage.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)

	return &Grid{dim: g.dim, stride: g.stride, cells: cells}
}

// Labels returns the interior legacy labels (see Cell.Label) as a matrix.
func (g *Grid) Labels() [][]int {
	return g.project(Cell.Label)
}

// Orders returns the interior discovery orders as a matrix.
func (g *Grid) Orders() [][]int {
	return g.project(Cell.Order)
}

func (g *Grid) project(fn func(Cell) int) [][]int {
	out := make([][]int, g.dim)
	for r := 0; r < g.dim; r++ {
		out[r] = make([]int, g.dim)
		for c := 0; c < g.dim; c++ {
			out[r][c] = fn(g.cells[(r+1)*g.stride+c+1])
		}
	}

	return out
}

// Pair returns two grids structurally identical to g, each with its own
// storage, so two labelers can run on the same image without interference.
func Pair(g *Grid) (*Grid, *Grid) {
	return g.Clone(), g.Clone()
}
