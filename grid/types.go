// SPDX-License-Identifier: MIT
// Package: complabel/grid
//
// types.go: cell states, positions, directions and sentinel errors.

package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrInvalidDimension indicates a negative interior dimension.
	ErrInvalidDimension = errors.New("grid: dimension must be non-negative")
	// ErrInvalidDensity indicates a foreground probability outside [0,1).
	ErrInvalidDensity = errors.New("grid: density must be in [0,1)")
	// ErrNonSquare indicates FromRows input whose rows differ from the row count.
	ErrNonSquare = errors.New("grid: rows must form a square")
	// ErrBadValue indicates a FromRows value other than 0 (background) or 1 (foreground).
	ErrBadValue = errors.New("grid: cell value must be 0 or 1")
)

// FirstComponentID is the smallest id a Labeled cell can carry.
// Ids 0 and 1 are reserved by the legacy encoding of Cell.Label.
const FirstComponentID uint32 = 2

// State is the lifecycle tag of a Cell.
type State uint8

const (
	// Border marks the sentinel ring around the interior.
	Border State = iota
	// Background marks an interior cell that is not part of the image.
	Background
	// Unvisited marks a foreground cell no labeler has discovered yet.
	Unvisited
	// Labeled marks a foreground cell with a component id and discovery order.
	Labeled
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Border:
		return "border"
	case Background:
		return "background"
	case Unvisited:
		return "unvisited"
	case Labeled:
		return "labeled"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Cell is one grid element. The zero value is a Border cell.
type Cell struct {
	state State
	id    uint32 // component id, set only when Labeled
	order int    // discovery order, set only when Labeled
}

// State returns the lifecycle tag of c.
func (c Cell) State() State { return c.state }

// ID returns the component id, or 0 if c is not Labeled.
func (c Cell) ID() uint32 { return c.id }

// Order returns the discovery order, or 0 if c is not Labeled.
func (c Cell) Order() int { return c.order }

// IsForeground reports whether c belongs to the image (Unvisited or Labeled).
func (c Cell) IsForeground() bool {
	return c.state == Unvisited || c.state == Labeled
}

// Label returns the legacy integer encoding:
// 0 for border and background, 1 for unvisited foreground, the id otherwise.
func (c Cell) Label() int {
	switch c.state {
	case Unvisited:
		return 1
	case Labeled:
		return int(c.id)
	default:
		return 0
	}
}

// Position addresses a cell in padded coordinates: the interior spans
// rows and columns 1..dimension.
type Position struct {
	Row, Col int
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Step returns the 4-neighbour of p in direction d.
func (p Position) Step(d Direction) Position {
	switch d {
	case Right:
		return Position{p.Row, p.Col + 1}
	case Down:
		return Position{p.Row + 1, p.Col}
	case Left:
		return Position{p.Row, p.Col - 1}
	default:
		return Position{p.Row - 1, p.Col}
	}
}

// Direction is one of the four von Neumann neighbour directions.
type Direction uint8

const (
	Right Direction = iota
	Down
	Left
	Up
)

// Directions lists the neighbour probe priority shared by every labeler.
var Directions = [4]Direction{Right, Down, Left, Up}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	case Up:
		return "up"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}
