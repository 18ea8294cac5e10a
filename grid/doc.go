// SPDX-License-Identifier: MIT

// Package grid models a square boolean image as a padded 2-D array of cells
// with a one-cell sentinel border.
//
// What:
//
//   - Cell is a tagged value: Border, Background, Unvisited or Labeled.
//     Only Labeled cells carry a component id (≥ FirstComponentID) and a
//     discovery order (≥ 1).
//   - Grid stores (dimension+2)² cells in row-major order. Rows and columns
//     0 and dimension+1 are the border; they are permanently Border.
//   - Discover is the only mutation: Unvisited → Labeled, exactly once.
//
// Why:
//
//   - The border lets 4-neighbour probes skip bounds checks.
//   - The tagged state removes the ambiguity of an overloaded integer label
//     while Cell.Label still exposes the 0/1/id encoding to presenters.
//
// Construction:
//
//   - New(dim)                  all-background interior.
//   - FromRows(rows)            0/1 square fixture.
//   - Generate(dim, p, opts...) Bernoulli(p) interior, seedable via WithSeed/WithRand.
//   - Pair(g)                   two structurally identical grids with independent storage.
//
// Errors:
//
//   - ErrInvalidDimension: dimension < 0.
//   - ErrInvalidDensity:   density outside [0,1).
//   - ErrNonSquare:        FromRows input is not square.
//   - ErrBadValue:         FromRows value other than 0 or 1.
//
// A Grid is not safe for concurrent mutation; labelers own their grid
// exclusively for the duration of a run.
package grid
