// Package label holds what the depth-first and breadth-first labelers share:
// the Labeler contract, the row-major seed scan, per-run counters, options
// and the Result summary.
//
// Both labelers visit interior cells row by row, column by column. Each
// Unvisited cell met by that scan is a seed: it receives the next component
// id (starting at FirstID) and the next discovery order (starting at 1,
// never reset between components), then the labeler explores its component.
// Because ids depend only on the scan, two labelers run on structurally
// identical grids assign the same id to the same component.
//
// Options:
//
//   - WithContext(ctx)      cancellation, checked once per seed.
//   - WithOnSeed(fn)        called when a seed opens a new component.
//   - WithOnDiscover(fn)    called for every Unvisited → Labeled transition.
//
// Errors:
//
//   - ErrGridNil            if the grid is nil.
//   - ErrCanceled           wraps ctx.Err() when the context is done.
package label
