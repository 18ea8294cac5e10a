// Package verify checks labeled grids against the invariants every labeling
// run must satisfy, and compares the output of two runs over the same image.
//
// What:
//
//   - Components extracts the 4-connected components of a grid's foreground
//     mask independently of any labeler (reference partition).
//   - Check validates one labeled grid: border intact, no Unvisited cells,
//     orders form the permutation 1..F, ids start at 2 and increase with the
//     raster position of each component's first cell, and every id class is
//     exactly one reference component.
//   - Compare validates that two labeled grids share the same partition and
//     ids, and counts the cells whose discovery order differs.
//
// Complexity:
//
//   - Components, Check, Compare: O(D²) time and memory for a D×D interior.
//
// Errors:
//
//   - ErrGridNil             nil grid argument.
//   - ErrUnlabeled           a foreground cell is still Unvisited.
//   - ErrBorderModified      a border cell is not Border.
//   - ErrOrderNotPermutation orders are not exactly 1..F.
//   - ErrIDOrder             ids do not follow the raster seed order.
//   - ErrPartitionMismatch   an id class differs from a reference component.
//   - ErrShapeMismatch       Compare on grids of different dimension or mask.
//   - ErrLabelMismatch       Compare found a cell with different ids.
package verify
