package verify

import "errors"

var (
	// ErrGridNil indicates a nil grid argument.
	ErrGridNil = errors.New("verify: grid is nil")
	// ErrUnlabeled indicates a foreground cell left Unvisited.
	ErrUnlabeled = errors.New("verify: foreground cell is unlabeled")
	// ErrBorderModified indicates a border cell that is no longer Border.
	ErrBorderModified = errors.New("verify: border cell modified")
	// ErrOrderNotPermutation indicates discovery orders that are not exactly 1..F.
	ErrOrderNotPermutation = errors.New("verify: discovery orders are not a permutation of 1..F")
	// ErrIDOrder indicates component ids that do not follow the raster seed order.
	ErrIDOrder = errors.New("verify: component ids out of scan order")
	// ErrPartitionMismatch indicates an id class that is not a 4-connected component.
	ErrPartitionMismatch = errors.New("verify: labels do not match 4-connected components")
	// ErrShapeMismatch indicates two grids that are not structurally identical.
	ErrShapeMismatch = errors.New("verify: grids differ in shape")
	// ErrLabelMismatch indicates a cell with different ids in two grids.
	ErrLabelMismatch = errors.New("verify: component ids differ")
)
