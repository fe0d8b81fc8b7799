package core

import "errors"

var (
	// ErrInvalidDimensions reports a grid with zero rows or columns.
	ErrInvalidDimensions = errors.New("grid must have at least one row and one column")

	// ErrOutOfBounds reports a coordinate outside the grid extents.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrSizeMismatch reports two grids that were expected to share dimensions.
	ErrSizeMismatch = errors.New("grid dimensions differ")

	// ErrRaggedRows reports row-wise input whose rows differ in length.
	ErrRaggedRows = errors.New("rows have differing lengths")
)
