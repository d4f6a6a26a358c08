// SPDX-License-Identifier: MIT

package grid

import "errors"

// Sentinel errors for grid construction and access. Callers match them
// with errors.Is; detection sites may wrap them with coordinates.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadCell indicates a cell token that is not an integer.
	ErrBadCell = errors.New("grid: cell is not an integer")
	// ErrOutOfRange indicates coordinates outside the grid.
	ErrOutOfRange = errors.New("grid: coordinates out of range")
)
