// SPDX-License-Identifier: MIT

// Package grid provides a small rectangular integer grid used by the
// puzzle packages as their shared 2D storage.
//
// What:
//
//   - Grid wraps a rectangular [][]int in a row-major buffer.
//   - Parse reads whitespace-separated rows ("22 13 17\n 8  2 23").
//   - Safe accessors (At/Set/Add) return ErrOutOfRange instead of panicking.
//   - Row/Column/Find/Sum/Render support board scoring and diagram output.
//
// Why:
//
//   - Bingo boards: square number grids with row/column scans.
//   - Vent diagrams: dense count grids rendered as text.
//
// Complexity:
//
//   - New/Parse/Zero: O(W×H) time and memory.
//   - At/Set/Add/InBounds: O(1).
//   - Find/Sum/Render: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: a token is not an integer.
//   - ErrOutOfRange: coordinates outside the grid.
package grid
