// SPDX-License-Identifier: MIT

// Package vents counts the grid points where hydrothermal vent lines overlap.
//
// What:
//
//   - Point: an (X, Y) pair, comparable and usable as a map key.
//   - Segment: two Points classified as Horizontal, Vertical or Diagonal
//     (exactly 45°). Any other slope is rejected at construction.
//   - Map: an immutable list of Segments with overlap queries.
//
// Input format, one segment per line:
//
//	0,9 -> 5,9
//	8,0 -> 0,8
//
// Rasterization (Segment.Points) is inclusive of both ends. Axis-aligned
// segments are walked in ascending order whatever the input direction;
// diagonals are walked from From toward To, one step on each axis.
//
// Overlap counting:
//
//   - OverlapsAxisAligned: only horizontal and vertical segments.
//   - OverlapsAll: every segment.
//   - Overlaps(opts...): WithDiagonals / WithThreshold for other cuts.
//
// Errors:
//
//   - ErrParse: missing arrow, missing comma or non-integer coordinate.
//   - ErrUnsupportedGeometry: segment neither horizontal, vertical nor 45° diagonal.
//   - ErrEmptyMap: Diagram on a map with nothing to draw.
//   - ErrDiagramTooLarge: Diagram beyond MaxDiagramSide cells per side.
//
// Complexity: O(P) time and memory for P rasterized points per query.
package vents
