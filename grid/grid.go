// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Grid is a rectangular grid of ints stored row-major (offset = y*Width + x).
// The shape is fixed at construction; cell values may change through Set/Add.
type Grid struct {
	Width, Height int
	cells         []int
}

// New constructs a Grid from a non-empty, rectangular 2D slice indexed [y][x].
// It deep-copies the input so later changes to values do not leak in.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([]int, 0, w*h)
	for _, row := range values {
		cells = append(cells, row...)
	}

	return &Grid{Width: w, Height: h, cells: cells}, nil
}

// Zero returns a width×height grid filled with zeros.
// Returns ErrEmptyGrid if either dimension is not positive.
func Zero(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}

	return &Grid{Width: width, Height: height, cells: make([]int, width*height)}, nil
}

// Parse reads a grid from text: one row per non-blank line, cells separated
// by any amount of whitespace. Leading and trailing blank lines are ignored.
//
// Errors:
//   - ErrEmptyGrid if text holds no rows.
//   - ErrBadCell (wrapped with row/column) on a non-integer token.
//   - ErrNonRectangular if rows differ in length.
func Parse(text string) (*Grid, error) {
	var rows [][]int
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for x, tok := range fields {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %d: %q: %w", len(rows), x, tok, ErrBadCell)
			}
			row[x] = v
		}
		rows = append(rows, row)
	}

	return New(rows)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// IsSquare reports whether Width == Height.
func (g *Grid) IsSquare() bool {
	return g.Width == g.Height
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// At returns the value at (x,y) or ErrOutOfRange.
func (g *Grid) At(x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return 0, fmt.Errorf("Grid.At(%d,%d): %w", x, y, ErrOutOfRange)
	}

	return g.cells[g.index(x, y)], nil
}

// Set stores v at (x,y) or returns ErrOutOfRange.
func (g *Grid) Set(x, y, v int) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("Grid.Set(%d,%d): %w", x, y, ErrOutOfRange)
	}
	g.cells[g.index(x, y)] = v

	return nil
}

// Add increments the value at (x,y) by delta or returns ErrOutOfRange.
func (g *Grid) Add(x, y, delta int) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("Grid.Add(%d,%d): %w", x, y, ErrOutOfRange)
	}
	g.cells[g.index(x, y)] += delta

	return nil
}

// Row returns a copy of row y, or nil when y is out of range.
func (g *Grid) Row(y int) []int {
	if y < 0 || y >= g.Height {
		return nil
	}
	out := make([]int, g.Width)
	copy(out, g.cells[y*g.Width:(y+1)*g.Width])

	return out
}

// Column returns a copy of column x, or nil when x is out of range.
func (g *Grid) Column(x int) []int {
	if x < 0 || x >= g.Width {
		return nil
	}
	out := make([]int, g.Height)
	for y := range out {
		out[y] = g.cells[g.index(x, y)]
	}

	return out
}

// Rows returns a deep copy of the grid as [y][x].
func (g *Grid) Rows() [][]int {
	out := make([][]int, g.Height)
	for y := range out {
		out[y] = g.Row(y)
	}

	return out
}

// Find returns the coordinates of the first cell (row-major) holding v.
// ok is false when v does not occur; absence is not an error.
// Complexity: O(W×H).
func (g *Grid) Find(v int) (x, y int, ok bool) {
	for i, c := range g.cells {
		if c == v {
			x, y = g.Coordinate(i)
			return x, y, true
		}
	}

	return 0, 0, false
}

// Sum returns the sum of all cells.
func (g *Grid) Sum() int {
	total := 0
	for _, c := range g.cells {
		total += c
	}

	return total
}

// Count returns how many cells satisfy keep.
func (g *Grid) Count(keep func(v int) bool) int {
	n := 0
	for _, c := range g.cells {
		if keep(c) {
			n++
		}
	}

	return n
}

// Render formats the grid one line per row, mapping each cell through glyph.
// Rows are joined with '\n' and there is no trailing newline.
func (g *Grid) Render(glyph func(v int) byte) string {
	var sb strings.Builder
	sb.Grow(g.Height * (g.Width + 1))
	for y := 0; y < g.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.Width; x++ {
			sb.WriteByte(glyph(g.cells[g.index(x, y)]))
		}
	}

	return sb.String()
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}
