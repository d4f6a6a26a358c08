// SPDX-License-Identifier: MIT

package bingo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/submarine/grid"
)

// NewBoard builds an unmarked, not-won Board from rows indexed [row][col].
//
// Errors:
//   - ErrParse (wrapping grid.ErrEmptyGrid or grid.ErrNonRectangular) for
//     empty or ragged rows.
//   - ErrParse and ErrNotSquare when the row count differs from the column count.
//
// Complexity: O(N²) time and memory.
func NewBoard(rows [][]int) (*Board, error) {
	g, err := grid.New(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return newBoard(g)
}

// ParseBoard builds a Board from whitespace-separated rows of integers.
// Errors are those of NewBoard, plus ErrParse wrapping grid.ErrBadCell for a
// non-integer cell.
// Complexity: O(N²).
func ParseBoard(text string) (*Board, error) {
	g, err := grid.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return newBoard(g)
}

func newBoard(g *grid.Grid) (*Board, error) {
	if !g.IsSquare() {
		return nil, fmt.Errorf("%w: %dx%d: %w", ErrParse, g.Height, g.Width, ErrNotSquare)
	}
	b := &Board{numbers: g}
	b.reset()

	return b, nil
}

// reset clears every mark and the win state.
func (b *Board) reset() {
	b.marked = make([][]bool, b.numbers.Height)
	for y := range b.marked {
		b.marked[y] = make([]bool, b.numbers.Width)
	}
	b.state = State{}
}

// Size returns N for an N×N board.
func (b *Board) Size() int {
	return b.numbers.Width
}

// Numbers returns a copy of the board values indexed [row][col].
func (b *Board) Numbers() [][]int {
	return b.numbers.Rows()
}

// Marked returns a copy of the marked grid indexed [row][col].
func (b *Board) Marked() [][]bool {
	out := make([][]bool, len(b.marked))
	for y, row := range b.marked {
		out[y] = append([]bool(nil), row...)
	}

	return out
}

// IsMarked reports whether the cell at (row, col) is marked.
// Out-of-range cells are reported unmarked.
func (b *Board) IsMarked(row, col int) bool {
	if !b.numbers.InBounds(col, row) {
		return false
	}

	return b.marked[row][col]
}

// Find returns the position of v on the board.
// ok is false when v is not on the board.
func (b *Board) Find(v int) (row, col int, ok bool) {
	col, row, ok = b.numbers.Find(v)

	return row, col, ok
}

// Mark marks every cell holding v and reports whether v is on the board.
// Marking is idempotent. A board that has already won is left untouched,
// so its unmarked sum and winning draw stay as they were at the win.
func (b *Board) Mark(v int) bool {
	if b.state.Won {
		_, _, ok := b.numbers.Find(v)
		return ok
	}
	found := false
	for y := 0; y < b.numbers.Height; y++ {
		for x := 0; x < b.numbers.Width; x++ {
			if c, _ := b.numbers.At(x, y); c == v {
				b.marked[y][x] = true
				found = true
			}
		}
	}

	return found
}

// Complete reports whether any full row or full column is marked.
// Diagonals never count.
func (b *Board) Complete() bool {
	n := b.Size()
	for i := 0; i < n; i++ {
		rowDone, colDone := true, true
		for j := 0; j < n; j++ {
			rowDone = rowDone && b.marked[i][j]
			colDone = colDone && b.marked[j][i]
		}
		if rowDone || colDone {
			return true
		}
	}

	return false
}

// win records the winning draw exactly once.
func (b *Board) win(drawIndex, drawValue int) {
	if b.state.Won {
		return
	}
	b.state = State{Won: true, DrawIndex: drawIndex, DrawValue: drawValue}
}

// State returns the board's win state.
func (b *Board) State() State {
	return b.state
}

// HasWon reports whether the board has completed a row or column during replay.
func (b *Board) HasWon() bool {
	return b.state.Won
}

// Sum returns the sum of every cell.
func (b *Board) Sum() int {
	return b.numbers.Sum()
}

// UnmarkedSum returns the sum of the cells that are not marked.
func (b *Board) UnmarkedSum() int {
	return b.sum(false)
}

// MarkedSum returns the sum of the marked cells.
func (b *Board) MarkedSum() int {
	return b.sum(true)
}

func (b *Board) sum(marked bool) int {
	total := 0
	for y, row := range b.marked {
		for x, m := range row {
			if m == marked {
				c, _ := b.numbers.At(x, y)
				total += c
			}
		}
	}

	return total
}

// Score returns UnmarkedSum × winning draw value.
// Returns ErrInvalidState if the board never won.
func (b *Board) Score() (int, error) {
	if !b.state.Won {
		return 0, fmt.Errorf("score of a board that never won: %w", ErrInvalidState)
	}

	return b.UnmarkedSum() * b.state.DrawValue, nil
}

// String renders the board row by row, marked cells prefixed with '*',
// rows separated by " | ".
func (b *Board) String() string {
	rows := make([]string, b.numbers.Height)
	for y := range rows {
		cells := make([]string, b.numbers.Width)
		for x := range cells {
			c, _ := b.numbers.At(x, y)
			cells[x] = strconv.Itoa(c)
			if b.marked[y][x] {
				cells[x] = "*" + cells[x]
			}
		}
		rows[y] = strings.Join(cells, " ")
	}

	return "Board(" + strings.Join(rows, " | ") + ")"
}
