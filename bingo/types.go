// SPDX-License-Identifier: MIT

package bingo

import (
	"errors"

	"github.com/katalvlaran/submarine/grid"
)

// Sentinel errors for bingo parsing and queries.
var (
	// ErrParse indicates malformed game or board text.
	ErrParse = errors.New("bingo: parse error")
	// ErrNotSquare indicates a board whose row count differs from its column count.
	ErrNotSquare = errors.New("bingo: board is not square")
	// ErrNoBoards indicates a game with no board at all.
	ErrNoBoards = errors.New("bingo: game has no boards")
	// ErrInvalidState indicates a query on a board that has not reached the required state.
	ErrInvalidState = errors.New("bingo: invalid state")
)

// State is the win bookkeeping of a Board.
// The zero value is NotWon. Once Won is set it never changes.
type State struct {
	Won       bool
	DrawIndex int // position of the winning draw in Game.Draws()
	DrawValue int // the winning draw itself
}

// Board is a square grid of numbers with a parallel marked grid.
// numbers is immutable after construction and may be shared between copies;
// marked and state are per copy.
type Board struct {
	numbers *grid.Grid
	marked  [][]bool
	state   State
}

// Game is an ordered draw sequence replayed against ordered boards.
// winOrder holds board indices in the order they won.
type Game struct {
	draws    []int
	boards   []*Board
	winOrder []int
}
