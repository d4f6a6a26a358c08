// SPDX-License-Identifier: MIT

package bingo

import (
	"fmt"
	"strconv"
	"strings"
)

// New builds a Game and replays every draw against the boards.
// The Game plays on fresh, unmarked copies of the boards: the caller's
// boards are never touched, and Boards/Winners/FirstWinner/LastWinner return
// the Game's own copies, whose state is fixed once New returns.
//
// Errors:
//   - ErrParse if draws is empty.
//   - ErrNoBoards if boards is empty.
//
// Complexity: O(D × B × N²) for D draws and B boards of side N.
func New(draws []int, boards []*Board) (*Game, error) {
	if len(draws) == 0 {
		return nil, fmt.Errorf("%w: no draws", ErrParse)
	}
	if len(boards) == 0 {
		return nil, ErrNoBoards
	}
	g := &Game{
		draws:  append([]int(nil), draws...),
		boards: make([]*Board, len(boards)),
	}
	for i, b := range boards {
		// numbers is immutable after construction and safe to share.
		g.boards[i] = &Board{numbers: b.numbers}
		g.boards[i].reset()
	}
	g.replay()

	return g, nil
}

// Parse builds a Game from its text form: the first non-blank line holds
// comma-separated draws, every following blank-line separated block is a
// square board. No partial game is returned on error.
//
// Errors:
//   - ErrParse: empty input or draw line, non-integer draw or cell, ragged
//     board, non-square board (also ErrNotSquare), no board (also ErrNoBoards).
//     Board errors are wrapped with the board's 0-based index.
//
// Complexity: O(T) to parse T bytes, plus the replay cost of New.
func Parse(text string) (*Game, error) {
	blocks := splitBlocks(text)
	if len(blocks) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrParse)
	}
	// The draw line is the first line of the first block; anything below it
	// in that block is the first board.
	head, rest, _ := strings.Cut(blocks[0], "\n")
	draws, err := parseDraws(head)
	if err != nil {
		return nil, err
	}
	boardBlocks := blocks[1:]
	if strings.TrimSpace(rest) != "" {
		boardBlocks = append([]string{rest}, boardBlocks...)
	}

	boards := make([]*Board, 0, len(boardBlocks))
	for i, blk := range boardBlocks {
		b, err := ParseBoard(blk)
		if err != nil {
			return nil, fmt.Errorf("board %d: %w", i, err)
		}
		boards = append(boards, b)
	}
	if len(boards) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrParse, ErrNoBoards)
	}

	return New(draws, boards)
}

// parseDraws reads "7,4,9,5" into ints.
func parseDraws(line string) ([]int, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, fmt.Errorf("%w: empty draw line", ErrParse)
	}
	toks := strings.Split(line, ",")
	draws := make([]int, len(toks))
	for i, tok := range toks {
		v, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return nil, fmt.Errorf("%w: draw %d: %q is not an integer", ErrParse, i, tok)
		}
		draws[i] = v
	}

	return draws, nil
}

// splitBlocks groups non-blank lines into blocks separated by blank lines.
func splitBlocks(text string) []string {
	var (
		blocks []string
		cur    []string
	)
	flush := func() {
		if len(cur) > 0 {
			blocks = append(blocks, strings.Join(cur, "\n"))
			cur = cur[:0]
		}
	}
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()

	return blocks
}

// replay marks every draw on the not-yet-won boards, then credits wins in
// board order. All boards are marked for a draw before any win check.
func (g *Game) replay() {
	for i, v := range g.draws {
		for _, b := range g.boards {
			if !b.HasWon() {
				b.Mark(v)
			}
		}
		for idx, b := range g.boards {
			if !b.HasWon() && b.Complete() {
				b.win(i, v)
				g.winOrder = append(g.winOrder, idx)
			}
		}
		if len(g.winOrder) == len(g.boards) {
			return
		}
	}
}

// Draws returns a copy of the draw sequence.
func (g *Game) Draws() []int {
	return append([]int(nil), g.draws...)
}

// Boards returns the Game's boards in input order.
func (g *Game) Boards() []*Board {
	return append([]*Board(nil), g.boards...)
}

// Winners returns the boards that won, in win order.
func (g *Game) Winners() []*Board {
	out := make([]*Board, len(g.winOrder))
	for i, idx := range g.winOrder {
		out[i] = g.boards[idx]
	}

	return out
}

// WinOrder returns the input indices of the winning boards, in win order.
func (g *Game) WinOrder() []int {
	return append([]int(nil), g.winOrder...)
}

// FirstWinner returns the board that won first; ok is false if none won.
func (g *Game) FirstWinner() (b *Board, ok bool) {
	if len(g.winOrder) == 0 {
		return nil, false
	}

	return g.boards[g.winOrder[0]], true
}

// LastWinner returns the board that won last among the boards that won;
// ok is false if none won.
func (g *Game) LastWinner() (b *Board, ok bool) {
	if len(g.winOrder) == 0 {
		return nil, false
	}

	return g.boards[g.winOrder[len(g.winOrder)-1]], true
}
