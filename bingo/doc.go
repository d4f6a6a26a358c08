// SPDX-License-Identifier: MIT

// Package bingo replays a bingo draw sequence against a set of square
// boards and answers "first board to win" and "last board to win".
//
// What:
//
//   - Board: an N×N number grid (grid.Grid) plus a parallel marked grid and
//     a win State {NotWon, Won(DrawIndex, DrawValue)}.
//   - Game: ordered draws and boards; the replay runs once in New/Parse and
//     its result (win order) is cached.
//
// Replay, for each draw v at index i:
//
//  1. mark v on every board that has not won yet;
//  2. then, in board input order, every not-yet-won board with a fully
//     marked row or column is credited Won(i, v) (diagonals never count);
//  3. stop as soon as every board has won.
//
// Boards that win on the same draw share the same DrawValue and are ranked
// by input order. A board that never wins is never a "first" or "last"
// winner and its Score returns ErrInvalidState.
//
// Input format:
//
//	7,4,9,5,11,17
//
//	22 13 17 11  0
//	 8  2 23  4 24
//	...
//
// Errors:
//
//   - ErrParse: empty draw line, non-integer token, ragged or non-square board.
//   - ErrNotSquare: board rows != columns (always wrapped with ErrParse).
//   - ErrNoBoards: game without any board.
//   - ErrInvalidState: score requested on a board that never won.
//
// Complexity:
//
//   - New/Parse: O(D × B × N²) worst case for D draws and B boards of side N.
//   - FirstWinner/LastWinner: O(1).
package bingo
