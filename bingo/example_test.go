// SPDX-License-Identifier: MIT

package bingo_test

import (
	"fmt"

	"github.com/katalvlaran/submarine/bingo"
)

////////////////////////////////////////////////////////////////////////////////
// Example: first and last winner
////////////////////////////////////////////////////////////////////////////////

// ExampleGame_FirstWinner replays a small 3×3 game.
//
// Scenario:
//
//   - Board A completes its middle row on draw 6.
//   - Board B completes its first column on draw 8, later.
func ExampleGame_FirstWinner() {
	g, err := bingo.Parse(`4,5,6,1,7,8

1 2 3
4 5 6
7 8 9

1 9 9
7 9 9
8 9 9`)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	first, _ := g.FirstWinner()
	last, _ := g.LastWinner()
	for _, b := range []*bingo.Board{first, last} {
		score, _ := b.Score()
		fmt.Printf("won on %d, unmarked=%d, score=%d\n", b.State().DrawValue, b.UnmarkedSum(), score)
	}
	// Output:
	// won on 6, unmarked=30, score=180
	// won on 8, unmarked=54, score=432
}
