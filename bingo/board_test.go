// SPDX-License-Identifier: MIT

package bingo_test

import (
	"testing"

	"github.com/katalvlaran/submarine/bingo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseBoard_Errors verifies every malformed board is rejected with ErrParse.
func TestParseBoard_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		also error
	}{
		{"Empty", "   \n", nil},
		{"NonInteger", "1 2\n3 x", nil},
		{"Ragged", "1 2\n3", nil},
		{"NotSquare", "1 2 3\n4 5 6", bingo.ErrNotSquare},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := bingo.ParseBoard(tc.text)
			assert.ErrorIs(t, err, bingo.ErrParse)
			if tc.also != nil {
				assert.ErrorIs(t, err, tc.also)
			}
			assert.Nil(t, b, "no partial board on error")
		})
	}
}

// TestNewBoard_SizeIsInputDefined checks that boards are not hardcoded to 5×5.
func TestNewBoard_SizeIsInputDefined(t *testing.T) {
	b, err := bingo.NewBoard([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.NoError(t, err)
	assert.Equal(t, 3, b.Size())
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, b.Numbers())
	assert.False(t, b.HasWon())
	assert.Equal(t, bingo.State{}, b.State())
}

// TestBoard_MarkIsIdempotent checks that repeated or absent values never
// change the marked grid beyond the first mark.
func TestBoard_MarkIsIdempotent(t *testing.T) {
	b, err := bingo.ParseBoard("1 2\n3 4")
	require.NoError(t, err)

	assert.True(t, b.Mark(2))
	before := b.Marked()
	assert.True(t, b.Mark(2))
	assert.Equal(t, before, b.Marked(), "re-marking must be a no-op")

	assert.False(t, b.Mark(5))
	assert.Equal(t, before, b.Marked(), "absent value must be a no-op")

	assert.True(t, b.IsMarked(0, 1))
	assert.False(t, b.IsMarked(1, 1))
	assert.False(t, b.IsMarked(7, 7))
	assert.Equal(t, "Board(1 *2 | 3 4)", b.String())
}

// TestBoard_Find returns positions for present values and ok=false otherwise.
func TestBoard_Find(t *testing.T) {
	b, err := bingo.ParseBoard("1 2\n3 4")
	require.NoError(t, err)

	row, col, ok := b.Find(3)
	assert.True(t, ok)
	assert.Equal(t, 1, row)
	assert.Equal(t, 0, col)

	_, _, ok = b.Find(9)
	assert.False(t, ok)
}

// TestBoard_Complete covers rows, columns and the diagonal that never counts.
func TestBoard_Complete(t *testing.T) {
	cases := []struct {
		name  string
		marks []int
		want  bool
	}{
		{"None", nil, false},
		{"Diagonal", []int{1, 4}, false},
		{"TopRow", []int{1, 2}, true},
		{"BottomRow", []int{3, 4}, true},
		{"LeftColumn", []int{1, 3}, true},
		{"RightColumn", []int{2, 4}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := bingo.ParseBoard("1 2\n3 4")
			require.NoError(t, err)
			for _, v := range tc.marks {
				b.Mark(v)
			}
			assert.Equal(t, tc.want, b.Complete())
		})
	}
}

// TestBoard_ScoreOnUnwonBoard must fail with ErrInvalidState.
func TestBoard_ScoreOnUnwonBoard(t *testing.T) {
	b, err := bingo.ParseBoard("1 2\n3 4")
	require.NoError(t, err)
	b.Mark(1)
	b.Mark(2)

	_, err = b.Score()
	assert.ErrorIs(t, err, bingo.ErrInvalidState, "only a replay credits a win")
}

// TestBoard_SumsPartitionTotal checks unmarked + marked == total at every step.
func TestBoard_SumsPartitionTotal(t *testing.T) {
	b, err := bingo.ParseBoard(canonicalBoards[0])
	require.NoError(t, err)
	total := b.Sum()
	for _, v := range canonicalDraws {
		b.Mark(v)
		assert.Equal(t, total, b.UnmarkedSum()+b.MarkedSum(), "after draw %d", v)
	}
}
