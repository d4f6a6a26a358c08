// SPDX-License-Identifier: MIT

package grid_test

import (
	"testing"

	"github.com/katalvlaran/submarine/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// New / Zero / Parse
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"Nil", nil, grid.ErrEmptyGrid},
		{"EmptyRows", [][]int{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.grid)
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, g)
		})
	}
}

// TestNew_DeepCopy ensures later mutation of the source slice does not leak in.
func TestNew_DeepCopy(t *testing.T) {
	src := [][]int{{1, 2}, {3, 4}}
	g, err := grid.New(src)
	require.NoError(t, err)

	src[0][0] = 99
	v, err := g.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

// TestZero checks shape validation and zero fill.
func TestZero(t *testing.T) {
	_, err := grid.Zero(0, 3)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)

	g, err := grid.Zero(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 2, g.Height)
	assert.Equal(t, 6, g.Len())
	assert.Equal(t, 0, g.Sum())
}

// TestParse covers irregular spacing and the error paths.
func TestParse(t *testing.T) {
	g, err := grid.Parse("\n22 13 17\n 8  2 23\n21  9 14\n\n")
	require.NoError(t, err)
	assert.True(t, g.IsSquare())
	assert.Equal(t, [][]int{{22, 13, 17}, {8, 2, 23}, {21, 9, 14}}, g.Rows())

	_, err = grid.Parse("1 2\n3 x")
	assert.ErrorIs(t, err, grid.ErrBadCell)

	_, err = grid.Parse("1 2\n3")
	assert.ErrorIs(t, err, grid.ErrNonRectangular)

	_, err = grid.Parse("  \n\n")
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

//----------------------------------------------------------------------------//
// Accessors
//----------------------------------------------------------------------------//

// TestAccessors_OutOfRange verifies that At/Set/Add never panic.
func TestAccessors_OutOfRange(t *testing.T) {
	g, err := grid.Zero(2, 2)
	require.NoError(t, err)

	for _, xy := range [][2]int{{-1, 0}, {2, 0}, {0, 2}, {0, -1}} {
		_, err := g.At(xy[0], xy[1])
		assert.ErrorIs(t, err, grid.ErrOutOfRange)
		assert.ErrorIs(t, g.Set(xy[0], xy[1], 1), grid.ErrOutOfRange)
		assert.ErrorIs(t, g.Add(xy[0], xy[1], 1), grid.ErrOutOfRange)
	}
}

// TestRowColumnFind checks row/column extraction and value lookup.
func TestRowColumnFind(t *testing.T) {
	g, err := grid.New([][]int{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)

	assert.Equal(t, []int{4, 5, 6}, g.Row(1))
	assert.Equal(t, []int{3, 6}, g.Column(2))
	assert.Nil(t, g.Row(2))
	assert.Nil(t, g.Column(-1))

	x, y, ok := g.Find(5)
	assert.True(t, ok)
	assert.Equal(t, 1, x)
	assert.Equal(t, 1, y)

	_, _, ok = g.Find(42)
	assert.False(t, ok, "absent value is reported with ok=false")

	assert.Equal(t, 21, g.Sum())
	assert.Equal(t, 3, g.Count(func(v int) bool { return v%2 == 0 }))
}

// TestSetAddRender verifies mutation and text rendering.
func TestSetAddRender(t *testing.T) {
	g, err := grid.Zero(3, 2)
	require.NoError(t, err)
	require.NoError(t, g.Set(0, 0, 1))
	require.NoError(t, g.Add(2, 1, 2))
	require.NoError(t, g.Add(2, 1, 1))

	out := g.Render(func(v int) byte {
		if v == 0 {
			return '.'
		}
		return byte('0' + v)
	})
	assert.Equal(t, "1..\n..3", out)
}

// TestCoordinate checks the row-major round trip.
func TestCoordinate(t *testing.T) {
	g, err := grid.Zero(4, 3)
	require.NoError(t, err)
	x, y := g.Coordinate(9)
	assert.Equal(t, 1, x)
	assert.Equal(t, 2, y)
}
