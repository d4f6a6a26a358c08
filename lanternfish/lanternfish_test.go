// SPDX-License-Identifier: MIT

package lanternfish_test

import (
	"testing"

	"github.com/katalvlaran/submarine/lanternfish"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvolve_FirstDays(t *testing.T) {
	p, err := lanternfish.Parse("3,4,3,1,2")
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 1, 2, 1, 0, 0, 0, 0}, p.Counts())

	// Day 1: 2,3,2,0,1
	p.Evolve()
	assert.Equal(t, []int64{1, 1, 2, 1, 0, 0, 0, 0, 0}, p.Counts())
	// Day 2: 1,2,1,6,0,8
	p.Evolve()
	assert.Equal(t, []int64{1, 2, 1, 0, 0, 0, 1, 0, 1}, p.Counts())
	assert.Equal(t, 2, p.Day())
}

func TestEvolveDays_Totals(t *testing.T) {
	p, err := lanternfish.Parse("3,4,3,1,2\n")
	require.NoError(t, err)

	p.EvolveDays(18)
	assert.Equal(t, int64(26), p.Total())

	long := p.Clone()
	p.EvolveDays(80 - 18)
	assert.Equal(t, int64(5934), p.Total())

	long.EvolveDays(256 - 18)
	assert.Equal(t, int64(26984457539), long.Total())
	assert.Equal(t, 256, long.Day())
	assert.Equal(t, 80, p.Day(), "clone is independent")
}

func TestParse_Errors(t *testing.T) {
	for _, text := range []string{"", "3,x", "3,9", "-1", "3,,4"} {
		t.Run(text, func(t *testing.T) {
			p, err := lanternfish.Parse(text)
			assert.ErrorIs(t, err, lanternfish.ErrParse)
			assert.Nil(t, p)
		})
	}
}
