// SPDX-License-Identifier: MIT

package diagnostic_test

import (
	"testing"

	"github.com/katalvlaran/submarine/diagnostic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const report = `00100
11110
10110
10111
10101
01111
00111
11100
10000
11001
00010
01010
`

func TestPowerReport(t *testing.T) {
	lines, err := diagnostic.Parse(report)
	require.NoError(t, err)
	require.Len(t, lines, 12)

	p, err := diagnostic.PowerReport(lines)
	require.NoError(t, err)
	assert.Equal(t, "10110", p.GammaBinary)
	assert.Equal(t, int64(22), p.Gamma())
	assert.Equal(t, "01001", p.EpsilonBinary)
	assert.Equal(t, int64(9), p.Epsilon())
	assert.Equal(t, int64(198), p.Consumption())
}

func TestLifeSupportReport(t *testing.T) {
	lines, err := diagnostic.Parse(report)
	require.NoError(t, err)

	l, err := diagnostic.LifeSupportReport(lines)
	require.NoError(t, err)
	assert.Equal(t, "10111", l.OxygenBinary)
	assert.Equal(t, int64(23), l.Oxygen())
	assert.Equal(t, "01010", l.CO2Binary)
	assert.Equal(t, int64(10), l.CO2())
	assert.Equal(t, int64(230), l.Rating())
}

func TestLifeSupportReport_Duplicates(t *testing.T) {
	_, err := diagnostic.LifeSupportReport([]string{"101", "101"})
	assert.ErrorIs(t, err, diagnostic.ErrNoRating)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"Empty", "\n\n", diagnostic.ErrEmpty},
		{"Ragged", "101\n10\n", diagnostic.ErrRagged},
		{"NotBinary", "101\n121\n", diagnostic.ErrParse},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lines, err := diagnostic.Parse(tc.text)
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, lines)
		})
	}

	_, err := diagnostic.PowerReport(nil)
	assert.ErrorIs(t, err, diagnostic.ErrEmpty)
}
