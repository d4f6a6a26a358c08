// SPDX-License-Identifier: MIT

// Package sonar counts how often a sonar sweep's depth readings increase.
package sonar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrParse indicates a reading that is not an integer.
	ErrParse = errors.New("sonar: parse error")
	// ErrBadWindow indicates a sliding window smaller than one reading.
	ErrBadWindow = errors.New("sonar: window must be >= 1")
)

// Parse reads one depth per non-blank line.
func Parse(text string) ([]int, error) {
	var depths []int
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		d, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrParse, i+1, line)
		}
		depths = append(depths, d)
	}

	return depths, nil
}

// CountIncreases returns how many readings are larger than the previous one.
func CountIncreases(depths []int) int {
	n, _ := CountWindowIncreases(depths, 1)

	return n
}

// CountWindowIncreases compares sums of consecutive windows of the given size
// and returns how many are larger than the previous window.
//
// Two overlapping windows share window-1 readings, so comparing their sums
// reduces to comparing depths[i] with depths[i+window].
func CountWindowIncreases(depths []int, window int) (int, error) {
	if window < 1 {
		return 0, ErrBadWindow
	}
	n := 0
	for i := 0; i+window < len(depths); i++ {
		if depths[i+window] > depths[i] {
			n++
		}
	}

	return n, nil
}
