// SPDX-License-Identifier: MIT

// Package lanternfish simulates an exponentially growing lanternfish school.
//
// Fish are counted per timer value instead of one by one: a day rotates the
// nine buckets, fish at 0 reset to ResetTimer and spawn as many newborns at
// NewbornTimer. Memory is O(1) and a day costs O(1), so 256 days is cheap.
package lanternfish

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// ResetTimer is a parent's timer after spawning.
	ResetTimer = 6
	// NewbornTimer is a newborn's initial timer.
	NewbornTimer = 8
)

// ErrParse indicates a timer that is not an integer in [0, NewbornTimer].
var ErrParse = errors.New("lanternfish: parse error")

// Population counts fish per timer value.
type Population struct {
	counts [NewbornTimer + 1]int64
	day    int
}

// Parse reads a comma-separated list of timers, e.g. "3,4,3,1,2".
func Parse(text string) (*Population, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty input", ErrParse)
	}
	p := &Population{}
	for i, tok := range strings.Split(text, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil || v < 0 || v > NewbornTimer {
			return nil, fmt.Errorf("%w: timer %d: %q", ErrParse, i, tok)
		}
		p.counts[v]++
	}

	return p, nil
}

// Evolve advances the simulation by one day.
func (p *Population) Evolve() {
	spawning := p.counts[0]
	copy(p.counts[:], p.counts[1:])
	p.counts[NewbornTimer] = spawning
	p.counts[ResetTimer] += spawning
	p.day++
}

// EvolveDays advances the simulation by n days; n <= 0 is a no-op.
func (p *Population) EvolveDays(n int) {
	for i := 0; i < n; i++ {
		p.Evolve()
	}
}

// Day returns how many days have been simulated.
func (p *Population) Day() int {
	return p.day
}

// Total returns the number of fish.
func (p *Population) Total() int64 {
	var total int64
	for _, c := range p.counts {
		total += c
	}

	return total
}

// Counts returns the number of fish per timer value, index = timer.
func (p *Population) Counts() []int64 {
	return append([]int64(nil), p.counts[:]...)
}

// Clone returns an independent copy.
func (p *Population) Clone() *Population {
	c := *p

	return &c
}
