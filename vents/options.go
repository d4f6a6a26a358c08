// SPDX-License-Identifier: MIT

package vents

import "fmt"

// Defaults for overlap queries.
const (
	// DefaultThreshold is the multiplicity from which a point counts as an overlap.
	DefaultThreshold = 2
	// DefaultDiagonals controls whether diagonal segments are rasterized.
	DefaultDiagonals = true
)

// Option configures an overlap query.
type Option func(*options)

type options struct {
	diagonals bool
	threshold int
}

// WithDiagonals includes (true) or skips (false) diagonal segments.
func WithDiagonals(on bool) Option {
	return func(o *options) {
		o.diagonals = on
	}
}

// WithThreshold sets the minimum multiplicity counted as an overlap.
// Panics if n < 1 (programmer error).
func WithThreshold(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("vents: WithThreshold(%d): threshold must be >= 1", n))
	}

	return func(o *options) {
		o.threshold = n
	}
}

func gatherOptions(opts []Option) options {
	o := options{diagonals: DefaultDiagonals, threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
