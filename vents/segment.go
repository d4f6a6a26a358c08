// SPDX-License-Identifier: MIT

package vents

import (
	"fmt"
	"strconv"
	"strings"
)

const arrow = " -> "

// NewSegment classifies the segment from a to b.
//
// Errors:
//   - ErrUnsupportedGeometry unless it is horizontal, vertical or 45° diagonal.
//
// Complexity: O(1).
func NewSegment(a, b Point) (Segment, error) {
	dx, dy := abs(b.X-a.X), abs(b.Y-a.Y)
	var k Kind
	switch {
	case a.Y == b.Y:
		k = Horizontal
	case a.X == b.X:
		k = Vertical
	case dx == dy:
		k = Diagonal
	default:
		return Segment{}, fmt.Errorf("%v -> %v: %w", a, b, ErrUnsupportedGeometry)
	}

	return Segment{from: a, to: b, kind: k}, nil
}

// ParsePoint parses "x,y". Errors: ErrParse on a missing comma or a
// non-integer coordinate.
func ParsePoint(s string) (Point, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return Point{}, fmt.Errorf("%w: point %q: missing comma", ErrParse, s)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return Point{}, fmt.Errorf("%w: point %q: bad x", ErrParse, s)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return Point{}, fmt.Errorf("%w: point %q: bad y", ErrParse, s)
	}

	return Point{X: x, Y: y}, nil
}

// ParseSegment parses "x1,y1 -> x2,y2" and classifies the result.
//
// Errors:
//   - ErrParse on a missing arrow, missing comma or non-integer coordinate.
//   - ErrUnsupportedGeometry from NewSegment.
//
// Complexity: O(len(line)).
func ParseSegment(line string) (Segment, error) {
	left, right, ok := strings.Cut(line, arrow)
	if !ok {
		return Segment{}, fmt.Errorf("%w: segment %q: missing %q", ErrParse, line, strings.TrimSpace(arrow))
	}
	a, err := ParsePoint(left)
	if err != nil {
		return Segment{}, err
	}
	b, err := ParsePoint(right)
	if err != nil {
		return Segment{}, err
	}

	return NewSegment(a, b)
}

// From returns the first endpoint.
func (s Segment) From() Point {
	return s.from
}

// To returns the second endpoint.
func (s Segment) To() Point {
	return s.to
}

// Kind returns the segment classification.
func (s Segment) Kind() Kind {
	return s.kind
}

// IsAxisAligned reports whether the segment is horizontal or vertical.
func (s Segment) IsAxisAligned() bool {
	return s.kind == Horizontal || s.kind == Vertical
}

// Reverse returns the same segment with its endpoints swapped.
func (s Segment) Reverse() Segment {
	return Segment{from: s.to, to: s.from, kind: s.kind}
}

// Len returns the number of integer points on the segment, ends included.
func (s Segment) Len() int {
	return max(abs(s.to.X-s.from.X), abs(s.to.Y-s.from.Y)) + 1
}

// Points rasterizes the segment into its integer points, both ends included.
//
// Horizontal and vertical segments come out in ascending order regardless of
// the endpoint order. Diagonals start at From and step toward To, producing
// exactly |Δx|+1 points.
func (s Segment) Points() []Point {
	pts := make([]Point, 0, s.Len())
	switch s.kind {
	case Horizontal:
		lo, hi := minmax(s.from.X, s.to.X)
		for x := lo; x <= hi; x++ {
			pts = append(pts, Point{X: x, Y: s.from.Y})
		}
	case Vertical:
		lo, hi := minmax(s.from.Y, s.to.Y)
		for y := lo; y <= hi; y++ {
			pts = append(pts, Point{X: s.from.X, Y: y})
		}
	case Diagonal:
		sx, sy := sign(s.to.X-s.from.X), sign(s.to.Y-s.from.Y)
		p := s.from
		for i := 0; i < s.Len(); i++ {
			pts = append(pts, p)
			p.X += sx
			p.Y += sy
		}
	}

	return pts
}

// String formats the segment in input notation.
func (s Segment) String() string {
	return s.from.String() + arrow + s.to.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func minmax(a, b int) (int, int) {
	if a > b {
		return b, a
	}

	return a, b
}
