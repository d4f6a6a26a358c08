// SPDX-License-Identifier: MIT

package vents

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/submarine/grid"
)

// NewMap builds a Map from a copy of segs, re-classifying every segment.
//
// Errors:
//   - ErrUnsupportedGeometry (wrapped with the segment index) if a segment is
//     not horizontal, vertical or 45° diagonal.
//
// Complexity: O(S) for S segments.
func NewMap(segs []Segment) (*Map, error) {
	out := make([]Segment, len(segs))
	for i, s := range segs {
		checked, err := NewSegment(s.from, s.to)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		out[i] = checked
	}

	return &Map{segments: out}, nil
}

// Parse builds a Map from one segment per non-blank line ("x1,y1 -> x2,y2").
// The first bad line aborts the parse; no partial map is returned.
//
// Errors (wrapped with the 1-based line number):
//   - ErrParse: missing arrow, missing comma or non-integer coordinate.
//   - ErrUnsupportedGeometry: a segment that is not H, V or 45° diagonal.
//
// Complexity: O(L) time and memory for L input lines.
func Parse(text string) (*Map, error) {
	var segs []Segment
	for i, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		s, err := ParseSegment(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		segs = append(segs, s)
	}

	return &Map{segments: segs}, nil
}

// Segments returns a copy of the segments in input order.
func (m *Map) Segments() []Segment {
	return append([]Segment(nil), m.segments...)
}

// Points returns every rasterized point of the selected segments, in segment order.
// Points covered by several segments appear several times.
func (m *Map) Points(opts ...Option) []Point {
	o := gatherOptions(opts)
	var pts []Point
	for _, s := range m.segments {
		if !o.diagonals && !s.IsAxisAligned() {
			continue
		}
		pts = append(pts, s.Points()...)
	}

	return pts
}

// Counts returns how many selected segments cover each point.
func (m *Map) Counts(opts ...Option) map[Point]int {
	counts := make(map[Point]int)
	for _, p := range m.Points(opts...) {
		counts[p]++
	}

	return counts
}

// Overlaps returns the number of distinct points covered at least threshold
// times (default 2), over every segment unless WithDiagonals(false) is given.
func (m *Map) Overlaps(opts ...Option) int {
	o := gatherOptions(opts)
	n := 0
	for _, c := range m.Counts(opts...) {
		if c >= o.threshold {
			n++
		}
	}

	return n
}

// OverlapsAxisAligned counts overlaps among horizontal and vertical segments only.
func (m *Map) OverlapsAxisAligned() int {
	return m.Overlaps(WithDiagonals(false))
}

// OverlapsAll counts overlaps among every segment.
func (m *Map) OverlapsAll() int {
	return m.Overlaps(WithDiagonals(true))
}

// Diagram renders the coverage counts the way the puzzle text draws them:
// (0,0) top-left, '.' for uncovered points, the count otherwise ('#' above 9).
// The drawing spans (0,0) to the largest coordinate on each axis, at most
// MaxDiagramSide cells per side.
//
// Errors:
//   - ErrEmptyMap: nothing is selected.
//   - grid.ErrOutOfRange: a point has a negative coordinate.
//   - ErrDiagramTooLarge: a point lies at or beyond MaxDiagramSide on either axis.
//
// Complexity: O(P + W×H) for P points on a W×H drawing.
func (m *Map) Diagram(opts ...Option) (string, error) {
	pts := m.Points(opts...)
	if len(pts) == 0 {
		return "", ErrEmptyMap
	}
	maxX, maxY := 0, 0
	for _, p := range pts {
		if p.X < 0 || p.Y < 0 {
			return "", fmt.Errorf("vents: diagram at %v: negative coordinate: %w", p, grid.ErrOutOfRange)
		}
		if p.X >= MaxDiagramSide || p.Y >= MaxDiagramSide {
			return "", fmt.Errorf("vents: diagram at %v: limit is %d per side: %w", p, MaxDiagramSide, ErrDiagramTooLarge)
		}
		maxX, maxY = max(maxX, p.X), max(maxY, p.Y)
	}
	g, err := grid.Zero(maxX+1, maxY+1)
	if err != nil {
		return "", err
	}
	for _, p := range pts {
		_ = g.Add(p.X, p.Y, 1) // bounds checked above
	}

	return g.Render(glyph), nil
}

func glyph(count int) byte {
	switch {
	case count == 0:
		return '.'
	case count > 9:
		return '#'
	default:
		return byte('0' + count)
	}
}
