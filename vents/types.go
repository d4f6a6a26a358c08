// SPDX-License-Identifier: MIT

package vents

import (
	"errors"
	"fmt"
)

// Sentinel errors for vent map parsing and queries.
var (
	// ErrParse indicates a malformed point or segment line.
	ErrParse = errors.New("vents: parse error")
	// ErrUnsupportedGeometry indicates a segment that is not horizontal,
	// vertical or diagonal at exactly 45°.
	ErrUnsupportedGeometry = errors.New("vents: unsupported segment geometry")
	// ErrEmptyMap indicates there is no point to draw.
	ErrEmptyMap = errors.New("vents: map has no points")
	// ErrDiagramTooLarge indicates a point too far from the origin to draw.
	ErrDiagramTooLarge = errors.New("vents: diagram too large")
)

// MaxDiagramSide bounds each side of a Diagram, in cells.
const MaxDiagramSide = 4096

// Point is an integer grid coordinate. Equality is by value.
type Point struct {
	X, Y int
}

// String formats the point as "x,y", the input notation.
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Kind classifies a Segment.
type Kind int

const (
	// Horizontal segments have equal Y. A zero-length segment is Horizontal.
	Horizontal Kind = iota
	// Vertical segments have equal X.
	Vertical
	// Diagonal segments have |Δx| == |Δy| and are neither of the above.
	Diagonal
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Diagonal:
		return "diagonal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Segment is a classified line between two Points. Build it with
// NewSegment or ParseSegment; the zero value is a single point at the origin.
// Endpoints are fixed at construction so the classification cannot go stale.
type Segment struct {
	from, to Point
	kind     Kind
}

// Map is an immutable collection of segments.
type Map struct {
	segments []Segment
}
