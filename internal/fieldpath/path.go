package fieldpath

import (
	"slices"
	"strings"
)

// RootName is how the root is written in rendered paths.
const RootName = "<root>"

// Path is an ordered, immutable sequence of segments. The zero Path is the root.
type Path struct {
	segments []Segment
	source   string
}

// NewPath builds a Path from segments.
func NewPath(segs ...Segment) Path {
	p := Path{segments: slices.Clone(segs)}
	p.source = p.Canonical()

	return p
}

// Len returns the number of segments.
func (p Path) Len() int { return len(p.segments) }

// IsRoot reports whether the path has no segments.
func (p Path) IsRoot() bool { return len(p.segments) == 0 }

// Segment returns the i-th segment.
func (p Path) Segment(i int) Segment { return p.segments[i] }

// Segments returns a copy of the segments.
func (p Path) Segments() []Segment { return slices.Clone(p.segments) }

// Source returns the string the path was parsed from.
func (p Path) Source() string { return p.source }

// Iterating reports whether any segment is a projection.
func (p Path) Iterating() bool {
	return slices.ContainsFunc(p.segments, func(s Segment) bool { return s.kind.Iterating() })
}

// Canonical returns the path in parseable form, without the root marker.
func (p Path) Canonical() string {
	var sb strings.Builder

	for i, seg := range p.segments {
		if i > 0 && !seg.bracketed() {
			sb.WriteByte('.')
		}

		sb.WriteString(seg.canonical())
	}

	return sb.String()
}

// String renders the path for diagnostics, e.g. "<root>.items[0].id".
func (p Path) String() string {
	return render(p.segments)
}

// Equal reports whether both paths have the same segments.
func (p Path) Equal(other Path) bool {
	return p.Canonical() == other.Canonical()
}

func render(segs []Segment) string {
	var sb strings.Builder

	sb.WriteString(RootName)

	for _, seg := range segs {
		if !seg.bracketed() {
			sb.WriteByte('.')
		}

		sb.WriteString(seg.canonical())
	}

	return sb.String()
}
