package components

import "math"

// Body is the trailing segment chain of an organism, head first.
type Body struct {
	Segments []Point
}

// NewBody lays out length segments backward from head along heading,
// spaced link apart.
func NewBody(head Point, heading, link float64, length int) Body {
	sin, cos := math.Sincos(heading)
	segs := make([]Point, length)
	for i := range segs {
		segs[i] = Point{
			X: head.X - cos*link*float64(i),
			Y: head.Y - sin*link*float64(i),
		}
	}
	return Body{Segments: segs}
}

// Head returns the first segment. The body must not be empty.
func (b *Body) Head() Point {
	return b.Segments[0]
}

// Tail returns the last segment. The body must not be empty.
func (b *Body) Tail() Point {
	return b.Segments[len(b.Segments)-1]
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return len(b.Segments)
}

// Clone returns a copy that shares no memory with b.
func (b *Body) Clone() []Point {
	out := make([]Point, len(b.Segments))
	copy(out, b.Segments)
	return out
}
