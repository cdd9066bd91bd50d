package systems

import (
	"math"

	"github.com/pthm-cable/snakesize/components"
)

// Advance moves the head speed*delta along heading, then pulls every trailing
// segment to exactly link from its already-moved predecessor, along the line
// toward the segment's old position. A segment that coincides with its moved
// predecessor takes the predecessor's old position instead.
//
// Cost is O(len(body)). delta is not clamped; a large delta moves the head
// many links in one step.
func Advance(body *components.Body, heading, speed, delta, link float64) {
	segs := body.Segments
	if len(segs) == 0 {
		return
	}

	sin, cos := math.Sincos(heading)
	prevOld := segs[0]
	segs[0].X += cos * speed * delta
	segs[0].Y += sin * speed * delta

	for i := 1; i < len(segs); i++ {
		old := segs[i]
		lead := segs[i-1]
		dx := old.X - lead.X
		dy := old.Y - lead.Y
		d := math.Hypot(dx, dy)
		if d == 0 {
			segs[i] = prevOld
		} else {
			segs[i] = components.Point{
				X: lead.X + dx/d*link,
				Y: lead.Y + dy/d*link,
			}
		}
		prevOld = old
	}
}

// Grow appends k copies of the tail. The copies separate naturally over the
// following ticks of Advance.
func Grow(body *components.Body, k int) {
	if k <= 0 || len(body.Segments) == 0 {
		return
	}
	tail := body.Tail()
	for i := 0; i < k; i++ {
		body.Segments = append(body.Segments, tail)
	}
}
