package systems

import "github.com/pthm-cable/snakesize/components"

// OutOfBounds reports whether p lies outside [0, size] on either axis.
// The edges themselves are inside.
func OutOfBounds(p components.Point, size float64) bool {
	return p.X < 0 || p.X > size || p.Y < 0 || p.Y > size
}

// Collides reports whether any segment of any obstacle body lies strictly
// within radius of head. The caller excludes the moving organism's own body.
// Brute force over every segment; the arena holds at most a few thousand.
func Collides(head components.Point, obstacles [][]components.Point, radius float64) bool {
	r2 := radius * radius
	for _, body := range obstacles {
		for _, seg := range body {
			if DistanceSq(head, seg) < r2 {
				return true
			}
		}
	}
	return false
}
