// Package systems implements the per-tick simulation rules: motion, collision,
// food lifecycle and the bot steering policy.
package systems

import (
	"math"

	"github.com/pthm-cable/snakesize/components"
)

// Rand is the randomness the simulation draws from. *rand.Rand satisfies it;
// tests substitute scripted sources to force policy branches.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NormalizeAngle wraps an angle to (-Pi, Pi].
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// DistanceSq returns the squared distance between two points.
func DistanceSq(a, b components.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b components.Point) float64 {
	return math.Sqrt(DistanceSq(a, b))
}

// AngleTo returns the heading pointing from a to b.
func AngleTo(a, b components.Point) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// within reports whether b lies strictly inside radius of a.
func within(a, b components.Point, radius float64) bool {
	return DistanceSq(a, b) < radius*radius
}
