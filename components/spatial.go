package components

// Point is a world-space coordinate.
type Point struct {
	X, Y float64
}

// Food is a collectible item. Immutable once spawned; identified only by
// position and its place in the food slice.
type Food struct {
	Position Point
	Color    Color
	Radius   float64
}
