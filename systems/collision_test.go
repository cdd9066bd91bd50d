package systems

import (
	"testing"

	"github.com/pthm-cable/snakesize/components"
)

func TestOutOfBounds(t *testing.T) {
	const size = 3000.0
	tests := []struct {
		name string
		p    components.Point
		want bool
	}{
		{"origin is inside", components.Point{X: 0, Y: 0}, false},
		{"far corner is inside", components.Point{X: size, Y: size}, false},
		{"centre", components.Point{X: 1500, Y: 1500}, false},
		{"negative x", components.Point{X: -0.001, Y: 10}, true},
		{"negative y", components.Point{X: 10, Y: -3}, true},
		{"x past edge", components.Point{X: size + 0.01, Y: 10}, true},
		{"y past edge", components.Point{X: 10, Y: size + 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutOfBounds(tt.p, size); got != tt.want {
				t.Errorf("OutOfBounds(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestCollides(t *testing.T) {
	other := components.NewBody(components.Point{X: 200, Y: 200}, 0, 10, 10).Segments // x 110..200, y 200
	far := components.NewBody(components.Point{X: 900, Y: 900}, 0, 10, 10).Segments

	tests := []struct {
		name      string
		head      components.Point
		obstacles [][]components.Point
		want      bool
	}{
		{"no obstacles", components.Point{X: 200, Y: 200}, nil, false},
		{"on a segment", components.Point{X: 150, Y: 200}, [][]components.Point{other}, true},
		{"inside radius", components.Point{X: 150, Y: 204.9}, [][]components.Point{other}, true},
		{"exactly at radius", components.Point{X: 150, Y: 205}, [][]components.Point{other}, false},
		{"outside radius", components.Point{X: 150, Y: 206}, [][]components.Point{other}, false},
		{"second obstacle hit", components.Point{X: 900, Y: 901}, [][]components.Point{other, far}, true},
		{"between segments", components.Point{X: 155, Y: 204}, [][]components.Point{other}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collides(tt.head, tt.obstacles, 5); got != tt.want {
				t.Errorf("Collides(%+v) = %v, want %v", tt.head, got, tt.want)
			}
		})
	}
}
