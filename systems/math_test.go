package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/snakesize/components"
)

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"pi stays pi", math.Pi, math.Pi},
		{"minus pi maps to pi", -math.Pi, math.Pi},
		{"three pi", 3 * math.Pi, math.Pi},
		{"minus three halves pi", -1.5 * math.Pi, 0.5 * math.Pi},
		{"just over pi", math.Pi + 0.1, -math.Pi + 0.1},
		{"small negative", -0.3, -0.3},
		{"many turns", 10*math.Pi + 0.2, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeAngle(tt.in)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if got <= -math.Pi || got > math.Pi {
				t.Errorf("NormalizeAngle(%v) = %v outside (-pi, pi]", tt.in, got)
			}
		})
	}
}

func TestDistanceAndAngle(t *testing.T) {
	a := components.Point{X: 0, Y: 0}
	b := components.Point{X: 3, Y: 4}

	if d := Distance(a, b); math.Abs(d-5) > 1e-12 {
		t.Errorf("Distance = %v, want 5", d)
	}
	if d := DistanceSq(a, b); d != 25 {
		t.Errorf("DistanceSq = %v, want 25", d)
	}
	if ang := AngleTo(a, components.Point{X: 0, Y: 10}); math.Abs(ang-math.Pi/2) > 1e-12 {
		t.Errorf("AngleTo = %v, want pi/2", ang)
	}
}
