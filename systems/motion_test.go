package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/snakesize/components"
)

const testLink = 10.0

func assertSpacing(t *testing.T, body components.Body, link float64) {
	t.Helper()
	for i := 1; i < body.Len(); i++ {
		d := Distance(body.Segments[i-1], body.Segments[i])
		if math.Abs(d-link) > 1e-6 {
			t.Fatalf("segments %d-%d spaced %f, want %f", i-1, i, d, link)
		}
	}
}

func TestAdvanceHeadAndSpacing(t *testing.T) {
	body := components.NewBody(components.Point{X: 100, Y: 100}, 0, testLink, 10)

	Advance(&body, 0, 3, 1, testLink)

	head := body.Head()
	if math.Abs(head.X-103) > 1e-9 || math.Abs(head.Y-100) > 1e-9 {
		t.Fatalf("head = (%f, %f), want (103, 100)", head.X, head.Y)
	}
	for i := 1; i < body.Len(); i++ {
		want := 103 - testLink*float64(i)
		if math.Abs(body.Segments[i].X-want) > 1e-9 || math.Abs(body.Segments[i].Y-100) > 1e-9 {
			t.Errorf("segment %d = %+v, want (%f, 100)", i, body.Segments[i], want)
		}
	}
	assertSpacing(t, body, testLink)
}

func TestAdvanceScalesWithDelta(t *testing.T) {
	body := components.NewBody(components.Point{X: 0, Y: 0}, math.Pi/2, testLink, 3)

	Advance(&body, math.Pi/2, 3, 2.5, testLink)

	if got := body.Head().Y; math.Abs(got-7.5) > 1e-9 {
		t.Errorf("head.Y = %f, want 7.5", got)
	}
}

func TestAdvanceKeepsSpacingWhileTurning(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	body := components.NewBody(components.Point{X: 500, Y: 500}, 0, testLink, 25)
	heading := 0.0

	for tick := 0; tick < 500; tick++ {
		heading += (rng.Float64() - 0.5) * 0.6
		Advance(&body, heading, 3, 0.5+rng.Float64(), testLink)
		assertSpacing(t, body, testLink)
	}
}

func TestAdvanceCoincidentSegmentTakesPredecessorOldPosition(t *testing.T) {
	body := components.Body{Segments: []components.Point{{X: 0, Y: 0}, {X: 3, Y: 0}}}

	Advance(&body, 0, 3, 1, testLink)

	if body.Segments[1] != (components.Point{X: 0, Y: 0}) {
		t.Errorf("coincident segment = %+v, want predecessor's old (0, 0)", body.Segments[1])
	}
}

func TestAdvanceEmptyBody(t *testing.T) {
	body := components.Body{}
	Advance(&body, 0, 3, 1, testLink) // must not panic
	if body.Len() != 0 {
		t.Errorf("empty body grew to %d", body.Len())
	}
}

func TestGrowDuplicatesTail(t *testing.T) {
	body := components.NewBody(components.Point{X: 100, Y: 100}, 0, testLink, 10)
	tail := body.Tail()

	Grow(&body, 3)

	if body.Len() != 13 {
		t.Fatalf("length = %d, want 13", body.Len())
	}
	for i := 10; i < 13; i++ {
		if body.Segments[i] != tail {
			t.Errorf("segment %d = %+v, want tail copy %+v", i, body.Segments[i], tail)
		}
	}

	// One tick of propagation spaces the copies out again
	Advance(&body, 0, 3, 1, testLink)
	assertSpacing(t, body, testLink)
}

func TestGrowthEventsAccumulate(t *testing.T) {
	body := components.NewBody(components.Point{X: 100, Y: 100}, 0, testLink, 10)
	events := 0
	for tick := 0; tick < 50; tick++ {
		if tick%7 == 0 {
			Grow(&body, 1)
			events++
		}
		Advance(&body, 0.01*float64(tick), 3, 1, testLink)
	}
	if body.Len() != 10+events {
		t.Errorf("length = %d, want %d", body.Len(), 10+events)
	}
}

func TestGrowIgnoresNonPositive(t *testing.T) {
	body := components.NewBody(components.Point{}, 0, testLink, 4)
	Grow(&body, 0)
	Grow(&body, -2)
	if body.Len() != 4 {
		t.Errorf("length = %d, want 4", body.Len())
	}
}
