package game

import (
	"math"
	"math/rand"
	"sync"

	"github.com/pthm-cable/snakesize/components"
	"github.com/pthm-cable/snakesize/config"
	"github.com/pthm-cable/snakesize/systems"
)

// Pointer holds the latest pointer position in viewport coordinates.
// Set may be called from any goroutine; the last write wins.
type Pointer struct {
	mu   sync.Mutex
	x, y float64
}

// NewPointer returns a pointer resting at (x, y).
func NewPointer(x, y float64) *Pointer {
	return &Pointer{x: x, y: y}
}

// Set records a new pointer position.
func (p *Pointer) Set(x, y float64) {
	p.mu.Lock()
	p.x, p.y = x, y
	p.mu.Unlock()
}

// Latest returns the most recent pointer position.
func (p *Pointer) Latest() (x, y float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.x, p.y
}

// AutoPilot steers the player without a human by running the bot policy on
// the player's snapshot and turning home when near the world edge.
type AutoPilot struct {
	policy    systems.BotPolicy
	rng       *rand.Rand
	worldSize float64
	margin    float64
	reach     float64 // pointer distance from the viewport centre
	cx, cy    float64
}

// NewAutoPilot creates an autopilot with its own RNG stream.
func NewAutoPilot(cfg *config.Config, seed int64) *AutoPilot {
	return &AutoPilot{
		policy:    systems.NewBotPolicy(cfg),
		rng:       rand.New(rand.NewSource(seed)),
		worldSize: cfg.World.Size,
		margin:    cfg.Bots.SensingRadius / 2,
		reach:     math.Min(cfg.Derived.ViewCenterX, cfg.Derived.ViewCenterY) / 2,
		cx:        cfg.Derived.ViewCenterX,
		cy:        cfg.Derived.ViewCenterY,
	}
}

// Drive picks the next pointer position from a snapshot and writes it to p.
// Outside of play it leaves the pointer untouched.
func (a *AutoPilot) Drive(s Snapshot, p *Pointer) {
	if s.State != StatePlaying || len(s.Player.Body) == 0 {
		return
	}

	head := s.Player.Body[0]
	heading := s.Player.Heading

	var target float64
	if a.nearEdge(head) {
		center := components.Point{X: a.worldSize / 2, Y: a.worldSize / 2}
		target = a.policy.Steer(heading, systems.AngleTo(head, center))
	} else {
		target, _ = a.policy.Decide(head, heading, s.Food, a.rng)
	}

	sin, cos := math.Sincos(target)
	p.Set(a.cx+cos*a.reach, a.cy+sin*a.reach)
}

func (a *AutoPilot) nearEdge(p components.Point) bool {
	return p.X < a.margin || p.Y < a.margin ||
		p.X > a.worldSize-a.margin || p.Y > a.worldSize-a.margin
}
