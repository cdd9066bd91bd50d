package game

import (
	"testing"

	"github.com/pthm-cable/snakesize/config"
	"github.com/pthm-cable/snakesize/leaderboard"
)

func init() {
	config.MustInit("")
}

// quietConfig returns defaults with no bots, no food and a deterministic
// bot policy, so tests place exactly what they need.
func quietConfig(mutate func(cfg *config.Config)) *config.Config {
	cfg := config.Default()
	cfg.Bots.Count = 0
	cfg.Food.Count = 0
	cfg.Bots.SeekChance = 0
	cfg.Bots.WanderChance = 0
	if mutate != nil {
		mutate(cfg)
	}
	return cfg
}

func newTestGame(t *testing.T, cfg *config.Config) (*Game, *SteppedClock, *leaderboard.MemoryStore) {
	t.Helper()
	clock := NewSteppedClock(cfg.Derived.FrameInterval)
	store := &leaderboard.MemoryStore{}
	g, err := NewGame(Options{Seed: 1, Config: cfg, Store: store, Clock: clock})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g, clock, store
}

func startTestGame(t *testing.T, cfg *config.Config) (*Game, *SteppedClock, *leaderboard.MemoryStore) {
	t.Helper()
	g, clock, store := newTestGame(t, cfg)
	if !g.Start("tester") {
		t.Fatal("Start rejected a valid name")
	}
	return g, clock, store
}

func advance(g *Game, clock *SteppedClock) Snapshot {
	clock.Advance()
	return g.Update()
}
