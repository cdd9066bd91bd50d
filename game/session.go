package game

import (
	"log/slog"
	"strings"

	"github.com/pthm-cable/snakesize/components"
	"github.com/pthm-cable/snakesize/telemetry"
)

// Start begins a session for name. It returns false, leaving the game in the
// menu, when name is empty after trimming whitespace or no menu is showing.
func (g *Game) Start(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || g.state != StateMenu {
		return false
	}

	g.resetWorld()
	g.name = name
	g.spawnPlayer()
	g.spawnBots()
	g.food = g.foodMgr.Generate(g.cfg.Food.Count)

	body, _, _ := g.playerMap.Get(g.player)
	g.camera.Follow(body.Head())
	g.pointer.Set(g.cfg.Derived.ViewCenterX, g.cfg.Derived.ViewCenterY)

	g.lastTick = g.clock.Now()
	g.sessionTick = g.tick
	g.state = StatePlaying

	slog.Info("session_started",
		"name", name,
		"seed", g.seed,
		"bots", len(g.bots),
		"food", len(g.food),
	)
	return true
}

// ReturnToMenu discards the arena and shows the menu again.
func (g *Game) ReturnToMenu() {
	g.resetWorld()
	g.state = StateMenu
}

// endSession stops play, records the score on the leaderboard and emits the
// session record.
func (g *Game) endSession(org *components.Organism, cause telemetry.DeathCause) {
	org.Alive = false
	g.state = StateGameOver
	g.events = append(g.events, telemetry.NewDeathEvent(g.tick, *org, cause))

	rank := g.board.Record(g.name, org.Score)

	rec := telemetry.SessionRecord{
		Seed:      g.seed,
		StartTick: g.sessionTick,
		EndTick:   g.tick,
		Ticks:     g.tick - g.sessionTick,
		Name:      g.name,
		Score:     org.Score,
		Cause:     cause.String(),
		Rank:      rank,
		BotsAlive: g.aliveBots(),
	}
	g.lastSession = &rec
	g.collector.RecordSessionEnd()

	slog.Info("session_ended", "session", rec)
	if err := g.output.WriteSession(rec); err != nil {
		slog.Error("failed to write session", "error", err)
	}
}
