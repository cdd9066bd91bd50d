package telemetry

import (
	"time"

	"github.com/pthm-cable/snakesize/systems"
)

// Sample is the arena state handed to Flush at a window boundary.
type Sample struct {
	AliveBots   int
	FoodCount   int
	PlayerScore int
	Playing     bool
	BotScores   []float64 // living bots only
}

// Collector accumulates events within tick windows and produces WindowStats.
type Collector struct {
	windowTicks   int32
	frameInterval time.Duration

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	foodEaten      int
	playerEaten    int
	botDeaths      int
	botRespawns    int
	scatterSpawned int
	sessionsEnded  int

	// Bot policy branches taken, indexed by systems.Decision
	decisions [3]int
}

// NewCollector creates a new stats collector.
// windowTicks: ticks per stats window
// frameInterval: nominal wall time of one tick (used for tick-to-time conversion)
func NewCollector(windowTicks int, frameInterval time.Duration) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{
		windowTicks:   int32(windowTicks),
		frameInterval: frameInterval,
	}
}

// RecordFoodEaten records food consumed by any organism.
func (c *Collector) RecordFoodEaten(kind EaterKind, n int) {
	c.foodEaten += n
	if kind == EaterPlayer {
		c.playerEaten += n
	}
}

// RecordBotDeath records a bot death and the food its body scattered.
func (c *Collector) RecordBotDeath(scattered int) {
	c.botDeaths++
	c.scatterSpawned += scattered
}

// RecordBotDecision records which policy branch a bot took this tick.
func (c *Collector) RecordBotDecision(d systems.Decision) {
	if int(d) < len(c.decisions) {
		c.decisions[d]++
	}
}

// RecordRespawn records a bot returning to the arena.
func (c *Collector) RecordRespawn() {
	c.botRespawns++
}

// RecordSessionEnd records a finished session.
func (c *Collector) RecordSessionEnd() {
	c.sessionsEnded++
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, s Sample) WindowStats {
	mean, std, p50, p90, top := ComputeScoreStats(s.BotScores)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.frameInterval.Seconds(),

		AliveBots:   s.AliveBots,
		FoodCount:   s.FoodCount,
		PlayerScore: s.PlayerScore,
		Playing:     s.Playing,

		FoodEaten:      c.foodEaten,
		PlayerEaten:    c.playerEaten,
		BotDeaths:      c.botDeaths,
		BotRespawns:    c.botRespawns,
		ScatterSpawned: c.scatterSpawned,
		SessionsEnded:  c.sessionsEnded,

		BotSeeks:   c.decisions[systems.DecisionSeek],
		BotWanders: c.decisions[systems.DecisionWander],
		BotHolds:   c.decisions[systems.DecisionHold],

		BotScoreMean: mean,
		BotScoreStd:  std,
		BotScoreP50:  p50,
		BotScoreP90:  p90,
		BotScoreMax:  top,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.foodEaten = 0
	c.playerEaten = 0
	c.botDeaths = 0
	c.botRespawns = 0
	c.scatterSpawned = 0
	c.sessionsEnded = 0
	c.decisions = [3]int{}

	return stats
}

// EaterKind distinguishes player from bot consumption.
type EaterKind uint8

const (
	EaterPlayer EaterKind = iota
	EaterBot
)
