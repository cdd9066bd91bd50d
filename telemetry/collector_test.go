package telemetry

import (
	"math"
	"testing"
	"time"

	"github.com/pthm-cable/snakesize/systems"
)

func TestCollectorWindow(t *testing.T) {
	c := NewCollector(10, 10*time.Millisecond)

	if c.ShouldFlush(9) {
		t.Error("flushed before window elapsed")
	}
	if !c.ShouldFlush(10) {
		t.Error("did not flush at window end")
	}

	c.RecordFoodEaten(EaterPlayer, 2)
	c.RecordFoodEaten(EaterBot, 3)
	c.RecordBotDeath(4)
	c.RecordBotDeath(2)
	c.RecordRespawn()
	c.RecordSessionEnd()
	c.RecordBotDecision(systems.DecisionSeek)
	c.RecordBotDecision(systems.DecisionWander)
	c.RecordBotDecision(systems.DecisionHold)
	c.RecordBotDecision(systems.DecisionHold)

	stats := c.Flush(10, Sample{
		AliveBots:   2,
		FoodCount:   306,
		PlayerScore: 12,
		Playing:     true,
		BotScores:   []float64{10, 20},
	})

	if stats.WindowStartTick != 0 || stats.WindowEndTick != 10 {
		t.Errorf("window = [%d, %d], want [0, 10]", stats.WindowStartTick, stats.WindowEndTick)
	}
	if math.Abs(stats.SimTimeSec-0.1) > 1e-9 {
		t.Errorf("sim time = %v, want 0.1", stats.SimTimeSec)
	}
	if stats.FoodEaten != 5 || stats.PlayerEaten != 2 {
		t.Errorf("eaten = %d/%d, want 5/2", stats.FoodEaten, stats.PlayerEaten)
	}
	if stats.BotDeaths != 2 || stats.ScatterSpawned != 6 {
		t.Errorf("deaths/scatter = %d/%d, want 2/6", stats.BotDeaths, stats.ScatterSpawned)
	}
	if stats.BotRespawns != 1 || stats.SessionsEnded != 1 {
		t.Errorf("respawns/sessions = %d/%d, want 1/1", stats.BotRespawns, stats.SessionsEnded)
	}
	if stats.BotScoreMean != 15 || stats.BotScoreMax != 20 {
		t.Errorf("score mean/max = %v/%v, want 15/20", stats.BotScoreMean, stats.BotScoreMax)
	}

	if stats.BotSeeks != 1 || stats.BotWanders != 1 || stats.BotHolds != 2 {
		t.Errorf("decisions = %d/%d/%d, want 1/1/2", stats.BotSeeks, stats.BotWanders, stats.BotHolds)
	}
	if stats.SeekRate() != 0.25 {
		t.Errorf("seek rate = %v, want 0.25", stats.SeekRate())
	}

	// Counters reset and the next window starts at the flush tick.
	if c.ShouldFlush(19) {
		t.Error("second window flushed early")
	}
	next := c.Flush(20, Sample{})
	if next.WindowStartTick != 10 || next.FoodEaten != 0 || next.BotDeaths != 0 || next.BotHolds != 0 {
		t.Errorf("counters not reset: %+v", next)
	}
}

func TestCollectorMinimumWindow(t *testing.T) {
	c := NewCollector(0, time.Millisecond)
	if c.ShouldFlush(0) {
		t.Error("flushed an empty window")
	}
	if !c.ShouldFlush(1) {
		t.Error("a zero window did not clamp to one tick")
	}
}
