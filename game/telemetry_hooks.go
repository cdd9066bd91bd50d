package game

import (
	"log/slog"

	"github.com/pthm-cable/snakesize/components"
	"github.com/pthm-cable/snakesize/telemetry"
)

// flushTelemetry emits a stats window when one has elapsed.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, g.sample())
	perfStats := g.perf.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.output != nil {
		if err := g.output.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.output.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

// sample gathers arena state for a stats window.
func (g *Game) sample() telemetry.Sample {
	s := telemetry.Sample{
		FoodCount: len(g.food),
		Playing:   g.state == StatePlaying,
	}

	query := g.orgFilter.Query()
	for query.Next() {
		_, _, org := query.Get()
		switch {
		case org.Kind == components.KindPlayer:
			s.PlayerScore = org.Score
		case org.Alive:
			s.AliveBots++
			s.BotScores = append(s.BotScores, float64(org.Score))
		}
	}
	return s
}
