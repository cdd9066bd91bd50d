package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Arena state at window end
	AliveBots   int  `csv:"alive_bots"`
	FoodCount   int  `csv:"food"`
	PlayerScore int  `csv:"player_score"`
	Playing     bool `csv:"playing"`

	// Events during window
	FoodEaten      int `csv:"food_eaten"`
	PlayerEaten    int `csv:"player_eaten"`
	BotDeaths      int `csv:"bot_deaths"`
	BotRespawns    int `csv:"bot_respawns"`
	ScatterSpawned int `csv:"scatter_spawned"`
	SessionsEnded  int `csv:"sessions_ended"`

	// Bot policy branches taken during window
	BotSeeks   int `csv:"bot_seeks"`
	BotWanders int `csv:"bot_wanders"`
	BotHolds   int `csv:"bot_holds"`

	// Living bot score distribution (sampled at window end)
	BotScoreMean float64 `csv:"bot_score_mean"`
	BotScoreStd  float64 `csv:"bot_score_std"`
	BotScoreP50  float64 `csv:"bot_score_p50"`
	BotScoreP90  float64 `csv:"bot_score_p90"`
	BotScoreMax  float64 `csv:"bot_score_max"`
}

// ComputeScoreStats calculates mean, std, median, p90 and max of scores.
// Returns zeros for an empty slice; std is zero for a single value.
func ComputeScoreStats(values []float64) (mean, std, p50, p90, top float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}

	if n == 1 {
		mean = values[0]
	} else {
		mean, std = stat.MeanStdDev(values, nil)
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	top = floats.Max(sorted)

	return mean, std, p50, p90, top
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("alive_bots", s.AliveBots),
		slog.Int("food", s.FoodCount),
		slog.Int("player_score", s.PlayerScore),
		slog.Bool("playing", s.Playing),
		slog.Int("food_eaten", s.FoodEaten),
		slog.Int("player_eaten", s.PlayerEaten),
		slog.Int("bot_deaths", s.BotDeaths),
		slog.Int("bot_respawns", s.BotRespawns),
		slog.Int("scatter_spawned", s.ScatterSpawned),
		slog.Int("sessions_ended", s.SessionsEnded),
		slog.Int("bot_seeks", s.BotSeeks),
		slog.Int("bot_wanders", s.BotWanders),
		slog.Int("bot_holds", s.BotHolds),
		slog.Float64("bot_score_mean", s.BotScoreMean),
		slog.Float64("bot_score_std", s.BotScoreStd),
		slog.Float64("bot_score_p50", s.BotScoreP50),
		slog.Float64("bot_score_p90", s.BotScoreP90),
		slog.Float64("bot_score_max", s.BotScoreMax),
	)
}

// SeekRate returns the fraction of bot decisions that steered at food.
func (s WindowStats) SeekRate() float64 {
	total := s.BotSeeks + s.BotWanders + s.BotHolds
	if total == 0 {
		return 0
	}
	return float64(s.BotSeeks) / float64(total)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
