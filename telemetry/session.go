package telemetry

import "log/slog"

// SessionRecord summarizes one finished play session.
type SessionRecord struct {
	Seed      int64  `csv:"seed"`
	StartTick int32  `csv:"start_tick"`
	EndTick   int32  `csv:"end_tick"`
	Ticks     int32  `csv:"ticks"`
	Name      string `csv:"name"`
	Score     int    `csv:"score"`
	Cause     string `csv:"cause"`
	Rank      int    `csv:"rank"` // 0 = did not make the leaderboard
	BotsAlive int    `csv:"bots_alive"`
}

// LogValue implements slog.LogValuer for structured logging.
func (r SessionRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", r.Name),
		slog.Int("score", r.Score),
		slog.Int("ticks", int(r.Ticks)),
		slog.String("cause", r.Cause),
		slog.Int("rank", r.Rank),
		slog.Int("bots_alive", r.BotsAlive),
	)
}
