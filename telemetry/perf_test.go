package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhasePlayer)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseBots)
		time.Sleep(200 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration")
	}
	if _, ok := stats.PhaseAvg[PhasePlayer]; !ok {
		t.Error("expected player phase to be tracked")
	}
	if _, ok := stats.PhaseAvg[PhaseBots]; !ok {
		t.Error("expected bots phase to be tracked")
	}
	if stats.PhasePct[PhaseBots] <= stats.PhasePct[PhasePlayer] {
		t.Errorf("expected bots (%v%%) > player (%v%%)", stats.PhasePct[PhaseBots], stats.PhasePct[PhasePlayer])
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)

	for i := 0; i < 10; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseBots)
		time.Sleep(10 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration after window filled")
	}
	if stats.TicksPerSecond <= 0 {
		t.Error("expected positive ticks per second")
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	stats := NewPerfCollector(10).Stats()

	if stats.AvgTickDuration != 0 {
		t.Error("expected zero avg tick duration for empty collector")
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("expected non-nil phase maps")
	}
}

func TestPerfStatsToCSV(t *testing.T) {
	s := PerfStats{
		AvgTickDuration: 1500 * time.Microsecond,
		PhasePct:        map[string]float64{PhasePlayer: 20, PhaseBots: 70},
	}
	row := s.ToCSV(600)
	if row.WindowEnd != 600 || row.AvgTickUS != 1500 {
		t.Errorf("row = %+v", row)
	}
	if row.PlayerPct != 20 || row.BotsPct != 70 || row.RespawnPct != 0 {
		t.Errorf("phase pcts = %v/%v/%v", row.PlayerPct, row.BotsPct, row.RespawnPct)
	}
}
