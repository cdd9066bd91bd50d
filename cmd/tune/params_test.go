package main

import (
	"math"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/snakesize/config"
	"github.com/pthm-cable/snakesize/telemetry"
)

func TestNormalizeRoundTrip(t *testing.T) {
	cfg := config.Default()
	pv := NewParamVector(cfg)

	raw := pv.DefaultVector()
	back := pv.Denormalize(pv.Normalize(raw))
	for i := range raw {
		if math.Abs(raw[i]-back[i]) > 1e-9 {
			t.Errorf("%s: %v -> %v", pv.Specs[i].Name, raw[i], back[i])
		}
	}
}

func TestApplyToConfigClamps(t *testing.T) {
	cfg := config.Default()
	pv := NewParamVector(cfg)

	pv.ApplyToConfig(cfg, []float64{2, -1, 0.5, 0.2, 10000})

	if cfg.Bots.SeekChance != 1 || cfg.Bots.WanderChance != 0 {
		t.Errorf("chances = %v/%v, want clamped 1/0", cfg.Bots.SeekChance, cfg.Bots.WanderChance)
	}
	if cfg.Bots.WanderJitter != 0.5 || cfg.Bots.TurnEasing != 0.2 {
		t.Errorf("jitter/easing = %v/%v", cfg.Bots.WanderJitter, cfg.Bots.TurnEasing)
	}
	if cfg.Bots.SensingRadius != 600 {
		t.Errorf("sensing radius = %v, want clamped 600", cfg.Bots.SensingRadius)
	}
}

func TestScore(t *testing.T) {
	cfg := config.Default() // 15 bots of length 10 = 150 starting mass

	windows := []telemetry.WindowStats{
		{AliveBots: 15, BotScoreMean: 10, BotSeeks: 1, BotHolds: 3},
		{AliveBots: 5, BotScoreMean: 30},
	}
	r := score(windows, cfg)
	if math.Abs(r.mass-1) > 1e-9 {
		t.Errorf("mass = %v, want 1", r.mass)
	}
	if math.Abs(r.survival-(1+1.0/3)/2) > 1e-9 {
		t.Errorf("survival = %v, want %v", r.survival, (1+1.0/3)/2)
	}

	if math.Abs(r.seekRate-0.125) > 1e-9 {
		t.Errorf("seek rate = %v, want 0.125", r.seekRate)
	}

	if empty := score(nil, cfg); empty.mass != 0 || empty.survival != 0 {
		t.Errorf("score(nil) = %+v, want zero", empty)
	}
}

func TestResolveBest(t *testing.T) {
	pv := NewParamVector(config.Default())
	evaluated := []float64{0.5, 0.1, 0.3, 0.2, 100}
	final := &optimize.Result{Location: optimize.Location{X: []float64{0, 0, 0, 0, 0}}}

	tests := []struct {
		name   string
		best   []float64
		result *optimize.Result
		want   []float64
	}{
		{"best evaluated wins", evaluated, final, evaluated},
		{"falls back to final location", nil, final, pv.Clamp(pv.Denormalize(final.X))},
		{"no evaluation and no result", nil, nil, pv.DefaultVector()},
		{"result without location", nil, &optimize.Result{}, pv.DefaultVector()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveBest(pv, tt.best, tt.result)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("resolveBest() = %v, want %v", got, tt.want)
			}
			if len(got) != pv.Dim() {
				t.Errorf("len = %d, want %d", len(got), pv.Dim())
			}
		})
	}
}
