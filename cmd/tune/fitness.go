package main

import (
	"fmt"

	"github.com/pthm-cable/snakesize/config"
	"github.com/pthm-cable/snakesize/game"
	"github.com/pthm-cable/snakesize/telemetry"
)

// FitnessEvaluator scores a bot policy by headless runs over several seeds.
type FitnessEvaluator struct {
	params   *ParamVector
	maxTicks int32
	seeds    []int64
	baseCfg  *config.Config
	window   int

	lastSurvival float64
	lastSeekRate float64
}

// NewFitnessEvaluator creates an evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int32, seeds []int64, baseCfg *config.Config, window int) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:   params,
		maxTicks: maxTicks,
		seeds:    seeds,
		baseCfg:  baseCfg,
		window:   window,
	}
}

// LastSurvival returns the mean bot survival fraction of the last evaluation.
func (fe *FitnessEvaluator) LastSurvival() float64 {
	return fe.lastSurvival
}

// LastSeekRate returns the mean fraction of bot decisions that sought food
// in the last evaluation.
func (fe *FitnessEvaluator) LastSeekRate() float64 {
	return fe.lastSeekRate
}

// Evaluate returns the fitness for raw parameter values; lower is better.
// Fitness is the negated mean over windows of living bot score mass,
// normalized by the starting mass, so policies that both grow and survive win.
func (fe *FitnessEvaluator) Evaluate(raw []float64) float64 {
	var total, survival, seekRate float64
	for _, seed := range fe.seeds {
		r, err := fe.run(raw, seed)
		if err != nil {
			fmt.Printf("run failed (seed %d): %v\n", seed, err)
			return 0
		}
		total += r.mass
		survival += r.survival
		seekRate += r.seekRate
	}
	n := float64(len(fe.seeds))
	fe.lastSurvival = survival / n
	fe.lastSeekRate = seekRate / n
	return -total / n
}

type runResult struct {
	mass     float64
	survival float64
	seekRate float64
}

func (fe *FitnessEvaluator) run(raw []float64, seed int64) (runResult, error) {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, raw)

	var windows []telemetry.WindowStats
	clock := game.NewSteppedClock(cfg.Derived.FrameInterval)
	g, err := game.NewGame(game.Options{
		Seed:        seed,
		Config:      cfg,
		Clock:       clock,
		StatsWindow: fe.window,
		OnStats: func(s telemetry.WindowStats) {
			windows = append(windows, s)
		},
	})
	if err != nil {
		return runResult{}, err
	}
	defer g.Close()

	pilot := game.NewAutoPilot(cfg, seed+1)
	g.Start("tuner")
	snap := g.Snapshot()
	for g.Tick() < fe.maxTicks {
		if snap.State == game.StateGameOver {
			g.ReturnToMenu()
			g.Start("tuner")
		}
		pilot.Drive(snap, g.Pointer())
		clock.Advance()
		snap = g.Update()
	}

	return score(windows, cfg), nil
}

// score reduces a run's windows to a mass, a survival fraction and the
// share of bot decisions that sought food.
func score(windows []telemetry.WindowStats, cfg *config.Config) runResult {
	if len(windows) == 0 || cfg.Bots.Count == 0 {
		return runResult{}
	}
	start := float64(cfg.Bots.Count * cfg.Organism.InitialLength)

	var mass, survival, seekRate float64
	for _, w := range windows {
		mass += w.BotScoreMean * float64(w.AliveBots) / start
		survival += float64(w.AliveBots) / float64(cfg.Bots.Count)
		seekRate += w.SeekRate()
	}
	n := float64(len(windows))
	return runResult{mass: mass / n, survival: survival / n, seekRate: seekRate / n}
}

// copyConfig returns an independent copy of the base config; tuned fields
// are scalars so slices may stay shared.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseCfg
	return &cfg
}
