package main

import "github.com/pthm-cable/snakesize/config"

// ParamSpec defines a single tunable bot policy parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the bot policy parameter set, defaulting to cfg.
func NewParamVector(cfg *config.Config) *ParamVector {
	b := cfg.Bots
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "seek_chance", Path: "bots.seek_chance", Min: 0, Max: 1, Default: b.SeekChance},
			{Name: "wander_chance", Path: "bots.wander_chance", Min: 0, Max: 0.2, Default: b.WanderChance},
			{Name: "wander_jitter", Path: "bots.wander_jitter", Min: 0, Max: 1.5, Default: b.WanderJitter},
			{Name: "turn_easing", Path: "bots.turn_easing", Min: 0.01, Max: 0.5, Default: b.TurnEasing},
			{Name: "sensing_radius", Path: "bots.sensing_radius", Min: 20, Max: 600, Default: b.SensingRadius},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to the [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	out := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		out[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return out
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	out := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		out[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return out
}

// Clamp restricts raw values to their bounds.
func (pv *ParamVector) Clamp(raw []float64) []float64 {
	out := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v := raw[i]
		if v < spec.Min {
			v = spec.Min
		}
		if v > spec.Max {
			v = spec.Max
		}
		out[i] = v
	}
	return out
}

// ApplyToConfig writes clamped raw values into cfg.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, raw []float64) {
	v := pv.Clamp(raw)
	cfg.Bots.SeekChance = v[0]
	cfg.Bots.WanderChance = v[1]
	cfg.Bots.WanderJitter = v[2]
	cfg.Bots.TurnEasing = v[3]
	cfg.Bots.SensingRadius = v[4]
}
