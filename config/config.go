// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen      ScreenConfig      `yaml:"screen"`
	World       WorldConfig       `yaml:"world"`
	Organism    OrganismConfig    `yaml:"organism"`
	Food        FoodConfig        `yaml:"food"`
	Bots        BotsConfig        `yaml:"bots"`
	Timing      TimingConfig      `yaml:"timing"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds viewport settings. The player steers toward the
// pointer relative to the viewport centre, so Width and Height also shape input.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds the square world dimension.
type WorldConfig struct {
	Size float64 `yaml:"size"` // world spans [0, size] on both axes
}

// OrganismConfig holds body and motion parameters shared by player and bots.
type OrganismConfig struct {
	InitialLength int     `yaml:"initial_length"`
	LinkDistance  float64 `yaml:"link_distance"` // spacing between adjacent segments
	Speed         float64 `yaml:"speed"`         // world units per normalized frame
	PlayerColor   string  `yaml:"player_color"`
}

// FoodConfig holds food lifecycle parameters.
type FoodConfig struct {
	Count         int      `yaml:"count"`          // bulk spawn at session start
	Radius        float64  `yaml:"radius"`         // draw radius
	ScatterStride int      `yaml:"scatter_stride"` // every Nth dead segment becomes food
	ScatterJitter float64  `yaml:"scatter_jitter"` // max offset per axis
	Palette       []string `yaml:"palette"`
}

// BotsConfig holds bot population and policy parameters.
type BotsConfig struct {
	Count         int      `yaml:"count"`
	Names         []string `yaml:"names"`
	SensingRadius float64  `yaml:"sensing_radius"`
	SeekChance    float64  `yaml:"seek_chance"`   // per-tick chance to steer at visible food
	WanderChance  float64  `yaml:"wander_chance"` // per-tick chance of a random nudge
	WanderJitter  float64  `yaml:"wander_jitter"` // nudge is uniform in ±this (radians)
	TurnEasing    float64  `yaml:"turn_easing"`   // fraction of angular gap closed per tick
	RespawnTicks  int      `yaml:"respawn_ticks"` // 0 = dead bots stay dead
}

// TimingConfig holds frame pacing parameters.
type TimingConfig struct {
	FrameIntervalMS float64 `yaml:"frame_interval_ms"` // delta = elapsed / this
}

// LeaderboardConfig holds persisted score list settings.
type LeaderboardConfig struct {
	Size int    `yaml:"size"`
	Path string `yaml:"path"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow int `yaml:"stats_window"` // ticks per stats window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	OrganismRadius float64       // LinkDistance / 2; collision and eating reach
	FrameInterval  time.Duration // Timing.FrameIntervalMS as a duration
	ViewCenterX    float64       // Screen.Width / 2
	ViewCenterY    float64       // Screen.Height / 2
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.World.Size <= 0:
		return fmt.Errorf("world.size must be positive, got %v", c.World.Size)
	case c.Organism.InitialLength < 1:
		return fmt.Errorf("organism.initial_length must be at least 1, got %d", c.Organism.InitialLength)
	case c.Organism.LinkDistance <= 0:
		return fmt.Errorf("organism.link_distance must be positive, got %v", c.Organism.LinkDistance)
	case c.Food.ScatterStride < 1:
		return fmt.Errorf("food.scatter_stride must be at least 1, got %d", c.Food.ScatterStride)
	case len(c.Food.Palette) == 0:
		return fmt.Errorf("food.palette must not be empty")
	case c.Timing.FrameIntervalMS <= 0:
		return fmt.Errorf("timing.frame_interval_ms must be positive, got %v", c.Timing.FrameIntervalMS)
	case c.Leaderboard.Size < 1:
		return fmt.Errorf("leaderboard.size must be at least 1, got %d", c.Leaderboard.Size)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.OrganismRadius = c.Organism.LinkDistance / 2
	c.Derived.FrameInterval = time.Duration(c.Timing.FrameIntervalMS * float64(time.Millisecond))
	c.Derived.ViewCenterX = float64(c.Screen.Width) / 2
	c.Derived.ViewCenterY = float64(c.Screen.Height) / 2

	if len(c.Bots.Names) == 0 {
		c.Bots.Names = []string{"Bot"}
	}
	if c.Telemetry.StatsWindow <= 0 {
		c.Telemetry.StatsWindow = 600
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
