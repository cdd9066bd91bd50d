// Package game runs the arena: session state, the per-tick orchestration of
// player, bots and food, and the snapshots handed to renderers.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/snakesize/camera"
	"github.com/pthm-cable/snakesize/components"
	"github.com/pthm-cable/snakesize/config"
	"github.com/pthm-cable/snakesize/leaderboard"
	"github.com/pthm-cable/snakesize/systems"
	"github.com/pthm-cable/snakesize/telemetry"
)

// State is the session phase.
type State uint8

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Options configures a Game.
type Options struct {
	Seed        int64
	Config      *config.Config    // nil = config.Cfg()
	Store       leaderboard.Store // nil = in-memory board only
	OutputDir   string            // empty = no CSV output
	LogStats    bool
	StatsWindow int   // ticks per telemetry window, 0 = config
	Clock       Clock // nil = wall clock

	// OnStats, if set, receives every flushed telemetry window.
	OnStats func(telemetry.WindowStats)
}

// Game holds the complete arena state. All methods must be called from the
// goroutine that drives Update; only Pointer is safe for concurrent use.
type Game struct {
	cfg  *config.Config
	rng  *rand.Rand
	seed int64

	world     *ecs.World
	playerMap *ecs.Map3[components.Body, components.Heading, components.Organism]
	botMap    *ecs.Map4[components.Body, components.Heading, components.Organism, components.Bot]
	orgFilter *ecs.Filter3[components.Body, components.Heading, components.Organism]

	player ecs.Entity
	bots   []ecs.Entity // spawn order, which is also update order
	food   []components.Food

	foodMgr     *systems.FoodManager
	policy      systems.BotPolicy
	palette     []components.Color
	playerColor components.Color
	obstacles   [][]components.Point // reused per bot

	camera  *camera.Camera
	pointer *Pointer
	clock   Clock

	board       *leaderboard.Board
	state       State
	name        string
	nextID      uint32
	lastTick    time.Time
	tick        int32 // ticks simulated across all sessions
	sessionTick int32 // tick at which the current session started
	lastSession *telemetry.SessionRecord
	events      []telemetry.Event

	collector     *telemetry.Collector
	perf          *telemetry.PerfCollector
	output        *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.WindowStats)
}

// NewGame creates a game in the menu state.
func NewGame(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	palette := make([]components.Color, 0, len(cfg.Food.Palette))
	for _, hex := range cfg.Food.Palette {
		c, err := components.ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("food.palette: %w", err)
		}
		palette = append(palette, c)
	}
	playerColor, err := components.ParseHexColor(cfg.Organism.PlayerColor)
	if err != nil {
		return nil, fmt.Errorf("organism.player_color: %w", err)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	foodMgr, err := systems.NewFoodManager(cfg, rng)
	if err != nil {
		return nil, fmt.Errorf("food manager: %w", err)
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config", "error", err)
	}

	statsWindow := cfg.Telemetry.StatsWindow
	if opts.StatsWindow > 0 {
		statsWindow = opts.StatsWindow
	}

	clock := opts.Clock
	if clock == nil {
		clock = wallClock{}
	}

	g := &Game{
		cfg:         cfg,
		rng:         rng,
		seed:        opts.Seed,
		foodMgr:     foodMgr,
		policy:      systems.NewBotPolicy(cfg),
		palette:     palette,
		playerColor: playerColor,
		camera:      camera.New(float64(cfg.Screen.Width), float64(cfg.Screen.Height), cfg.World.Size/2, cfg.World.Size/2),
		pointer:     NewPointer(cfg.Derived.ViewCenterX, cfg.Derived.ViewCenterY),
		clock:       clock,
		board:       leaderboard.Open(opts.Store, cfg.Leaderboard.Size),
		collector:   telemetry.NewCollector(statsWindow, cfg.Derived.FrameInterval),
		perf:        telemetry.NewPerfCollector(statsWindow),
		output:      output,
		logStats:    opts.LogStats,

		statsCallback: opts.OnStats,
	}
	g.resetWorld()

	return g, nil
}

// Update advances one tick while playing and returns the resulting snapshot.
// In the menu and game-over states nothing moves.
func (g *Game) Update() Snapshot {
	g.events = g.events[:0]
	if g.state != StatePlaying {
		return g.Snapshot()
	}

	g.perf.StartTick()
	g.step()
	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()
	g.perf.StartPhase(telemetry.PhaseSnapshot)
	snap := g.Snapshot()
	g.perf.EndTick()
	return snap
}

// Pointer returns the input sink the game steers the player from.
func (g *Game) Pointer() *Pointer {
	return g.pointer
}

// ZoomBy scales the view zoom by factor, clamped to the camera limits.
// Steering is unaffected: the player head stays at the viewport centre.
func (g *Game) ZoomBy(factor float64) {
	g.camera.ZoomBy(factor)
}

// State returns the current session phase.
func (g *Game) State() State {
	return g.state
}

// Tick returns the number of ticks simulated since the game was created.
func (g *Game) Tick() int32 {
	return g.tick
}

// Seed returns the RNG seed the game was created with.
func (g *Game) Seed() int64 {
	return g.seed
}

// Config returns the configuration the game runs with.
func (g *Game) Config() *config.Config {
	return g.cfg
}

// Leaderboard returns the current top entries, best first.
func (g *Game) Leaderboard() []leaderboard.Entry {
	return g.board.Entries()
}

// LastSession returns the most recently finished session, if any.
func (g *Game) LastSession() (telemetry.SessionRecord, bool) {
	if g.lastSession == nil {
		return telemetry.SessionRecord{}, false
	}
	return *g.lastSession, true
}

// RecordFrame records render frame timing for perf output.
func (g *Game) RecordFrame() {
	g.perf.RecordFrame()
}

// Close flushes and closes telemetry output.
func (g *Game) Close() error {
	return g.output.Close()
}
