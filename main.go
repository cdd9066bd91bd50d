package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/snakesize/config"
	"github.com/pthm-cable/snakesize/game"
	"github.com/pthm-cable/snakesize/leaderboard"
	"github.com/pthm-cable/snakesize/renderer"
	"github.com/pthm-cable/snakesize/ui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics, steering with the autopilot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	name := flag.String("name", "", "Player name (pre-fills the menu; required for headless runs)")
	leaderboardPath := flag.String("leaderboard", "", "Leaderboard JSON file (empty = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Int("stats-window", 0, "Stats window size in ticks (0 = use config)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	boardPath := cfg.Leaderboard.Path
	if *leaderboardPath != "" {
		boardPath = *leaderboardPath
	}

	store := leaderboard.NewFileStore(boardPath)
	slog.Info("leaderboard", "path", store.Path())

	opts := game.Options{
		Seed:        rngSeed,
		Config:      cfg,
		Store:       store,
		OutputDir:   *outputDir,
		LogStats:    *logStats,
		StatsWindow: *statsWindow,
	}

	if *headless {
		runHeadless(opts, *name, *maxTicks)
		return
	}
	runWindow(opts, *name, *maxTicks)
}

// runHeadless plays sessions back to back on a synthetic clock until
// maxTicks, replaying after every game over.
func runHeadless(opts game.Options, name string, maxTicks int) {
	if name == "" {
		name = "autopilot"
	}
	clock := game.NewSteppedClock(opts.Config.Derived.FrameInterval)
	opts.Clock = clock

	g, err := game.NewGame(opts)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	defer g.Close()

	pilot := game.NewAutoPilot(opts.Config, opts.Seed+1)

	slog.Info("starting headless simulation",
		"seed", g.Seed(),
		"name", name,
		"max_ticks", maxTicks,
	)

	g.Start(name)
	snap := g.Snapshot()
	for {
		switch snap.State {
		case game.StateGameOver:
			g.ReturnToMenu()
			g.Start(name)
		case game.StateMenu:
			g.Start(name)
		}

		pilot.Drive(snap, g.Pointer())
		clock.Advance()
		snap = g.Update()

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			slog.Info("max ticks reached", "tick", g.Tick())
			return
		}
	}
}

func runWindow(opts game.Options, name string, maxTicks int) {
	cfg := opts.Config
	screenW, screenH := int32(cfg.Screen.Width), int32(cfg.Screen.Height)

	rl.InitWindow(screenW, screenH, "snakesize")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGame(opts)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	defer g.Close()

	slog.Info("starting window", "seed", g.Seed(), "width", screenW, "height", screenH)

	arena := renderer.NewArenaRenderer()
	hud := ui.NewHUD()
	menu := ui.NewMenu(name)

	for !rl.WindowShouldClose() {
		mouse := rl.GetMousePosition()
		g.Pointer().Set(float64(mouse.X), float64(mouse.Y))
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			g.ZoomBy(1 + 0.1*float64(wheel))
		}

		snap := g.Update()
		g.RecordFrame()

		rl.BeginDrawing()
		arena.Draw(snap)
		hud.Draw(snap, screenW, rl.GetFPS())
		action := menu.Draw(snap, screenW, screenH)
		rl.EndDrawing()

		switch action {
		case ui.ActionStart:
			if g.Start(menu.Name) {
				hud.Reset()
			}
		case ui.ActionPlayAgain:
			g.ReturnToMenu()
			if g.Start(menu.Name) {
				hud.Reset()
			}
		case ui.ActionMenu:
			g.ReturnToMenu()
		}

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			break
		}
	}
}
