package game

import (
	"log/slog"
	"math"

	"github.com/pthm-cable/snakesize/components"
	"github.com/pthm-cable/snakesize/systems"
	"github.com/pthm-cable/snakesize/telemetry"
)

// step runs one tick: player, then bots in spawn order, then respawns and
// the view offset. A player death ends the tick immediately.
func (g *Game) step() {
	now := g.clock.Now()
	delta := float64(now.Sub(g.lastTick)) / float64(g.cfg.Derived.FrameInterval)
	g.lastTick = now
	g.tick++

	g.perf.StartPhase(telemetry.PhasePlayer)
	if !g.stepPlayer(delta) {
		return
	}

	g.perf.StartPhase(telemetry.PhaseBots)
	g.stepBots(delta)

	g.perf.StartPhase(telemetry.PhaseRespawn)
	g.respawnBots()

	body, _, _ := g.playerMap.Get(g.player)
	g.camera.Follow(body.Head())
}

// stepPlayer steers the player at the pointer, moves it, and resolves death
// or feeding. Returns false when the session ended.
func (g *Game) stepPlayer(delta float64) bool {
	cfg := g.cfg
	body, heading, org := g.playerMap.Get(g.player)

	px, py := g.pointer.Latest()
	heading.Angle = math.Atan2(py-cfg.Derived.ViewCenterY, px-cfg.Derived.ViewCenterX)

	systems.Advance(body, heading.Angle, cfg.Organism.Speed, delta, cfg.Organism.LinkDistance)
	head := body.Head()

	if cause := g.checkDeath(head, -1, false); cause != telemetry.CauseNone {
		g.endSession(org, cause)
		return false
	}

	g.feed(body, org, telemetry.EaterPlayer)
	return true
}

// stepBots runs decide, move, and death or feeding for each living bot.
func (g *Game) stepBots(delta float64) {
	cfg := g.cfg
	for i, e := range g.bots {
		body, heading, org, bot := g.botMap.Get(e)
		if !org.Alive {
			continue
		}

		var decision systems.Decision
		heading.Angle, decision = g.policy.Decide(body.Head(), heading.Angle, g.food, g.rng)
		g.collector.RecordBotDecision(decision)
		systems.Advance(body, heading.Angle, cfg.Organism.Speed, delta, cfg.Organism.LinkDistance)
		head := body.Head()

		if cause := g.checkDeath(head, i, true); cause != telemetry.CauseNone {
			g.killBot(body, org, bot, cause)
			continue
		}

		g.feed(body, org, telemetry.EaterBot)
	}
}

// checkDeath tests the boundary first, then the living bot bodies other than
// skip and, when withPlayer is set, the player body.
func (g *Game) checkDeath(head components.Point, skip int, withPlayer bool) telemetry.DeathCause {
	if systems.OutOfBounds(head, g.cfg.World.Size) {
		return telemetry.CauseBoundary
	}
	if systems.Collides(head, g.gatherObstacles(skip, withPlayer), g.cfg.Derived.OrganismRadius) {
		return telemetry.CauseCollision
	}
	return telemetry.CauseNone
}

// gatherObstacles rebuilds the obstacle list into a reused buffer.
func (g *Game) gatherObstacles(skip int, withPlayer bool) [][]components.Point {
	g.obstacles = g.obstacles[:0]
	if withPlayer {
		body, _, _ := g.playerMap.Get(g.player)
		g.obstacles = append(g.obstacles, body.Segments)
	}
	for i, e := range g.bots {
		if i == skip {
			continue
		}
		body, _, org, _ := g.botMap.Get(e)
		if org.Alive {
			g.obstacles = append(g.obstacles, body.Segments)
		}
	}
	return g.obstacles
}

// feed consumes food at the organism's head and grows it by the eaten count.
func (g *Game) feed(body *components.Body, org *components.Organism, kind telemetry.EaterKind) {
	eaten, food := g.foodMgr.Consume(body.Head(), g.food)
	g.food = food
	if eaten == 0 {
		return
	}
	systems.Grow(body, eaten)
	org.Score += eaten
	g.collector.RecordFoodEaten(kind, eaten)
}

// killBot marks a bot dead and scatters its body as food.
func (g *Game) killBot(body *components.Body, org *components.Organism, bot *components.Bot, cause telemetry.DeathCause) {
	org.Alive = false
	scattered := g.foodMgr.Scatter(body.Segments)
	g.food = append(g.food, scattered...)
	if g.cfg.Bots.RespawnTicks > 0 {
		bot.RespawnIn = g.cfg.Bots.RespawnTicks
	}

	g.collector.RecordBotDeath(len(scattered))
	g.events = append(g.events, telemetry.NewDeathEvent(g.tick, *org, cause))
	slog.Info("bot_died",
		"name", org.Name,
		"score", org.Score,
		"cause", cause.String(),
		"tick", g.tick,
		"scattered", len(scattered),
	)
}
