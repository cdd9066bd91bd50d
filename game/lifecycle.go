package game

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/snakesize/components"
	"github.com/pthm-cable/snakesize/telemetry"
)

// resetWorld drops every entity and the food set by starting a fresh ECS world.
func (g *Game) resetWorld() {
	g.world = ecs.NewWorld()
	g.playerMap = ecs.NewMap3[components.Body, components.Heading, components.Organism](g.world)
	g.botMap = ecs.NewMap4[components.Body, components.Heading, components.Organism, components.Bot](g.world)
	g.orgFilter = ecs.NewFilter3[components.Body, components.Heading, components.Organism](g.world)

	g.bots = g.bots[:0]
	g.food = nil
	g.nextID = 0
	g.camera.Follow(components.Point{X: g.cfg.World.Size / 2, Y: g.cfg.World.Size / 2})
}

// spawnPlayer creates the player at the world centre facing +x.
func (g *Game) spawnPlayer() {
	cfg := g.cfg
	center := components.Point{X: cfg.World.Size / 2, Y: cfg.World.Size / 2}

	body := components.NewBody(center, 0, cfg.Organism.LinkDistance, cfg.Organism.InitialLength)
	heading := components.Heading{Angle: 0}
	org := components.Organism{
		ID:    g.allocID(),
		Kind:  components.KindPlayer,
		Name:  g.name,
		Color: g.playerColor,
		Score: cfg.Organism.InitialLength,
		Alive: true,
	}
	g.player = g.playerMap.NewEntity(&body, &heading, &org)
}

// spawnBots creates the bot population in index order.
func (g *Game) spawnBots() {
	for i := 0; i < g.cfg.Bots.Count; i++ {
		body, heading := g.randomBody()
		org := components.Organism{
			ID:    g.allocID(),
			Kind:  components.KindBot,
			Name:  g.cfg.Bots.Names[i%len(g.cfg.Bots.Names)],
			Color: g.palette[i%len(g.palette)],
			Score: g.cfg.Organism.InitialLength,
			Alive: true,
		}
		bot := components.Bot{Index: i}
		e := g.botMap.NewEntity(&body, &heading, &org, &bot)
		g.bots = append(g.bots, e)
	}
}

// randomBody lays out an initial body at a uniform random position with a
// uniform random heading.
func (g *Game) randomBody() (components.Body, components.Heading) {
	cfg := g.cfg
	head := components.Point{
		X: g.rng.Float64() * cfg.World.Size,
		Y: g.rng.Float64() * cfg.World.Size,
	}
	angle := g.rng.Float64() * 2 * math.Pi
	return components.NewBody(head, angle, cfg.Organism.LinkDistance, cfg.Organism.InitialLength),
		components.Heading{Angle: angle}
}

// respawnBots counts down dead bots and returns them with a fresh body.
// A bot with RespawnIn == 0 stays dead.
func (g *Game) respawnBots() {
	for _, e := range g.bots {
		body, heading, org, bot := g.botMap.Get(e)
		if org.Alive || bot.RespawnIn <= 0 {
			continue
		}
		bot.RespawnIn--
		if bot.RespawnIn > 0 {
			continue
		}

		*body, *heading = g.randomBody()
		org.Score = g.cfg.Organism.InitialLength
		org.Alive = true
		g.collector.RecordRespawn()
		g.events = append(g.events, telemetry.NewRespawnEvent(g.tick, *org))
	}
}

func (g *Game) allocID() uint32 {
	g.nextID++
	return g.nextID
}

// aliveBots counts living bots.
func (g *Game) aliveBots() int {
	n := 0
	query := g.orgFilter.Query()
	for query.Next() {
		_, _, org := query.Get()
		if org.Kind == components.KindBot && org.Alive {
			n++
		}
	}
	return n
}
