package game

import (
	"sort"

	"github.com/pthm-cable/snakesize/camera"
	"github.com/pthm-cable/snakesize/components"
	"github.com/pthm-cable/snakesize/leaderboard"
	"github.com/pthm-cable/snakesize/telemetry"
)

// OrganismView is a render-side copy of one organism.
type OrganismView struct {
	ID      uint32
	Kind    components.Kind
	Name    string
	Color   components.Color
	Score   int
	Alive   bool
	Heading float64
	Body    []components.Point // head first
}

// Snapshot is a self-contained copy of everything a renderer needs for one
// frame. It shares no memory with the game.
type Snapshot struct {
	State       State
	Tick        int32 // ticks into the current session
	Player      OrganismView
	Bots        []OrganismView // spawn order
	Food        []components.Food
	ViewOffset  components.Point // world position of the viewport's top-left
	Camera      camera.Camera    // view used to draw this frame
	Leaderboard []leaderboard.Entry
	LastSession telemetry.SessionRecord
	HasSession  bool
	Events      []telemetry.Event // emitted during this tick
	FoodRadius  float64
	SegmentSize float64
	WorldSize   float64
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		State:       g.state,
		ViewOffset:  g.camera.Offset(),
		Camera:      *g.camera,
		Leaderboard: g.board.Entries(),
		FoodRadius:  g.cfg.Food.Radius,
		SegmentSize: g.cfg.Derived.OrganismRadius,
		WorldSize:   g.cfg.World.Size,
	}
	if rec, ok := g.LastSession(); ok {
		s.LastSession = rec
		s.HasSession = true
	}
	if len(g.events) > 0 {
		s.Events = append([]telemetry.Event(nil), g.events...)
	}
	if g.state == StateMenu {
		return s
	}

	s.Tick = g.tick - g.sessionTick
	body, heading, org := g.playerMap.Get(g.player)
	s.Player = view(body, heading, org)

	s.Bots = make([]OrganismView, 0, len(g.bots))
	for _, e := range g.bots {
		body, heading, org, _ := g.botMap.Get(e)
		s.Bots = append(s.Bots, view(body, heading, org))
	}

	s.Food = make([]components.Food, len(g.food))
	copy(s.Food, g.food)
	return s
}

func view(body *components.Body, heading *components.Heading, org *components.Organism) OrganismView {
	return OrganismView{
		ID:      org.ID,
		Kind:    org.Kind,
		Name:    org.Name,
		Color:   org.Color,
		Score:   org.Score,
		Alive:   org.Alive,
		Heading: heading.Angle,
		Body:    body.Clone(),
	}
}

// RankEntry is one row of the live ranking.
type RankEntry struct {
	Name   string
	Score  int
	Player bool
}

// Ranking returns living organisms by descending score, player included.
// Equal scores keep the player first, then bots in spawn order.
func (s Snapshot) Ranking() []RankEntry {
	out := make([]RankEntry, 0, len(s.Bots)+1)
	if s.Player.Alive {
		out = append(out, RankEntry{Name: s.Player.Name, Score: s.Player.Score, Player: true})
	}
	for _, b := range s.Bots {
		if b.Alive {
			out = append(out, RankEntry{Name: b.Name, Score: b.Score})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// AliveBots counts living bots in the snapshot.
func (s Snapshot) AliveBots() int {
	n := 0
	for _, b := range s.Bots {
		if b.Alive {
			n++
		}
	}
	return n
}
