package systems

import (
	"github.com/pthm-cable/snakesize/components"
	"github.com/pthm-cable/snakesize/config"
)

// FoodManager spawns, consumes and recycles food. It holds no food itself;
// the orchestrator owns the food slice and passes it through.
type FoodManager struct {
	rng       Rand
	worldSize float64
	radius    float64 // food draw radius
	reach     float64 // organism radius, how close a head must get to eat
	stride    int
	jitter    float64
	palette   []components.Color
}

// NewFoodManager creates a food manager from config.
func NewFoodManager(cfg *config.Config, rng Rand) (*FoodManager, error) {
	palette := make([]components.Color, 0, len(cfg.Food.Palette))
	for _, hex := range cfg.Food.Palette {
		c, err := components.ParseHexColor(hex)
		if err != nil {
			return nil, err
		}
		palette = append(palette, c)
	}

	return &FoodManager{
		rng:       rng,
		worldSize: cfg.World.Size,
		radius:    cfg.Food.Radius,
		reach:     cfg.Derived.OrganismRadius,
		stride:    cfg.Food.ScatterStride,
		jitter:    cfg.Food.ScatterJitter,
		palette:   palette,
	}, nil
}

// Generate returns count items at uniform random world positions.
func (m *FoodManager) Generate(count int) []components.Food {
	food := make([]components.Food, 0, count)
	for i := 0; i < count; i++ {
		food = append(food, m.spawn(components.Point{
			X: m.rng.Float64() * m.worldSize,
			Y: m.rng.Float64() * m.worldSize,
		}))
	}
	return food
}

// Consume removes every item strictly within reach of head and appends one
// fresh random item per removal, so the total is unchanged. Surviving items
// keep their relative order; replacements go to the end. The input slice's
// backing array is reused.
func (m *FoodManager) Consume(head components.Point, food []components.Food) (int, []components.Food) {
	kept := food[:0]
	eaten := 0
	for _, f := range food {
		if within(head, f.Position, m.reach) {
			eaten++
			continue
		}
		kept = append(kept, f)
	}
	if eaten == 0 {
		return 0, kept
	}
	return eaten, append(kept, m.Generate(eaten)...)
}

// Scatter turns every stride-th segment of a dead body, starting at the head,
// into a food item jittered uniformly within ±jitter on each axis.
func (m *FoodManager) Scatter(body []components.Point) []components.Food {
	out := make([]components.Food, 0, len(body)/m.stride+1)
	for i := 0; i < len(body); i += m.stride {
		seg := body[i]
		out = append(out, m.spawn(components.Point{
			X: seg.X + (m.rng.Float64()*2-1)*m.jitter,
			Y: seg.Y + (m.rng.Float64()*2-1)*m.jitter,
		}))
	}
	return out
}

func (m *FoodManager) spawn(p components.Point) components.Food {
	return components.Food{
		Position: p,
		Color:    m.palette[m.rng.Intn(len(m.palette))],
		Radius:   m.radius,
	}
}
