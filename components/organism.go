package components

// Heading is the current movement angle in radians.
type Heading struct {
	Angle float64
}

// Organism bundles identity, score and liveness.
type Organism struct {
	ID    uint32
	Kind  Kind
	Name  string
	Color Color
	Score int  // equals body length
	Alive bool // dead organisms contribute no geometry and are not updated
}

// Bot holds per-bot controller state.
type Bot struct {
	Index     int // spawn order; bots are updated in this order
	RespawnIn int // ticks until respawn, 0 when alive or respawn is disabled
}
