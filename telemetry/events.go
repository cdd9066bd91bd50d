// Package telemetry provides arena health tracking, session records and CSV output.
package telemetry

import "github.com/pthm-cable/snakesize/components"

// EventType identifies telemetry events.
type EventType uint8

const (
	EventBotDied EventType = iota
	EventBotRespawned
	EventPlayerDied
)

func (t EventType) String() string {
	switch t {
	case EventBotDied:
		return "bot_died"
	case EventBotRespawned:
		return "bot_respawned"
	case EventPlayerDied:
		return "player_died"
	default:
		return "unknown"
	}
}

// DeathCause records why an organism stopped.
type DeathCause uint8

const (
	CauseNone DeathCause = iota
	CauseBoundary
	CauseCollision
)

func (c DeathCause) String() string {
	switch c {
	case CauseBoundary:
		return "boundary"
	case CauseCollision:
		return "collision"
	default:
		return "none"
	}
}

// Event represents a single telemetry event.
type Event struct {
	Type     EventType
	Tick     int32
	EntityID uint32
	Kind     components.Kind
	Name     string
	Score    int
	Cause    DeathCause
}

// NewDeathEvent creates a death event for either kind of organism.
func NewDeathEvent(tick int32, org components.Organism, cause DeathCause) Event {
	typ := EventBotDied
	if org.Kind == components.KindPlayer {
		typ = EventPlayerDied
	}
	return Event{
		Type:     typ,
		Tick:     tick,
		EntityID: org.ID,
		Kind:     org.Kind,
		Name:     org.Name,
		Score:    org.Score,
		Cause:    cause,
	}
}

// NewRespawnEvent creates a bot respawn event.
func NewRespawnEvent(tick int32, org components.Organism) Event {
	return Event{
		Type:     EventBotRespawned,
		Tick:     tick,
		EntityID: org.ID,
		Kind:     org.Kind,
		Name:     org.Name,
		Score:    org.Score,
	}
}
