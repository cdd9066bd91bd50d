package systems

import (
	"github.com/pthm-cable/snakesize/components"
	"github.com/pthm-cable/snakesize/config"
)

// Decision records which branch of the bot policy fired on a tick.
type Decision uint8

const (
	DecisionHold   Decision = iota // keep the previous heading as target
	DecisionSeek                   // steer at visible food
	DecisionWander                 // random nudge
)

// BotPolicy is the stochastic Seek/Wander steering rule. There is no
// persistent state beyond the organism's heading; the choice is redrawn
// every tick.
type BotPolicy struct {
	SensingRadius float64
	SeekChance    float64
	WanderChance  float64
	WanderJitter  float64
	TurnEasing    float64
}

// NewBotPolicy returns the policy configured under bots.
func NewBotPolicy(cfg *config.Config) BotPolicy {
	b := cfg.Bots
	return BotPolicy{
		SensingRadius: b.SensingRadius,
		SeekChance:    b.SeekChance,
		WanderChance:  b.WanderChance,
		WanderJitter:  b.WanderJitter,
		TurnEasing:    b.TurnEasing,
	}
}

// Sense returns the first food item, in slice order, strictly within the
// sensing radius of head. First match, not nearest.
func (p BotPolicy) Sense(head components.Point, food []components.Food) (components.Food, bool) {
	for _, f := range food {
		if within(head, f.Position, p.SensingRadius) {
			return f, true
		}
	}
	return components.Food{}, false
}

// Target picks this tick's target heading. The seek draw is only taken when
// food is in range; the wander draw is taken whenever seek does not fire.
func (p BotPolicy) Target(head components.Point, heading float64, food []components.Food, rng Rand) (float64, Decision) {
	if f, ok := p.Sense(head, food); ok && rng.Float64() < p.SeekChance {
		return AngleTo(head, f.Position), DecisionSeek
	}
	if rng.Float64() < p.WanderChance {
		return heading + (rng.Float64()*2-1)*p.WanderJitter, DecisionWander
	}
	return heading, DecisionHold
}

// Steer eases heading toward target by TurnEasing of the shortest angular gap.
func (p BotPolicy) Steer(heading, target float64) float64 {
	return heading + NormalizeAngle(target-heading)*p.TurnEasing
}

// Decide runs Target then Steer and returns the new heading.
func (p BotPolicy) Decide(head components.Point, heading float64, food []components.Food, rng Rand) (float64, Decision) {
	target, d := p.Target(head, heading, food, rng)
	return p.Steer(heading, target), d
}
