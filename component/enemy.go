package component

import (
	"github.com/lixenwraith/solar-winds/core"
)

// Tunables are the behavior parameters resolved from a preset at spawn
type Tunables struct {
	AggroRange  float64
	AttackRange float64

	// EvadeThreshold is a hull percentage, 0..100
	EvadeThreshold float64
	PursuitChance  float64
	Seeking        float64
	Credits        int
}

// Enemy is an AI-driven ship
type Enemy struct {
	Ship

	Type core.EnemyType

	State core.AIState
	// StateTime is seconds spent in the current state
	StateTime float64

	// Target is the pursued ship, weak handle
	Target core.Entity

	PatrolAngle float64
	PatrolRate  float64

	Tune Tunables
}

// SetState transitions and resets the state timer; same-state is a no-op
func (e *Enemy) SetState(s core.AIState) {
	if e.State == s {
		return
	}
	e.State = s
	e.StateTime = 0
}

// Resolved reports a destroyed enemy with no projectiles left in flight
func (e *Enemy) Resolved() bool {
	return e.Destroyed && len(e.Projectiles) == 0
}
