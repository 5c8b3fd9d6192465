package ai

import (
	"math"

	"github.com/lixenwraith/solar-winds/component"
	"github.com/lixenwraith/solar-winds/core"
	"github.com/lixenwraith/solar-winds/parameter"
	"github.com/lixenwraith/solar-winds/vmath"
)

// Roller is the random source for probabilistic decisions
// *rand.Rand satisfies it
type Roller interface {
	Float64() float64
}

// Observation is what an enemy knows about the player this tick
type Observation struct {
	ID       core.Entity
	Position vmath.Vec2
	Alive    bool
}

// Intent is the control output of one think step
type Intent struct {
	component.ControlInput
	Fire bool
}

// Brain evaluates enemy behavior
type Brain struct {
	rng Roller
}

// NewBrain creates a brain drawing randomness from rng
func NewBrain(rng Roller) *Brain {
	return &Brain{rng: rng}
}

// Think runs one tick: target revalidation, a single state transition, then intent generation
func (b *Brain) Think(e *component.Enemy, player Observation, dt float64) Intent {
	if e.Destroyed {
		return Intent{}
	}
	e.StateTime += dt

	if !player.Alive || !player.ID.Valid() {
		e.Target = core.NoEntity
		e.Weapon.Target = core.NoEntity
		e.SetState(core.AIPatrol)
		return Intent{ControlInput: b.patrol(e, dt)}
	}

	dist := e.Pos.Dist(player.Position)
	b.transition(e, player, dist)

	var in component.ControlInput
	bearing := player.Position.Sub(e.Pos).Angle()

	switch e.State {
	case core.AIPatrol:
		in = b.patrol(e, dt)

	case core.AIPursue:
		in = steer(e.Rotation, bearing)
		if math.Abs(vmath.AngleDiff(e.Rotation, bearing)) < parameter.PursueThrustCone &&
			b.rng.Float64() < parameter.PursueThrustChance {
			in.Thrust = true
		}

	case core.AIAttack:
		in = steer(e.Rotation, bearing)
		switch {
		case dist < e.Tune.AttackRange*parameter.AttackStandoffRatio:
			in = steer(e.Rotation, bearing+math.Pi)
			in.Thrust = true
		case dist > e.Tune.AttackRange*parameter.AttackCloseRatio:
			in.Thrust = true
		}

	case core.AIEvade:
		in = steer(e.Rotation, bearing+math.Pi)
		in.Thrust = true
	}

	fire := e.State == core.AIAttack &&
		dist < e.Tune.AttackRange &&
		b.rng.Float64() < parameter.AttackFireChance

	return Intent{ControlInput: in, Fire: fire}
}

// transition applies at most one state change per tick
func (b *Brain) transition(e *component.Enemy, player Observation, dist float64) {
	t := &e.Tune
	switch e.State {
	case core.AIPatrol:
		if dist < t.AggroRange && b.rng.Float64() < t.PursuitChance {
			e.SetState(core.AIPursue)
			e.Target = player.ID
		}

	case core.AIPursue:
		if dist > t.AggroRange*parameter.EnemyPursueLeash {
			e.SetState(core.AIPatrol)
			e.Target = core.NoEntity
		} else if dist < t.AttackRange {
			e.SetState(core.AIAttack)
		}

	case core.AIAttack:
		next := core.AIAttack
		if dist > t.AttackRange*parameter.EnemyAttackLeash {
			next = core.AIPursue
		}
		if e.HullPercent() < t.EvadeThreshold {
			next = core.AIEvade
		}
		e.SetState(next)

	case core.AIEvade:
		if dist > t.AggroRange*parameter.EnemyEvadeLeash || e.StateTime > parameter.EnemyEvadeTimeout {
			e.SetState(core.AIPatrol)
			e.Target = core.NoEntity
		}
	}

	if t.Seeking > 0 {
		e.Weapon.Target = e.Target
	}
}

// patrol advances the wander heading and always thrusts along it
func (b *Brain) patrol(e *component.Enemy, dt float64) component.ControlInput {
	e.PatrolAngle = vmath.NormalizeAngle(e.PatrolAngle + e.PatrolRate*dt)
	in := steer(e.Rotation, e.PatrolAngle)
	in.Thrust = true
	return in
}

// PatrolWaypoint is the point the enemy is currently wandering toward
func PatrolWaypoint(e *component.Enemy) vmath.Vec2 {
	return e.Pos.Add(vmath.Polar(e.PatrolAngle, parameter.PatrolLookAhead))
}

// steer returns discrete rotation flags toward desired, with a deadband
func steer(heading, desired float64) component.ControlInput {
	var in component.ControlInput
	diff := vmath.AngleDiff(heading, desired)
	if diff > parameter.SteerDeadband {
		in.RotateRight = true
	} else if diff < -parameter.SteerDeadband {
		in.RotateLeft = true
	}
	return in
}
