// Package ai drives enemy ships with a four-state behavior machine
package ai

import (
	"math"

	"github.com/lixenwraith/solar-winds/component"
	"github.com/lixenwraith/solar-winds/core"
	"github.com/lixenwraith/solar-winds/parameter"
	"github.com/lixenwraith/solar-winds/vmath"
)

// Preset is the static definition of an enemy type
type Preset struct {
	Radius       float64
	MaxSpeed     float64
	Acceleration float64
	MaxHull      float64
	MaxShields   float64
	Weapons      int
	Tune         component.Tunables
}

// Presets is indexed by core.EnemyType
var Presets = [core.EnemyTypeCount]Preset{
	core.EnemyScout: {
		Radius:       14,
		MaxSpeed:     280,
		Acceleration: 140,
		MaxHull:      50,
		MaxShields:   30,
		Weapons:      parameter.PowerDefault,
		Tune: component.Tunables{
			AggroRange:     parameter.EnemyAggroRange,
			AttackRange:    parameter.EnemyAttackRange,
			EvadeThreshold: 50,
			PursuitChance:  parameter.EnemyPursuitChance,
			Seeking:        0,
			Credits:        100,
		},
	},
	core.EnemyFighter: {
		Radius:       18,
		MaxSpeed:     220,
		Acceleration: 120,
		MaxHull:      80,
		MaxShields:   60,
		Weapons:      parameter.PowerDefault,
		Tune: component.Tunables{
			AggroRange:     parameter.EnemyAggroRange,
			AttackRange:    parameter.EnemyAttackRange,
			EvadeThreshold: parameter.EnemyEvadeThreshold,
			PursuitChance:  parameter.EnemyPursuitChance,
			Seeking:        2.0,
			Credits:        200,
		},
	},
	core.EnemyHeavy: {
		Radius:       24,
		MaxSpeed:     150,
		Acceleration: 70,
		MaxHull:      180,
		MaxShields:   120,
		Weapons:      70,
		Tune: component.Tunables{
			AggroRange:     parameter.EnemyAggroRange,
			AttackRange:    parameter.EnemyAttackRange,
			EvadeThreshold: 20,
			PursuitChance:  parameter.EnemyPursuitChance,
			Seeking:        4.0,
			Credits:        500,
		},
	},
}

// NewEnemy builds an enemy of type t at pos with preset values applied
// rng seeds the patrol heading and wander rate
func NewEnemy(id core.Entity, t core.EnemyType, pos vmath.Vec2, rng Roller, speedMult float64) *component.Enemy {
	p := Presets[t]
	h := component.Handling{
		BaseMaxSpeed:  p.MaxSpeed,
		Acceleration:  p.Acceleration,
		RotationAccel: parameter.EnemyRotationAccel,
		BrakePower:    parameter.ShipBrakePower,
		Drag:          parameter.ShipDrag,
		Radius:        p.Radius,
	}
	h.ApplySpeedMultiplier(speedMult)

	ship := component.NewShip(id, pos, h)
	ship.Hull = component.NewPool(p.MaxHull)
	ship.Shields = component.NewPool(p.MaxShields)
	ship.Power.Set(component.PowerWeapons, p.Weapons)
	ship.Weapon.Seeking = p.Tune.Seeking

	angle := rng.Float64() * 2 * math.Pi
	return &component.Enemy{
		Ship:        *ship,
		Type:        t,
		State:       core.AIPatrol,
		PatrolAngle: angle,
		PatrolRate:  parameter.PatrolRateMin + rng.Float64()*parameter.PatrolRateSpread,
		Tune:        p.Tune,
	}
}
