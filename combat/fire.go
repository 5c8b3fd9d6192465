// Package combat implements firing and damage resolution for ships
package combat

import (
	"github.com/lixenwraith/solar-winds/component"
	"github.com/lixenwraith/solar-winds/event"
	"github.com/lixenwraith/solar-winds/parameter"
	"github.com/lixenwraith/solar-winds/vmath"
)

// FireInterval returns seconds between shots for the weapon allocation
// Returns 0 when the weapon is unpowered
func FireInterval(baseFireRate float64, weapons int) float64 {
	if weapons <= 0 {
		return 0
	}
	return baseFireRate / (float64(weapons) / parameter.WeaponPowerReference)
}

// ProjectileDamage returns per-shot damage for the weapon allocation
func ProjectileDamage(weapons int) float64 {
	return parameter.WeaponBaseDamage + float64(weapons)/parameter.WeaponDamagePowerDivisor
}

// Fire spawns a projectile if the weapon is ready
// Rejected while cooling down, docked, destroyed or with weapons unpowered
func Fire(s *component.Ship, emit event.Emitter) bool {
	if s.Destroyed || s.Docked || !s.Weapon.Ready() || s.Power.Weapons <= 0 {
		return false
	}

	s.Weapon.Cooldown = FireInterval(s.Weapon.BaseFireRate, s.Power.Weapons)

	heading := vmath.FromAngle(s.Rotation)
	p := component.Projectile{
		Pos:    s.Pos.Add(heading.Scale(parameter.ProjectileMuzzleOffset)),
		Vel:    heading.Scale(parameter.ProjectileMuzzleSpeed).Add(s.Vel),
		Damage: ProjectileDamage(s.Power.Weapons),
	}
	if s.Weapon.Seeking > 0 && s.Weapon.Target.Valid() {
		p.Target = s.Weapon.Target
		p.TurnRate = s.Weapon.Seeking
	}
	s.Projectiles = append(s.Projectiles, p)

	if emit == nil {
		emit = event.Discard
	}
	emit.Emit(event.EventShipFired, &event.ShipFiredPayload{
		Ship:   s.ID,
		Origin: p.Pos,
		Homing: p.Homing(),
	})
	return true
}
