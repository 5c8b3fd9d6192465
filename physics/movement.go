package physics

import (
	"github.com/lixenwraith/solar-winds/component"
	"github.com/lixenwraith/solar-winds/parameter"
	"github.com/lixenwraith/solar-winds/vmath"
)

// CapSpeed limits the velocity vector magnitude to maxSpeed
// Returns true if velocity was clamped
func CapSpeed(vel *vmath.Vec2, maxSpeed float64) bool {
	if vel.LenSq() <= maxSpeed*maxSpeed {
		return false
	}
	*vel = vmath.ClampMagnitude(*vel, maxSpeed)
	return true
}

// Integrate advances rotation, velocity and position of s by dt seconds
// Docked or destroyed ships are untouched
// Returns false when the step produced a non-finite position; the ship is then
// held in place with zero velocity
func Integrate(s *component.Ship, in component.ControlInput, dt float64) bool {
	if !s.Controllable() {
		return true
	}

	if in.RotateLeft {
		s.Rotation -= s.RotationAccel * dt
	}
	if in.RotateRight {
		s.Rotation += s.RotationAccel * dt
	}
	s.Rotation = vmath.NormalizeAngle(s.Rotation)

	if in.Thrust {
		power := float64(s.Power.Engines) / parameter.EnginePowerReference
		s.Vel = s.Vel.Add(vmath.FromAngle(s.Rotation).Scale(s.Acceleration * power * dt))
	}
	if in.Brake {
		s.Vel = s.Vel.Scale(s.BrakePower)
	}
	s.Vel = s.Vel.Scale(s.Drag)
	CapSpeed(&s.Vel, s.MaxSpeed)

	next := s.Pos.Add(s.Vel.Scale(dt))
	if !next.IsFinite() || !s.Vel.IsFinite() {
		s.Vel = vmath.Vec2{}
		return false
	}
	s.Pos = next
	return true
}

// RegenShields restores shields in proportion to shield power
func RegenShields(s *component.Ship, dt float64) {
	if s.Destroyed {
		return
	}
	s.Shields.Add(float64(s.Power.Shields) / 100 * parameter.ShieldRegenRate * dt)
}

// TickCooldown counts the weapon cooldown down to zero
func TickCooldown(s *component.Ship, dt float64) {
	s.Weapon.Cooldown = max(0, s.Weapon.Cooldown-dt)
}

// Step runs one full per-ship update
// A destroyed ship does not move or regenerate, but its projectiles keep flying
func Step(s *component.Ship, in component.ControlInput, dt float64, targets TargetResolver) bool {
	ok := Integrate(s, in, dt)
	if !s.Destroyed {
		RegenShields(s, dt)
		TickCooldown(s, dt)
	}
	UpdateProjectiles(s, dt, targets)
	return ok
}
