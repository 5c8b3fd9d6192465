package component

import (
	"github.com/lixenwraith/solar-winds/core"
	"github.com/lixenwraith/solar-winds/parameter"
	"github.com/lixenwraith/solar-winds/vmath"
)

// Movable exposes read-only kinematic state
type Movable interface {
	Position() vmath.Vec2
	Velocity() vmath.Vec2
	Heading() float64
}

// Armable exposes the weapon and in-flight projectiles
type Armable interface {
	Movable
	Armament() *Weapon
	Shots() []Projectile
}

// Damageable exposes resource pools and lifecycle
type Damageable interface {
	HullPercent() float64
	ShieldPercent() float64
	EnergyPercent() float64
	IsDestroyed() bool
}

// Ship is the shared body of the player and every enemy
type Ship struct {
	ID core.Entity

	Kinetic
	Handling

	Hull    Pool
	Shields Pool
	Energy  Pool

	Power  Power
	Weapon Weapon

	// Projectiles are exclusively owned, ordered by fire time
	Projectiles []Projectile

	Docked    bool
	Destroyed bool
}

// PlayerHandling returns the player's motion limits
func PlayerHandling() Handling {
	return Handling{
		BaseMaxSpeed:  parameter.PlayerMaxSpeed,
		MaxSpeed:      parameter.PlayerMaxSpeed,
		Acceleration:  parameter.PlayerAcceleration,
		RotationAccel: parameter.PlayerRotationAccel,
		BrakePower:    parameter.ShipBrakePower,
		Drag:          parameter.ShipDrag,
		Radius:        parameter.ShipDefaultRadius,
	}
}

// NewShip creates a ship at pos with full pools and default power
func NewShip(id core.Entity, pos vmath.Vec2, h Handling) *Ship {
	return &Ship{
		ID:       id,
		Kinetic:  Kinetic{Pos: pos, Rotation: parameter.ShipStartHeading},
		Handling: h,
		Hull:     NewPool(parameter.DefaultMaxHull),
		Shields:  NewPool(parameter.DefaultMaxShields),
		Energy:   NewPool(parameter.DefaultMaxEnergy),
		Power:    DefaultPower(),
		Weapon:   Weapon{BaseFireRate: parameter.WeaponBaseFireRate},
	}
}

func (s *Ship) Position() vmath.Vec2 { return s.Pos }
func (s *Ship) Velocity() vmath.Vec2 { return s.Vel }
func (s *Ship) Heading() float64 { return s.Rotation }
func (s *Ship) Speed() float64 { return s.Vel.Len() }
func (s *Ship) Armament() *Weapon { return &s.Weapon }
func (s *Ship) Shots() []Projectile { return s.Projectiles }
func (s *Ship) HullPercent() float64 { return s.Hull.Percent() }
func (s *Ship) ShieldPercent() float64 { return s.Shields.Percent() }
func (s *Ship) EnergyPercent() float64 { return s.Energy.Percent() }
func (s *Ship) IsDestroyed() bool { return s.Destroyed }

// Alive reports a ship that can still act and be targeted
func (s *Ship) Alive() bool { return s != nil && !s.Destroyed }

// Controllable reports whether control input has any effect
func (s *Ship) Controllable() bool { return !s.Destroyed && !s.Docked }

// Repair restores all pools to max
func (s *Ship) Repair() {
	s.Hull.Fill()
	s.Shields.Fill()
	s.Energy.Fill()
}
