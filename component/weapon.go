package component

import "github.com/lixenwraith/solar-winds/core"

// Weapon is the firing state of a ship
type Weapon struct {
	// Cooldown is seconds until the next shot is allowed, never negative
	Cooldown float64

	// BaseFireRate is seconds between shots at reference weapon power
	BaseFireRate float64

	// Seeking is the homing turn rate in rad/s given to new projectiles, 0 = unguided
	Seeking float64

	// Target is a weak handle, resolved through the arena on every use
	Target core.Entity
}

// Ready reports whether the cooldown has elapsed
func (w *Weapon) Ready() bool { return w.Cooldown <= 0 }
