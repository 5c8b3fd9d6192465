package component

import (
	"github.com/lixenwraith/solar-winds/core"
	"github.com/lixenwraith/solar-winds/parameter"
	"github.com/lixenwraith/solar-winds/vmath"
)

// Projectile is a shot owned by the ship that fired it
type Projectile struct {
	Pos vmath.Vec2
	Vel vmath.Vec2

	// Age in seconds since spawn, monotonic
	Age    float64
	Damage float64

	// Target is the homing target, NoEntity flies straight
	Target   core.Entity
	TurnRate float64

	// Hit marks the projectile for removal on the next purge
	Hit bool
}

// Expired reports whether the projectile is due for purge
func (p *Projectile) Expired() bool {
	return p.Hit || p.Age >= parameter.ProjectileMaxAge
}

// Homing reports whether the projectile steers toward a target
func (p *Projectile) Homing() bool {
	return p.Target.Valid() && p.TurnRate > 0
}
