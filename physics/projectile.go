package physics

import (
	"math"

	"github.com/lixenwraith/solar-winds/component"
	"github.com/lixenwraith/solar-winds/core"
	"github.com/lixenwraith/solar-winds/vmath"
)

// TargetResolver looks up a live target's position by handle
// ok is false for unknown or destroyed entities
type TargetResolver interface {
	Resolve(e core.Entity) (pos vmath.Vec2, ok bool)
}

// ResolverFunc adapts a function to TargetResolver
type ResolverFunc func(e core.Entity) (vmath.Vec2, bool)

func (f ResolverFunc) Resolve(e core.Entity) (vmath.Vec2, bool) { return f(e) }

// UpdateProjectiles steers, moves and ages every projectile owned by s, then purges
func UpdateProjectiles(s *component.Ship, dt float64, targets TargetResolver) {
	for i := range s.Projectiles {
		p := &s.Projectiles[i]
		if p.Hit {
			continue
		}
		if p.Homing() && targets != nil {
			if pos, ok := targets.Resolve(p.Target); ok {
				SteerToward(p, pos, dt)
			}
		}
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.Age += dt
	}
	Purge(s)
}

// SteerToward rotates the projectile velocity toward target by at most TurnRate*dt
// Speed is preserved
func SteerToward(p *component.Projectile, target vmath.Vec2, dt float64) {
	speed := p.Vel.Len()
	if speed == 0 {
		return
	}
	to := target.Sub(p.Pos)
	if to.LenSq() == 0 {
		return
	}
	current := p.Vel.Angle()
	desired := to.Angle()
	diff := vmath.AngleDiff(current, desired)

	maxTurn := p.TurnRate * dt
	turn := math.Copysign(math.Min(math.Abs(diff), maxTurn), diff)
	p.Vel = vmath.Polar(current+turn, speed)
}

// Purge removes expired and hit projectiles in place, preserving order
func Purge(s *component.Ship) {
	kept := s.Projectiles[:0]
	for _, p := range s.Projectiles {
		if !p.Expired() {
			kept = append(kept, p)
		}
	}
	clear(s.Projectiles[len(kept):])
	s.Projectiles = kept
}

// Hits reports whether the projectile lies inside the circle at center
func Hits(p *component.Projectile, center vmath.Vec2, radius float64) bool {
	return p.Pos.Sub(center).LenSq() < radius*radius
}
