package combat

import (
	"github.com/lixenwraith/solar-winds/component"
	"github.com/lixenwraith/solar-winds/event"
)

// Report describes the outcome of one damage application
type Report struct {
	ShieldDamage float64
	HullDamage   float64
	// Destroyed is true only on the call that destroyed the ship
	Destroyed bool
}

// Absorbed reports whether any damage landed
func (r Report) Absorbed() bool {
	return r.ShieldDamage > 0 || r.HullDamage > 0
}

// ApplyDamage drains shields first, then hull
// No-op on destroyed ships and non-positive amounts
// Destruction is one-way and emitted exactly once
func ApplyDamage(s *component.Ship, amount float64, emit event.Emitter) Report {
	var r Report
	if s.Destroyed || amount <= 0 {
		return r
	}

	r.ShieldDamage = s.Shields.Drain(amount)
	r.HullDamage = s.Hull.Drain(amount - r.ShieldDamage)

	if emit == nil {
		emit = event.Discard
	}
	emit.Emit(event.EventShipDamaged, &event.ShipDamagedPayload{
		Ship:          s.ID,
		ShieldDamage:  r.ShieldDamage,
		HullDamage:    r.HullDamage,
		HullRemaining: s.Hull.Value,
	})

	if s.Hull.Empty() {
		s.Destroyed = true
		r.Destroyed = true
		emit.Emit(event.EventShipDestroyed, &event.ShipDestroyedPayload{
			Ship:     s.ID,
			Position: s.Pos,
		})
	}
	return r
}
