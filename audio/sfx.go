package audio

import (
	"sync/atomic"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/solar-winds/core"
	"github.com/lixenwraith/solar-winds/event"
)

// SFX plays procedural effects in response to game events
type SFX struct {
	out    Player
	cache  *soundCache
	thrust atomic.Bool
	hum    bool
}

// NewSFX synthesizes the effect bank at rate and binds it to out
func NewSFX(out Player, rate beep.SampleRate) *SFX {
	s := &SFX{
		out:   out,
		cache: newSoundCache(float64(rate)),
	}
	s.cache.preload()
	return s
}

// Play triggers one effect
func (s *SFX) Play(st core.SoundType) {
	buf := s.cache.get(st)
	if buf == nil || s.out == nil {
		return
	}
	s.out.Play(buf.streamer(false))
}

// Thrust gates the looping engine hum
func (s *SFX) Thrust(on bool) {
	if on && !s.hum && s.out != nil {
		s.hum = true
		s.out.Play(&gate{s: s.cache.get(core.SoundEngine).streamer(true), on: &s.thrust})
	}
	s.thrust.Store(on)
}

func (s *SFX) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventShipFired,
		event.EventShipDamaged,
		event.EventShipDestroyed,
		event.EventShipDocked,
	}
}

func (s *SFX) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventShipFired:
		s.Play(core.SoundLaser)
	case event.EventShipDamaged:
		p, ok := ev.Payload.(*event.ShipDamagedPayload)
		if !ok {
			return
		}
		if p.ShieldDamage > 0 {
			s.Play(core.SoundShieldHit)
		}
		if p.HullDamage > 0 {
			s.Play(core.SoundHullHit)
		}
	case event.EventShipDestroyed:
		s.Play(core.SoundExplosion)
	case event.EventShipDocked:
		s.Play(core.SoundDock)
	}
}

// gate passes its source through while on, silence otherwise; never drains
type gate struct {
	s  beep.Streamer
	on *atomic.Bool
}

func (g *gate) Stream(samples [][2]float64) (n int, ok bool) {
	if !g.on.Load() {
		clear(samples)
		return len(samples), true
	}
	n, ok = g.s.Stream(samples)
	if !ok {
		clear(samples)
		return len(samples), true
	}
	return n, true
}

func (g *gate) Err() error { return nil }
