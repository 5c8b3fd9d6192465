package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/solar-winds/core"
	"github.com/lixenwraith/solar-winds/parameter"
)

// floatBuffer is a mono sample buffer at unity gain
type floatBuffer []float64

// streamer plays the buffer once, or forever when loop is set
func (b floatBuffer) streamer(loop bool) beep.Streamer {
	return &bufferStreamer{buf: b, loop: loop}
}

type bufferStreamer struct {
	buf  floatBuffer
	pos  int
	loop bool
}

func (s *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if len(s.buf) == 0 {
		return 0, false
	}
	for i := range samples {
		if s.pos >= len(s.buf) {
			if !s.loop {
				return i, i > 0
			}
			s.pos = 0
		}
		v := s.buf[s.pos]
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *bufferStreamer) Err() error { return nil }

// render fills a buffer of duration d from a function of time
func render(d time.Duration, rate float64, fn func(t float64) float64) floatBuffer {
	n := int(d.Seconds() * rate)
	buf := make(floatBuffer, n)
	for i := range buf {
		buf[i] = fn(float64(i) / rate)
	}
	return buf
}

func noise() float64 { return rand.Float64()*2 - 1 }

func sine(freq, t float64) float64 { return math.Sin(2 * math.Pi * freq * t) }

func generateLaser(rate float64) floatBuffer {
	return render(parameter.LaserDuration, rate, func(t float64) float64 {
		freq := parameter.LaserStartFreq - t*parameter.LaserSweep
		return sine(freq, t) * math.Exp(-t*parameter.LaserDecay) * parameter.LaserGain
	})
}

func generateExplosion(rate float64) floatBuffer {
	return render(parameter.ExplosionDuration, rate, func(t float64) float64 {
		rumble := sine(parameter.ExplosionRumbleHz, t) * math.Exp(-t*2)
		mix := noise()*parameter.ExplosionNoiseMix + rumble*parameter.ExplosionRumbleMix
		return mix * math.Exp(-t*parameter.ExplosionDecay) * parameter.ExplosionGain
	})
}

func generateShieldHit(rate float64) floatBuffer {
	return render(parameter.ShieldHitDuration, rate, func(t float64) float64 {
		ring := sine(parameter.ShieldHitFreqLo, t) + sine(parameter.ShieldHitFreqHi, t)*parameter.ShieldHitHiMix
		return ring * math.Exp(-t*parameter.ShieldHitDecay) * parameter.ShieldHitGain
	})
}

func generateHullHit(rate float64) floatBuffer {
	return render(parameter.HullHitDuration, rate, func(t float64) float64 {
		thud := sine(parameter.HullHitThudHz, t) * math.Exp(-t*25)
		return (noise()*parameter.HullHitNoiseMix + thud) * math.Exp(-t*parameter.HullHitDecay) * parameter.HullHitGain
	})
}

func generateDock(rate float64) floatBuffer {
	d := parameter.DockDuration.Seconds()
	return render(parameter.DockDuration, rate, func(t float64) float64 {
		freq := parameter.DockFreq + math.Sin(t*parameter.DockWobbleHz)*parameter.DockWobbleAmp
		return sine(freq, t) * math.Sin(math.Pi*t/d) * parameter.DockGain
	})
}

func generateEngine(rate float64) floatBuffer {
	return render(parameter.EngineDuration, rate, func(t float64) float64 {
		wave := sine(parameter.EngineFreq, t)*parameter.EngineFundamental +
			sine(parameter.EngineFreq*2, t)*parameter.EngineOvertone +
			noise()*parameter.EngineNoise
		return wave * parameter.EngineGain
	})
}

// generateCrackle builds the vinyl noise loop: faint hiss with rare pops
func generateCrackle(rate float64) floatBuffer {
	buf := make(floatBuffer, int(parameter.CrackleLoopSeconds*rate))
	for i := range buf {
		if rand.Float64() < parameter.CracklePopChance {
			buf[i] = noise() * parameter.CracklePopLevel
		} else {
			buf[i] = noise() * parameter.CrackleNoiseLevel
		}
		buf[i] *= parameter.CrackleGain
	}
	return buf
}

// generateSound synthesizes the effect for st
func generateSound(st core.SoundType, rate float64) floatBuffer {
	switch st {
	case core.SoundLaser:
		return generateLaser(rate)
	case core.SoundShieldHit:
		return generateShieldHit(rate)
	case core.SoundHullHit:
		return generateHullHit(rate)
	case core.SoundExplosion:
		return generateExplosion(rate)
	case core.SoundDock:
		return generateDock(rate)
	case core.SoundEngine:
		return generateEngine(rate)
	default:
		return nil
	}
}
