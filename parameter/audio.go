package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 44100
	AudioChannels   = 2

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond
)

// Ambient vinyl crackle
const (
	CrackleNoiseLevel  = 0.002
	CracklePopLevel    = 0.15
	CracklePopChance   = 0.00005
	CrackleGain        = 0.1
	CrackleLoopSeconds = 2.0
)

// Laser sound
const (
	LaserDuration  = 120 * time.Millisecond
	LaserStartFreq = 600.0
	LaserSweep     = 2500.0 // Hz per second downward
	LaserDecay     = 25.0
	LaserGain      = 0.25
)

// Explosion sound
const (
	ExplosionDuration  = 600 * time.Millisecond
	ExplosionNoiseMix  = 0.4
	ExplosionRumbleHz  = 50.0
	ExplosionRumbleMix = 0.8
	ExplosionDecay     = 4.0
	ExplosionGain      = 0.35
)

// Shield hit sound
const (
	ShieldHitDuration = 200 * time.Millisecond
	ShieldHitFreqLo   = 1000.0
	ShieldHitFreqHi   = 1500.0
	ShieldHitHiMix    = 0.5
	ShieldHitDecay    = 15.0
	ShieldHitGain     = 0.15
)

// Hull hit sound
const (
	HullHitDuration = 250 * time.Millisecond
	HullHitNoiseMix = 0.25
	HullHitThudHz   = 120.0
	HullHitDecay    = 12.0
	HullHitGain     = 0.25
)

// Dock chime
const (
	DockDuration  = 500 * time.Millisecond
	DockFreq      = 350.0
	DockWobbleHz  = 15.0
	DockWobbleAmp = 80.0
	DockGain      = 0.15
)

// Engine hum, looped while thrusting
const (
	EngineDuration    = time.Second
	EngineFreq        = 70.0
	EngineFundamental = 0.25
	EngineOvertone    = 0.08
	EngineNoise       = 0.03
	EngineGain        = 0.15
)
