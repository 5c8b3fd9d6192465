package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundLaser     SoundType = iota // Weapon discharge
	SoundShieldHit                  // Damage absorbed by shields
	SoundHullHit                    // Damage reaching hull
	SoundExplosion                  // Ship destroyed
	SoundDock                       // Docking clamp
	SoundEngine                     // Engine hum
	SoundTypeCount
)
