package component

import "github.com/lixenwraith/solar-winds/vmath"

// Kinetic is the continuous motion state of a body in world units
type Kinetic struct {
	Pos vmath.Vec2
	Vel vmath.Vec2

	// Rotation is the heading in radians, 0 = +X, increasing clockwise on screen
	Rotation float64
}

// Handling holds the per-ship motion limits and damping factors
type Handling struct {
	// BaseMaxSpeed is the preset top speed before any speed multiplier
	BaseMaxSpeed  float64
	MaxSpeed      float64
	Acceleration  float64
	RotationAccel float64 // rad/s while a rotate flag is held
	BrakePower    float64 // velocity multiplier per braking tick
	Drag          float64 // velocity multiplier every tick
	Radius        float64
}

// ApplySpeedMultiplier rescales MaxSpeed from the preset base
func (h *Handling) ApplySpeedMultiplier(mult float64) {
	h.MaxSpeed = h.BaseMaxSpeed * mult
}
