package parameter

import "time"

// Layout
const (
	// HUDRows is the height of the status panel at the bottom of the screen
	HUDRows = 3

	// MessageRow is the top row used for notifications
	MessageRow = 0

	// HUDBarWidth is the width of each resource gauge
	HUDBarWidth = 10
)

// Camera
const (
	// CameraScale is world units per terminal column
	CameraScale = 10.0

	// CellAspect is the height-to-width ratio of a terminal cell
	CellAspect = 2.0

	// CameraFollow is the per-frame fraction of the gap the camera closes
	CameraFollow = 0.1
)

// Starfield
const (
	StarCount = 220

	// StarFieldSpan is the world size of the repeating star tile
	StarFieldSpan = 4000.0

	// StarParallaxMin and StarParallaxMax bound how fast stars scroll relative to the camera
	StarParallaxMin = 0.2
	StarParallaxMax = 0.8
)

// Input
const (
	// KeyHoldDuration keeps a flight control engaged after its last key event
	// Terminals report presses and repeats, never releases
	KeyHoldDuration = 250 * time.Millisecond

	PowerStep     = 10
	TimeScaleStep = 0.25

	// DefaultHomingStrength is the seeking value the homing toggle switches on
	DefaultHomingStrength = 3.0
)
