package event

import (
	"github.com/lixenwraith/solar-winds/core"
	"github.com/lixenwraith/solar-winds/vmath"
)

// ShipFiredPayload identifies the shooter and muzzle position
type ShipFiredPayload struct {
	Ship   core.Entity
	Origin vmath.Vec2
	Homing bool
}

// ShipDamagedPayload reports how incoming damage was split
type ShipDamagedPayload struct {
	Ship          core.Entity
	ShieldDamage  float64
	HullDamage    float64
	HullRemaining float64
}

// ShipDestroyedPayload identifies a ship that just reached zero hull
type ShipDestroyedPayload struct {
	Ship     core.Entity
	Position vmath.Vec2
}

// EnemySpawnedPayload describes a spawn
type EnemySpawnedPayload struct {
	Enemy    core.Entity
	Type     core.EnemyType
	Position vmath.Vec2
}

// DockPayload names the station involved in a dock or undock
type DockPayload struct {
	Ship    core.Entity
	Station string
}

// MissionPayload summarizes a mission state change
type MissionPayload struct {
	ID      string
	Title   string
	Credits int
	Reason  string
}

// CreditsPayload reports an award and the resulting balance
type CreditsPayload struct {
	Amount  int
	Balance int
	Source  string
}
