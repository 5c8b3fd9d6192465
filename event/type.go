package event

// EventType represents the type of game event
type EventType int

const (
	// === Combat Event ===

	// EventShipFired signals a projectile leaving a ship
	// Trigger: combat.Fire
	// Consumer: SFX, metrics | Payload: *ShipFiredPayload
	EventShipFired EventType = iota

	// EventShipDamaged signals damage applied after shield absorption
	// Trigger: combat.ApplyDamage
	// Consumer: SFX | Payload: *ShipDamagedPayload
	EventShipDamaged

	// EventShipDestroyed signals the one-way transition to destroyed
	// Trigger: combat.ApplyDamage, exactly once per ship
	// Consumer: SFX, Game (credits, mission progress) | Payload: *ShipDestroyedPayload
	EventShipDestroyed

	// === World Event ===

	// EventEnemySpawned signals a new enemy in the arena
	// Trigger: Director | Payload: *EnemySpawnedPayload
	EventEnemySpawned

	// EventShipDocked signals the player docking at a station
	// Trigger: world.Dock
	// Consumer: SFX, missions | Payload: *DockPayload
	EventShipDocked

	// EventShipUndocked signals the player leaving a station
	// Trigger: world.Undock | Payload: *DockPayload
	EventShipUndocked

	// === Mission Event ===

	// EventMissionCompleted signals a finished mission
	// Trigger: mission.Board | Payload: *MissionPayload
	EventMissionCompleted

	// EventMissionFailed signals an expired or abandoned mission
	// Trigger: mission.Board | Payload: *MissionPayload
	EventMissionFailed

	// EventCreditsAwarded signals a credit balance change
	// Trigger: kill reward, mission reward | Payload: *CreditsPayload
	EventCreditsAwarded

	EventTypeCount
)

var eventNames = [...]string{
	"ship_fired",
	"ship_damaged",
	"ship_destroyed",
	"enemy_spawned",
	"ship_docked",
	"ship_undocked",
	"mission_completed",
	"mission_failed",
	"credits_awarded",
}

func (t EventType) String() string {
	if t >= 0 && int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// GameEvent is a single notification with a type-specific payload
type GameEvent struct {
	Type    EventType
	Payload any
}
