package parameter

import "time"

// Game loop
const (
	// GameTickRate is simulation ticks per second
	GameTickRate = 60

	// GameTickInterval is the wall period between ticks
	GameTickInterval = time.Second / GameTickRate

	DefaultTimeScale = 1.0
	MinTimeScale     = 0.1
	MaxTimeScale     = 4.0

	MinSpeedMultiplier = 0.1
	MaxSpeedMultiplier = 5.0
)

// Economy
const (
	StartingCredits = 500
)

// HUD messages
const (
	// MessageDuration is how long a notification stays on screen (seconds)
	MessageDuration = 3.0
	MessageMaxQueue = 4
)

// Scripted opening
const (
	PlayerStartX = 0.0
	PlayerStartY = 200.0

	OpeningFighterX = 500.0
	OpeningFighterY = 300.0
	OpeningScoutX   = -600.0
	OpeningScoutY   = 400.0
)

// Stations
const (
	StationSize       = 60.0
	StationDockRadius = 120.0

	// StationMaxDockSpeed is the speed below which docking is permitted
	StationMaxDockSpeed = 80.0

	// StationUndockClearance is added to the dock radius when placing an undocked ship
	StationUndockClearance = 50.0
)

// Missions
const (
	// PatrolKillsMin and PatrolKillsSpread bound generated patrol bounty counts
	PatrolKillsMin    = 2
	PatrolKillsSpread = 3

	PatrolRewardMin    = 200
	PatrolRewardSpread = 200

	PriorityRewardMin    = 150
	PriorityRewardSpread = 350

	// GeneratedPatrolChance is the split between patrol and priority-target missions
	GeneratedPatrolChance = 0.5
)
