package parameter

// Ship kinematics shared by player and enemies
const (
	// ShipDrag is the passive multiplicative velocity damping applied every tick
	ShipDrag = 0.99

	// ShipBrakePower is the default multiplicative damping while braking
	ShipBrakePower = 0.92

	// EnginePowerReference is the engine allocation that yields 1x thrust
	EnginePowerReference = 50.0

	// ShipDefaultRadius is the collision radius of an unconfigured ship
	ShipDefaultRadius = 20.0

	// ShipStartHeading points the ship "up" on screen (-Y)
	ShipStartHeading = -1.5707963267948966
)

// Player ship kinematics
const (
	PlayerMaxSpeed      = 400.0
	PlayerAcceleration  = 220.0
	PlayerRotationAccel = 5.0
)

// Enemy base kinematics before preset overrides
const (
	EnemyMaxSpeed      = 300.0
	EnemyAcceleration  = 150.0
	EnemyRotationAccel = 4.0
)

// Projectile sub-simulation
const (
	// ProjectileMaxAge is the lifetime ceiling in seconds; older projectiles are purged
	ProjectileMaxAge = 2.0

	// ProjectileMuzzleSpeed is the outgoing speed before momentum inheritance
	ProjectileMuzzleSpeed = 600.0

	// ProjectileMuzzleOffset is the spawn distance ahead of the ship center
	ProjectileMuzzleOffset = 20.0

	// ProjectileDefaultTurnRate applies when a homing projectile carries no explicit rate (rad/s)
	ProjectileDefaultTurnRate = 2.0
)

// Simulation step guard
const (
	// MaxFrameDelta caps a single tick's dt in seconds before time scaling
	MaxFrameDelta = 0.1
)
