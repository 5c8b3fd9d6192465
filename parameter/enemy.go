package parameter

// Enemy behavior thresholds shared by all presets
const (
	// EnemyAggroRange is the distance at which patrol may switch to pursue
	EnemyAggroRange = 300.0

	// EnemyAttackRange is the distance at which pursue switches to attack
	EnemyAttackRange = 200.0

	// EnemyEvadeThreshold is the hull percentage below which attack breaks into evade
	EnemyEvadeThreshold = 35.0

	// EnemyPursuitChance is the per-tick probability of taking aggro while in range
	EnemyPursuitChance = 0.6

	// EnemyPursueLeash multiplies aggro range for pursue → patrol
	EnemyPursueLeash = 2.5

	// EnemyAttackLeash multiplies attack range for attack → pursue
	EnemyAttackLeash = 1.5

	// EnemyEvadeLeash multiplies aggro range for evade → patrol
	EnemyEvadeLeash = 1.5

	// EnemyEvadeTimeout is the maximum time in evade before returning to patrol (seconds)
	EnemyEvadeTimeout = 5.0
)

// Steering
const (
	// SteerDeadband is the heading error inside which no rotation is requested
	SteerDeadband = 0.1

	// PursueThrustCone is the heading error below which pursue may thrust
	PursueThrustCone = 0.8

	// PursueThrustChance is the per-tick thrust probability while pursuing
	PursueThrustChance = 0.7

	// AttackCloseRatio of attack range beyond which attack closes in
	AttackCloseRatio = 0.8

	// AttackStandoffRatio of attack range inside which attack backs off
	AttackStandoffRatio = 0.4

	// AttackFireChance is the per-tick auto-fire probability in attack
	AttackFireChance = 0.1
)

// Patrol wander
const (
	PatrolRateMin    = 0.3
	PatrolRateSpread = 0.3
	PatrolLookAhead  = 100.0
)

// Default seeking rate before preset override (rad/s)
const EnemyDefaultSeeking = 3.0

// Spawner / director
const (
	SpawnMaxEnemies  = 8
	SpawnInterval    = 5.0
	SpawnMinDistance = 800.0
	SpawnMaxDistance = 1300.0
)
