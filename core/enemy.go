package core

// EnemyType selects a preset tunables bundle at spawn time
type EnemyType int

const (
	EnemyScout EnemyType = iota
	EnemyFighter
	EnemyHeavy
	EnemyTypeCount
)

var enemyTypeNames = [EnemyTypeCount]string{"scout", "fighter", "heavy"}

func (t EnemyType) String() string {
	if t < 0 || t >= EnemyTypeCount {
		return "unknown"
	}
	return enemyTypeNames[t]
}

// ParseEnemyType maps a config/mission name to its type
func ParseEnemyType(s string) (EnemyType, bool) {
	for i, name := range enemyTypeNames {
		if name == s {
			return EnemyType(i), true
		}
	}
	return 0, false
}

// AIState is the enemy behavioral state
type AIState int

const (
	AIPatrol AIState = iota
	AIPursue
	AIAttack
	AIEvade
)

func (s AIState) String() string {
	switch s {
	case AIPatrol:
		return "patrol"
	case AIPursue:
		return "pursue"
	case AIAttack:
		return "attack"
	case AIEvade:
		return "evade"
	default:
		return "unknown"
	}
}
