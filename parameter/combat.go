package parameter

// Resource pools
const (
	DefaultMaxHull    = 100.0
	DefaultMaxShields = 100.0
	DefaultMaxEnergy  = 100.0

	// ShieldRegenRate is shield points per second at 100% shield power
	ShieldRegenRate = 10.0
)

// Power allocation
const (
	// PowerChannelMax is the ceiling of a single allocation channel
	PowerChannelMax = 100

	// PowerDefault is the starting allocation of every channel
	PowerDefault = 50

	// WeaponPowerReference is the weapon allocation that yields the base fire rate
	WeaponPowerReference = 50.0

	// WeaponDamagePowerDivisor converts weapon allocation into bonus damage
	WeaponDamagePowerDivisor = 10.0
)

// Weapons
const (
	// WeaponBaseFireRate is seconds between shots at reference weapon power
	WeaponBaseFireRate = 0.25

	// WeaponBaseDamage is projectile damage before weapon power bonus
	WeaponBaseDamage = 10.0
)

// Sensors
const (
	SensorBaseRange  = 400.0
	SensorPowerRange = 800.0
)
