package component

import "github.com/lixenwraith/solar-winds/parameter"

// PowerChannel names one allocation slider
type PowerChannel int

const (
	PowerEngines PowerChannel = iota
	PowerShields
	PowerWeapons
	PowerSensors
	PowerChannelCount
)

func (c PowerChannel) String() string {
	names := [...]string{"engines", "shields", "weapons", "sensors"}
	if c >= 0 && int(c) < len(names) {
		return names[c]
	}
	return "unknown"
}

// Power is the four-way allocation, each channel independently 0..100
type Power struct {
	Engines int
	Shields int
	Weapons int
	Sensors int
}

// DefaultPower returns every channel at the default allocation
func DefaultPower() Power {
	d := parameter.PowerDefault
	return Power{Engines: d, Shields: d, Weapons: d, Sensors: d}
}

// Set clamps v to 0..100 and assigns it to channel c
// The sum across channels is not constrained
func (p *Power) Set(c PowerChannel, v int) {
	v = max(0, min(parameter.PowerChannelMax, v))
	switch c {
	case PowerEngines:
		p.Engines = v
	case PowerShields:
		p.Shields = v
	case PowerWeapons:
		p.Weapons = v
	case PowerSensors:
		p.Sensors = v
	}
}

// Get returns the allocation of channel c
func (p Power) Get(c PowerChannel) int {
	switch c {
	case PowerEngines:
		return p.Engines
	case PowerShields:
		return p.Shields
	case PowerWeapons:
		return p.Weapons
	case PowerSensors:
		return p.Sensors
	}
	return 0
}

// Total is the allocation sum, shown as a hint only
func (p Power) Total() int {
	return p.Engines + p.Shields + p.Weapons + p.Sensors
}

// SensorRange returns detection radius for the sensors allocation
func (p Power) SensorRange() float64 {
	return parameter.SensorBaseRange + float64(p.Sensors)/100*parameter.SensorPowerRange
}
