package component

import (
	"testing"

	"github.com/lixenwraith/solar-winds/core"
	"github.com/lixenwraith/solar-winds/parameter"
)

func TestPoolClamping(t *testing.T) {
	p := NewPool(100)

	p.Add(50)
	if p.Value != 100 {
		t.Errorf("Expected clamp to max, got %v", p.Value)
	}

	if taken := p.Drain(130); taken != 100 || !p.Empty() {
		t.Errorf("Expected 100 drained and empty, got %v left %v", taken, p.Value)
	}
	if taken := p.Drain(-5); taken != 0 {
		t.Errorf("Expected negative drain ignored, got %v", taken)
	}

	p.Set(25)
	if p.Percent() != 25 {
		t.Errorf("Expected 25%%, got %v", p.Percent())
	}
	p.Fill()
	if p.Value != p.Max {
		t.Error("Expected full after Fill")
	}

	if (Pool{}).Percent() != 0 {
		t.Error("Expected zero-capacity pool at 0%")
	}
}

func TestPowerChannels(t *testing.T) {
	p := DefaultPower()
	if p.Total() != 4*parameter.PowerDefault {
		t.Errorf("Expected total %d, got %d", 4*parameter.PowerDefault, p.Total())
	}

	p.Set(PowerWeapons, 150)
	p.Set(PowerEngines, -10)
	if p.Get(PowerWeapons) != parameter.PowerChannelMax || p.Get(PowerEngines) != 0 {
		t.Errorf("Expected clamped channels, got %+v", p)
	}

	// Totals over 100 are allowed
	p.Set(PowerShields, 100)
	p.Set(PowerSensors, 100)
	if p.Total() != 300 {
		t.Errorf("Expected total 300, got %d", p.Total())
	}

	if got := p.SensorRange(); got != parameter.SensorBaseRange+parameter.SensorPowerRange {
		t.Errorf("Expected full sensor range, got %v", got)
	}
	if PowerChannelCount.String() != "unknown" || PowerSensors.String() != "sensors" {
		t.Error("Channel names mismatch")
	}
}

func TestEnemySetState(t *testing.T) {
	e := &Enemy{State: core.AIPatrol, StateTime: 3}

	e.SetState(core.AIPatrol)
	if e.StateTime != 3 {
		t.Error("Expected same-state transition to keep the timer")
	}

	e.SetState(core.AIPursue)
	if e.State != core.AIPursue || e.StateTime != 0 {
		t.Errorf("Expected pursue with reset timer, got %v %v", e.State, e.StateTime)
	}
}

func TestEnemyResolved(t *testing.T) {
	e := &Enemy{}
	e.Destroyed = true
	e.Projectiles = []Projectile{{}}
	if e.Resolved() {
		t.Error("Expected unresolved while shots are in flight")
	}
	e.Projectiles = nil
	if !e.Resolved() {
		t.Error("Expected resolved once shots are gone")
	}
}
