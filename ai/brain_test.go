package ai

import (
	"math"
	"testing"

	"github.com/lixenwraith/solar-winds/component"
	"github.com/lixenwraith/solar-winds/core"
	"github.com/lixenwraith/solar-winds/vmath"
)

// fixedRoll returns the same value on every draw
type fixedRoll float64

func (r fixedRoll) Float64() float64 { return float64(r) }

func newFighter(pos vmath.Vec2) *component.Enemy {
	return NewEnemy(2, core.EnemyFighter, pos, fixedRoll(0.5), 1)
}

func playerAt(x, y float64) Observation {
	return Observation{ID: 1, Position: vmath.Vec2{X: x, Y: y}, Alive: true}
}

func TestPatrolToPursueForcedRoll(t *testing.T) {
	e := newFighter(vmath.Vec2{})
	b := NewBrain(fixedRoll(0))

	b.Think(e, playerAt(100, 0), 0.016)

	if e.State != core.AIPursue {
		t.Fatalf("Expected pursue, got %s", e.State)
	}
	if e.Target != 1 {
		t.Errorf("Expected target 1, got %d", e.Target)
	}
	if e.Weapon.Target != 1 {
		t.Errorf("Expected seeking weapon to track target, got %d", e.Weapon.Target)
	}
}

func TestPatrolStaysOnFailedRoll(t *testing.T) {
	e := newFighter(vmath.Vec2{})
	b := NewBrain(fixedRoll(0.99))

	intent := b.Think(e, playerAt(100, 0), 0.016)

	if e.State != core.AIPatrol {
		t.Errorf("Expected patrol, got %s", e.State)
	}
	if !intent.Thrust {
		t.Error("Patrol should always thrust")
	}
}

func TestEvadeTrigger(t *testing.T) {
	e := newFighter(vmath.Vec2{})
	e.Hull = component.Pool{Value: 20, Max: 80}
	e.SetState(core.AIAttack)
	b := NewBrain(fixedRoll(0.5))

	b.Think(e, playerAt(150, 0), 0.016)

	if e.State != core.AIEvade {
		t.Fatalf("Expected evade at 25%% hull, got %s", e.State)
	}
}

func TestEvadeWinsOverLeash(t *testing.T) {
	e := newFighter(vmath.Vec2{})
	e.Hull = component.Pool{Value: 10, Max: 80}
	e.SetState(core.AIAttack)

	NewBrain(fixedRoll(0.5)).Think(e, playerAt(1000, 0), 0.016)

	if e.State != core.AIEvade {
		t.Errorf("Expected evade to win over pursue, got %s", e.State)
	}
}

func TestTransitionTable(t *testing.T) {
	tests := []struct {
		name string
		from core.AIState
		dist float64
		hull float64
		want core.AIState
	}{
		{"Pursue leash", core.AIPursue, 751, 80, core.AIPatrol},
		{"Pursue holds", core.AIPursue, 400, 80, core.AIPursue},
		{"Pursue to attack", core.AIPursue, 150, 80, core.AIAttack},
		{"Attack leash", core.AIAttack, 301, 80, core.AIPursue},
		{"Attack holds", core.AIAttack, 250, 80, core.AIAttack},
		{"Evade escapes", core.AIEvade, 451, 10, core.AIPatrol},
		{"Evade continues", core.AIEvade, 200, 10, core.AIEvade},
		{"Patrol out of range", core.AIPatrol, 301, 80, core.AIPatrol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newFighter(vmath.Vec2{})
			e.State = tt.from
			e.Hull.Set(tt.hull)
			NewBrain(fixedRoll(0)).Think(e, playerAt(tt.dist, 0), 0.016)
			if e.State != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, e.State)
			}
		})
	}
}

func TestEvadeTimeout(t *testing.T) {
	e := newFighter(vmath.Vec2{})
	e.Hull.Set(10)
	e.SetState(core.AIEvade)
	b := NewBrain(fixedRoll(0.5))

	b.Think(e, playerAt(100, 0), 4.9)
	if e.State != core.AIEvade {
		t.Fatalf("Expected evade before timeout, got %s", e.State)
	}
	b.Think(e, playerAt(100, 0), 0.2)
	if e.State != core.AIPatrol {
		t.Errorf("Expected patrol after 5s, got %s", e.State)
	}
}

func TestDeadTargetDropsToPatrol(t *testing.T) {
	e := newFighter(vmath.Vec2{})
	b := NewBrain(fixedRoll(0))
	b.Think(e, playerAt(100, 0), 0.016)
	b.Think(e, playerAt(100, 0), 0.016)
	if e.State != core.AIAttack {
		t.Fatalf("Setup: expected attack, got %s", e.State)
	}

	dead := playerAt(100, 0)
	dead.Alive = false
	intent := b.Think(e, dead, 0.016)

	if e.State != core.AIPatrol {
		t.Errorf("Expected patrol after target loss, got %s", e.State)
	}
	if e.Target.Valid() || e.Weapon.Target.Valid() {
		t.Error("Expected target handles cleared")
	}
	if intent.Fire {
		t.Error("No fire without a target")
	}
}

func TestAttackFireGate(t *testing.T) {
	e := newFighter(vmath.Vec2{})
	e.SetState(core.AIAttack)
	e.Rotation = 0

	if !NewBrain(fixedRoll(0.05)).Think(e, playerAt(100, 0), 0.016).Fire {
		t.Error("Expected fire on roll below 10%")
	}
	if NewBrain(fixedRoll(0.5)).Think(e, playerAt(100, 0), 0.016).Fire {
		t.Error("Expected hold on roll above 10%")
	}
}

func TestAttackStandoff(t *testing.T) {
	e := newFighter(vmath.Vec2{})
	e.SetState(core.AIAttack)
	e.Rotation = 0

	// Player dead ahead and too close: turn away and thrust
	intent := NewBrain(fixedRoll(0.5)).Think(e, playerAt(50, 0), 0.016)
	if !intent.Thrust || (!intent.RotateLeft && !intent.RotateRight) {
		t.Errorf("Expected turn-away thrust, got %+v", intent.ControlInput)
	}

	// Inside the hold band: face the player, no thrust
	intent = NewBrain(fixedRoll(0.5)).Think(e, playerAt(120, 0), 0.016)
	if !intent.Idle() {
		t.Errorf("Expected hold, got %+v", intent.ControlInput)
	}
}

func TestDestroyedEnemyIdle(t *testing.T) {
	e := newFighter(vmath.Vec2{})
	e.Destroyed = true
	intent := NewBrain(fixedRoll(0)).Think(e, playerAt(10, 0), 0.016)
	if !intent.Idle() || intent.Fire {
		t.Errorf("Expected empty intent, got %+v", intent)
	}
}

func TestSteerDeadband(t *testing.T) {
	tests := []struct {
		name    string
		heading float64
		desired float64
		left    bool
		right   bool
	}{
		{"Inside deadband", 0, 0.05, false, false},
		{"Turn right", 0, 1, false, true},
		{"Turn left", 0, -1, true, false},
		{"Across wrap", math.Pi - 0.2, -math.Pi + 0.2, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := steer(tt.heading, tt.desired)
			if in.RotateLeft != tt.left || in.RotateRight != tt.right {
				t.Errorf("Expected left=%v right=%v, got %+v", tt.left, tt.right, in)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	scout := NewEnemy(3, core.EnemyScout, vmath.Vec2{}, fixedRoll(0.5), 2)
	if scout.Weapon.Seeking != 0 {
		t.Errorf("Scout should not seek, got %.1f", scout.Weapon.Seeking)
	}
	if scout.MaxSpeed != 560 {
		t.Errorf("Expected speed multiplier applied, got %.1f", scout.MaxSpeed)
	}
	heavy := NewEnemy(4, core.EnemyHeavy, vmath.Vec2{}, fixedRoll(0.5), 1)
	if heavy.Hull.Max != 180 || heavy.Power.Weapons != 70 || heavy.Tune.Credits != 500 {
		t.Errorf("Unexpected heavy preset %+v", heavy.Tune)
	}
	if math.Abs(heavy.PatrolRate-0.45) > 1e-9 {
		t.Errorf("Expected patrol rate 0.45, got %.3f", heavy.PatrolRate)
	}
}
