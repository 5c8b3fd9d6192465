package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/solar-winds/combat"
	"github.com/lixenwraith/solar-winds/component"
	"github.com/lixenwraith/solar-winds/core"
	"github.com/lixenwraith/solar-winds/event"
	"github.com/lixenwraith/solar-winds/mission"
	"github.com/lixenwraith/solar-winds/vmath"
	"github.com/lixenwraith/solar-winds/world"
)

// passiveRand fails every probability roll so enemies stay on patrol and hold fire
var passiveRand = fixedRand{f: 0.99}

func newTestGame(t *testing.T) (*Game, *event.Bus) {
	t.Helper()
	bus := event.NewBus()
	g, err := NewGame(DefaultSettings(), bus, passiveRand, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g, bus
}

func enemyOfType(t *testing.T, g *Game, et core.EnemyType) *component.Enemy {
	t.Helper()
	for _, e := range g.Enemies() {
		if e.Type == et {
			return e
		}
	}
	t.Fatalf("no %s in roster", et)
	return nil
}

func missionByTitle(t *testing.T, g *Game, title string) *mission.Mission {
	t.Helper()
	for _, m := range g.Missions().Available {
		if m.Title == title {
			return m
		}
	}
	t.Fatalf("mission %q not offered", title)
	return nil
}

func TestGameOpening(t *testing.T) {
	g, _ := newTestGame(t)

	if len(g.Enemies()) != 2 {
		t.Fatalf("Expected 2 opening enemies, got %d", len(g.Enemies()))
	}
	f := enemyOfType(t, g, core.EnemyFighter)
	if f.Pos != (vmath.Vec2{X: 500, Y: 300}) {
		t.Errorf("Expected fighter at (500,300), got %v", f.Pos)
	}
	s := enemyOfType(t, g, core.EnemyScout)
	if s.Pos != (vmath.Vec2{X: -600, Y: 400}) {
		t.Errorf("Expected scout at (-600,400), got %v", s.Pos)
	}
	if g.Player().Pos != (vmath.Vec2{X: 0, Y: 200}) {
		t.Errorf("Expected player at (0,200), got %v", g.Player().Pos)
	}
	if g.Credits() != 500 {
		t.Errorf("Expected 500 starting credits, got %d", g.Credits())
	}
}

func TestGameDeltaClampAndScale(t *testing.T) {
	g, _ := newTestGame(t)

	g.Tick(1.0)
	if math.Abs(g.GameTime()-0.1) > 1e-9 {
		t.Errorf("Expected dt clamped to 0.1, got %v", g.GameTime())
	}

	g.SetTimeScale(2)
	g.Tick(0.05)
	if math.Abs(g.GameTime()-0.2) > 1e-9 {
		t.Errorf("Expected scaled dt, got %v", g.GameTime())
	}

	g.SetTimeScale(100)
	if g.TimeScale() != 4 {
		t.Errorf("Expected time scale clamped to 4, got %v", g.TimeScale())
	}

	g.TogglePause()
	before := g.GameTime()
	g.Tick(0.05)
	if g.GameTime() != before {
		t.Error("Paused game must not advance")
	}
}

func TestGameEnemyShotHitsPlayer(t *testing.T) {
	g, _ := newTestGame(t)
	p := g.Player()
	e := enemyOfType(t, g, core.EnemyFighter)
	e.Projectiles = append(e.Projectiles, component.Projectile{Pos: p.Pos, Damage: 30})

	g.Tick(0.016)

	if math.Abs(p.Shields.Value-70) > 0.5 {
		t.Errorf("Expected shields near 70 after hit, got %.2f", p.Shields.Value)
	}
	if len(e.Projectiles) != 0 {
		t.Errorf("Expected projectile consumed, got %d", len(e.Projectiles))
	}
}

func TestGamePlayerShotKillsEnemy(t *testing.T) {
	g, bus := newTestGame(t)
	p := g.Player()
	e := enemyOfType(t, g, core.EnemyScout)
	e.Shields.Set(0)
	e.Hull.Set(1)
	p.Projectiles = append(p.Projectiles, component.Projectile{Pos: e.Pos, Damage: 10})

	var awarded int
	bus.Subscribe(func(ev event.GameEvent) {
		awarded += ev.Payload.(*event.CreditsPayload).Amount
	}, event.EventCreditsAwarded)

	g.Tick(0.016)

	if !e.Destroyed {
		t.Fatal("Expected scout destroyed")
	}
	if g.Credits() != 600 || awarded != 100 {
		t.Errorf("Expected +100 credits, got balance %d awarded %d", g.Credits(), awarded)
	}
	for _, en := range g.Enemies() {
		if en == e {
			t.Error("Destroyed scout without projectiles should be culled")
		}
	}
}

func TestGameKillsAdvanceBounty(t *testing.T) {
	g, bus := newTestGame(t)
	m := missionByTitle(t, g, "Scout Hunter")
	if err := g.AcceptMission(m.ID); err != nil {
		t.Fatalf("AcceptMission: %v", err)
	}

	for range 2 {
		e := g.director.SpawnAt(g.world, vmath.Vec2{X: 5000}, core.EnemyScout)
		combat.ApplyDamage(&e.Ship, 1e6, bus)
	}

	if m.Status != mission.StatusCompleted {
		t.Fatalf("Expected bounty completed, got %s", m.Status)
	}
	// 2 scouts at 100 plus the 200 reward
	if g.Credits() != 500+200+200 {
		t.Errorf("Expected 900 credits, got %d", g.Credits())
	}
}

func TestGameDockingAndDelivery(t *testing.T) {
	g, _ := newTestGame(t)
	p := g.Player()

	if err := g.TryDock(); !errors.Is(err, world.ErrNotInRange) {
		t.Errorf("Expected ErrNotInRange at start, got %v", err)
	}

	m := missionByTitle(t, g, "Supply Delivery")
	if err := g.AcceptMission(m.ID); err != nil {
		t.Fatalf("AcceptMission: %v", err)
	}
	if wp := g.Waypoint(); wp == nil || *wp != (vmath.Vec2{X: 2000, Y: 500}) {
		t.Errorf("Expected waypoint at TRADING POST, got %v", wp)
	}

	p.Pos = vmath.Vec2{X: 1950, Y: 500}
	p.Hull.Set(20)
	if err := g.TryDock(); err != nil {
		t.Fatalf("TryDock: %v", err)
	}
	if g.Docked() == nil || g.Docked().Name != "TRADING POST" {
		t.Errorf("Expected docked at TRADING POST, got %v", g.Docked())
	}
	if p.Hull.Value != p.Hull.Max {
		t.Error("Expected repair on dock")
	}
	if m.Status != mission.StatusCompleted || g.Credits() != 700 {
		t.Errorf("Expected delivery paid, status %s credits %d", m.Status, g.Credits())
	}
	if g.Waypoint() != nil {
		t.Error("Expected waypoint cleared on completion")
	}

	if err := g.ToggleDock(); err != nil {
		t.Fatalf("Undock: %v", err)
	}
	if p.Docked || p.Pos != (vmath.Vec2{X: 2170, Y: 500}) {
		t.Errorf("Expected released east of station, got %v", p.Pos)
	}
}

func TestGameAutoTarget(t *testing.T) {
	g, _ := newTestGame(t)
	f := enemyOfType(t, g, core.EnemyFighter)

	g.Tick(0.016)
	if g.Player().Weapon.Target.Valid() {
		t.Error("Expected no target without seeking")
	}

	g.SetWeaponSeeking(3)
	g.Tick(0.016)
	if g.Player().Weapon.Target != f.ID {
		t.Errorf("Expected fighter %d targeted, got %d", f.ID, g.Player().Weapon.Target)
	}

	g.SetWeaponSeeking(0)
	if g.Player().Weapon.Target.Valid() {
		t.Error("Expected target cleared when seeking disabled")
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g, bus := newTestGame(t)
	g.AdjustPower(component.PowerWeapons, 30)
	combat.ApplyDamage(g.Player(), 1e6, bus)

	g.Tick(0.016)
	if !g.Over() {
		t.Fatal("Expected game over")
	}
	before := g.GameTime()
	g.Tick(0.016)
	if g.GameTime() != before {
		t.Error("Game over must freeze the simulation")
	}
	if err := g.TryDock(); !errors.Is(err, ErrGameOver) {
		t.Errorf("Expected ErrGameOver, got %v", err)
	}

	g.Restart()
	if g.Over() || g.Player().Destroyed || g.Credits() != 500 || len(g.Enemies()) != 2 {
		t.Errorf("Expected fresh session, over=%v credits=%d enemies=%d", g.Over(), g.Credits(), len(g.Enemies()))
	}
	if g.Player().Power.Weapons != 80 {
		t.Errorf("Expected power setting kept across restart, got %d", g.Player().Power.Weapons)
	}
	if len(g.Messages()) == 0 {
		t.Error("Expected restart notification")
	}
}

func TestGameKnobs(t *testing.T) {
	g, _ := newTestGame(t)

	g.SetPlayerSpeedMultiplier(0.5)
	if g.Player().MaxSpeed != 200 {
		t.Errorf("Expected player max speed 200, got %.1f", g.Player().MaxSpeed)
	}

	g.SetEnemySpeedMultiplier(2)
	for _, e := range g.Enemies() {
		if e.MaxSpeed != e.BaseMaxSpeed*2 {
			t.Errorf("Expected enemy %d rescaled, got %.1f", e.ID, e.MaxSpeed)
		}
	}

	g.SetBrakePower(0.8)
	if g.Player().BrakePower != 0.8 {
		t.Errorf("Expected brake power 0.8, got %v", g.Player().BrakePower)
	}

	g.AdjustPower(component.PowerEngines, 200)
	if g.Player().Power.Engines != 100 {
		t.Errorf("Expected engines clamped to 100, got %d", g.Player().Power.Engines)
	}
}

func TestGameMessagesExpire(t *testing.T) {
	g, _ := newTestGame(t)
	for i := range 6 {
		g.Notify(string(rune('a' + i)))
	}
	if len(g.Messages()) != 4 {
		t.Fatalf("Expected queue capped at 4, got %d", len(g.Messages()))
	}
	if g.Messages()[0].Text != "c" {
		t.Errorf("Expected oldest dropped, got %q", g.Messages()[0].Text)
	}
	for range 40 {
		g.Tick(0.1)
	}
	if len(g.Messages()) != 0 {
		t.Errorf("Expected messages expired, got %d", len(g.Messages()))
	}
}

func TestGameInvariantsOverManyTicks(t *testing.T) {
	g, _ := newTestGame(t)
	g.SetInput(component.ControlInput{Thrust: true, RotateLeft: true})
	g.SetFiring(true)

	for range 600 {
		g.Tick(1.0 / 60)
		p := g.Player()
		if p.Speed() > p.MaxSpeed+1e-6 {
			t.Fatalf("Player speed %.3f exceeds %.3f", p.Speed(), p.MaxSpeed)
		}
		if p.Hull.Value < 0 || p.Hull.Value > p.Hull.Max || p.Shields.Value < 0 || p.Shields.Value > p.Shields.Max {
			t.Fatalf("Pools out of range: hull %.2f shields %.2f", p.Hull.Value, p.Shields.Value)
		}
		for _, e := range g.Enemies() {
			if e.Speed() > e.MaxSpeed+1e-6 {
				t.Fatalf("Enemy speed %.3f exceeds %.3f", e.Speed(), e.MaxSpeed)
			}
		}
	}
	if len(g.Enemies()) > 8 {
		t.Errorf("Expected population capped at 8, got %d", len(g.Enemies()))
	}
}
