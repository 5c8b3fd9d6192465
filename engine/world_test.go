package engine

import (
	"testing"

	"github.com/lixenwraith/solar-winds/component"
	"github.com/lixenwraith/solar-winds/core"
	"github.com/lixenwraith/solar-winds/vmath"
)

func newTestWorld() *World {
	return NewWorld(component.NewShip(PlayerID, vmath.Vec2{}, component.PlayerHandling()))
}

func addEnemy(w *World, pos vmath.Vec2) *component.Enemy {
	id := w.NextID()
	e := &component.Enemy{Ship: *component.NewShip(id, pos, component.PlayerHandling())}
	w.Enemies = append(w.Enemies, e)
	return e
}

func TestWorldResolveLiveness(t *testing.T) {
	w := newTestWorld()
	e := addEnemy(w, vmath.Vec2{X: 100, Y: 50})

	if pos, ok := w.Resolve(e.ID); !ok || pos != e.Pos {
		t.Errorf("Expected live enemy at %v, got %v ok=%v", e.Pos, pos, ok)
	}
	if _, ok := w.Resolve(PlayerID); !ok {
		t.Error("Expected player to resolve")
	}

	e.Destroyed = true
	if _, ok := w.Resolve(e.ID); ok {
		t.Error("Destroyed enemy must not resolve")
	}
	if _, ok := w.Resolve(core.NoEntity); ok {
		t.Error("NoEntity must not resolve")
	}
	if _, ok := w.Resolve(999); ok {
		t.Error("Unknown handle must not resolve")
	}
}

func TestWorldNearestEnemy(t *testing.T) {
	w := newTestWorld()
	far := addEnemy(w, vmath.Vec2{X: 700})
	near := addEnemy(w, vmath.Vec2{X: 300})
	dead := addEnemy(w, vmath.Vec2{X: 10})
	dead.Destroyed = true

	if got := w.NearestEnemy(vmath.Vec2{}, 800); got != near {
		t.Errorf("Expected nearest live enemy %d, got %v", near.ID, got)
	}
	if got := w.NearestEnemy(vmath.Vec2{}, 200); got != nil {
		t.Errorf("Expected nothing within 200, got %d", got.ID)
	}
	_ = far
}

func TestWorldCull(t *testing.T) {
	w := newTestWorld()
	keep := addEnemy(w, vmath.Vec2{})
	gone := addEnemy(w, vmath.Vec2{})
	lingering := addEnemy(w, vmath.Vec2{})

	gone.Destroyed = true
	lingering.Destroyed = true
	lingering.Projectiles = []component.Projectile{{}}

	if n := w.Cull(); n != 1 {
		t.Errorf("Expected 1 culled, got %d", n)
	}
	if len(w.Enemies) != 2 || w.Enemies[0] != keep || w.Enemies[1] != lingering {
		t.Errorf("Unexpected roster after cull: %d enemies", len(w.Enemies))
	}
	if w.Alive() != 1 {
		t.Errorf("Expected 1 alive, got %d", w.Alive())
	}
}

func TestWorldIDsUnique(t *testing.T) {
	w := newTestWorld()
	seen := map[core.Entity]bool{PlayerID: true}
	for range 100 {
		id := w.NextID()
		if seen[id] || !id.Valid() {
			t.Fatalf("Duplicate or invalid id %d", id)
		}
		seen[id] = true
	}
}
