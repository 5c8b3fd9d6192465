package engine

import (
	"math"

	"github.com/lixenwraith/solar-winds/component"
	"github.com/lixenwraith/solar-winds/core"
	"github.com/lixenwraith/solar-winds/vmath"
)

// PlayerID is the fixed handle of the player ship
const PlayerID core.Entity = 1

// World is the live roster: the player and every enemy
// Handles held by ships and projectiles are resolved here with a liveness check
type World struct {
	Player  *component.Ship
	Enemies []*component.Enemy

	nextID core.Entity
}

// NewWorld creates an empty roster around player
func NewWorld(player *component.Ship) *World {
	return &World{Player: player, nextID: PlayerID + 1}
}

// NextID allocates a fresh enemy handle
func (w *World) NextID() core.Entity {
	id := w.nextID
	w.nextID++
	return id
}

// Ship returns the ship behind id, destroyed or not, or nil
func (w *World) Ship(id core.Entity) *component.Ship {
	if !id.Valid() {
		return nil
	}
	if w.Player != nil && w.Player.ID == id {
		return w.Player
	}
	if e := w.Enemy(id); e != nil {
		return &e.Ship
	}
	return nil
}

// Enemy returns the enemy behind id or nil
func (w *World) Enemy(id core.Entity) *component.Enemy {
	for _, e := range w.Enemies {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// Resolve returns the position of a live ship
func (w *World) Resolve(id core.Entity) (vmath.Vec2, bool) {
	s := w.Ship(id)
	if !s.Alive() {
		return vmath.Vec2{}, false
	}
	return s.Pos, true
}

// Alive counts enemies that are not destroyed
func (w *World) Alive() int {
	n := 0
	for _, e := range w.Enemies {
		if !e.Destroyed {
			n++
		}
	}
	return n
}

// NearestEnemy returns the closest live enemy within maxRange of pos, or nil
func (w *World) NearestEnemy(pos vmath.Vec2, maxRange float64) *component.Enemy {
	var best *component.Enemy
	bestDist := math.Inf(1)
	for _, e := range w.Enemies {
		if e.Destroyed {
			continue
		}
		d := pos.Dist(e.Pos)
		if d < maxRange && d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

// Cull drops enemies that are destroyed and have no projectiles in flight
func (w *World) Cull() int {
	n := len(w.Enemies)
	kept := w.Enemies[:0]
	for _, e := range w.Enemies {
		if !e.Resolved() {
			kept = append(kept, e)
		}
	}
	clear(w.Enemies[len(kept):])
	w.Enemies = kept
	return n - len(kept)
}
