package engine

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/solar-winds/ai"
	"github.com/lixenwraith/solar-winds/component"
	"github.com/lixenwraith/solar-winds/core"
	"github.com/lixenwraith/solar-winds/event"
	"github.com/lixenwraith/solar-winds/parameter"
	"github.com/lixenwraith/solar-winds/vmath"
)

// Rand is the random source shared by the director and the game
// *rand.Rand satisfies it
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// DirectorConfig bounds enemy population and placement
type DirectorConfig struct {
	MaxEnemies  int
	Interval    float64
	MinDistance float64
	MaxDistance float64
}

// DefaultDirectorConfig returns the standard spawner settings
func DefaultDirectorConfig() DirectorConfig {
	return DirectorConfig{
		MaxEnemies:  parameter.SpawnMaxEnemies,
		Interval:    parameter.SpawnInterval,
		MinDistance: parameter.SpawnMinDistance,
		MaxDistance: parameter.SpawnMaxDistance,
	}
}

// spawnTable weights random spawns; fighters come up twice as often
var spawnTable = [...]core.EnemyType{core.EnemyScout, core.EnemyFighter, core.EnemyFighter, core.EnemyHeavy}

// Director owns enemy population: periodic spawns, scripted spawns and culling
type Director struct {
	cfg       DirectorConfig
	cooldown  float64
	speedMult float64

	rng  Rand
	emit event.Emitter
	log  zerolog.Logger
}

// NewDirector creates a director that spawns on its first update
func NewDirector(cfg DirectorConfig, rng Rand, emit event.Emitter, log zerolog.Logger) *Director {
	if emit == nil {
		emit = event.Discard
	}
	return &Director{cfg: cfg, speedMult: 1, rng: rng, emit: emit, log: log}
}

// Reset restarts the spawn timer
func (d *Director) Reset() {
	d.cooldown = 0
}

// SpeedMultiplier returns the factor applied to enemy max speed
func (d *Director) SpeedMultiplier() float64 { return d.speedMult }

// SetSpeedMultiplier rescales every current enemy and all future spawns
func (d *Director) SetSpeedMultiplier(w *World, mult float64) {
	d.speedMult = vmath.Clamp(mult, parameter.MinSpeedMultiplier, parameter.MaxSpeedMultiplier)
	for _, e := range w.Enemies {
		e.ApplySpeedMultiplier(d.speedMult)
	}
}

// Update culls resolved enemies and spawns one when the timer allows
func (d *Director) Update(w *World, dt float64) {
	if n := w.Cull(); n > 0 {
		d.log.Debug().Int("culled", n).Int("remaining", len(w.Enemies)).Msg("Enemies culled")
	}

	d.cooldown -= dt
	if d.cooldown <= 0 && len(w.Enemies) < d.cfg.MaxEnemies && w.Player != nil {
		d.SpawnNear(w, w.Player.Pos)
		d.cooldown = d.cfg.Interval
	}
}

// SpawnNear places a random-type enemy on the spawn ring around center
func (d *Director) SpawnNear(w *World, center vmath.Vec2) *component.Enemy {
	angle := d.rng.Float64() * 2 * math.Pi
	dist := d.cfg.MinDistance + d.rng.Float64()*(d.cfg.MaxDistance-d.cfg.MinDistance)
	t := spawnTable[d.rng.Intn(len(spawnTable))]
	return d.SpawnAt(w, center.Add(vmath.Polar(angle, dist)), t)
}

// SpawnAt adds an enemy of type t at pos
func (d *Director) SpawnAt(w *World, pos vmath.Vec2, t core.EnemyType) *component.Enemy {
	e := ai.NewEnemy(w.NextID(), t, pos, d.rng, d.speedMult)
	w.Enemies = append(w.Enemies, e)

	d.log.Debug().
		Uint64("id", uint64(e.ID)).
		Str("type", t.String()).
		Float64("x", pos.X).
		Float64("y", pos.Y).
		Msg("Enemy spawned")
	d.emit.Emit(event.EventEnemySpawned, &event.EnemySpawnedPayload{Enemy: e.ID, Type: t, Position: pos})
	return e
}
