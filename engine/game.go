package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/solar-winds/ai"
	"github.com/lixenwraith/solar-winds/combat"
	"github.com/lixenwraith/solar-winds/component"
	"github.com/lixenwraith/solar-winds/core"
	"github.com/lixenwraith/solar-winds/event"
	"github.com/lixenwraith/solar-winds/logging"
	"github.com/lixenwraith/solar-winds/mission"
	"github.com/lixenwraith/solar-winds/parameter"
	"github.com/lixenwraith/solar-winds/physics"
	"github.com/lixenwraith/solar-winds/vmath"
	"github.com/lixenwraith/solar-winds/world"
)

var ErrGameOver = errors.New("engine: game over")

// Settings are the tunable knobs a game starts with
type Settings struct {
	TimeScale             float64
	PlayerSpeedMultiplier float64
	EnemySpeedMultiplier  float64
	BrakePower            float64
	WeaponSeeking         float64
	StartingCredits       int
	Power                 component.Power
	Director              DirectorConfig
}

// DefaultSettings returns the stock tuning
func DefaultSettings() Settings {
	return Settings{
		TimeScale:             parameter.DefaultTimeScale,
		PlayerSpeedMultiplier: 1,
		EnemySpeedMultiplier:  1,
		BrakePower:            parameter.ShipBrakePower,
		StartingCredits:       parameter.StartingCredits,
		Power:                 component.DefaultPower(),
		Director:              DefaultDirectorConfig(),
	}
}

// Message is a transient HUD notification
type Message struct {
	Text string
	TTL  float64
}

// Game owns the whole simulation
// All mutation happens inside RunSafe; the loop, input and renderer share one lock
type Game struct {
	mu sync.Mutex

	settings Settings
	world    *World
	sector   *world.Sector
	board    *mission.Board
	director *Director
	brain    *ai.Brain

	bus     *event.Bus
	rng     Rand
	log     zerolog.Logger
	warn    zerolog.Logger
	metrics *simMetrics

	input  component.ControlInput
	firing bool

	credits   int
	timeScale float64
	gameTime  float64
	paused    bool
	over      bool
	docked    *world.Station
	waypoint  *vmath.Vec2
	messages  []Message
}

// NewGame builds a game and runs the scripted opening
func NewGame(s Settings, bus *event.Bus, rng Rand, log zerolog.Logger) (*Game, error) {
	sm, err := newSimMetrics()
	if err != nil {
		return nil, fmt.Errorf("creating game metrics: %w", err)
	}
	if bus == nil {
		bus = event.NewBus()
	}

	g := &Game{
		settings: s,
		sector:   world.DefaultSector(),
		bus:      bus,
		rng:      rng,
		log:      log,
		warn:     logging.Sampled(log, 5, 10*time.Second),
		metrics:  sm,
		brain:    ai.NewBrain(rng),
	}
	g.director = NewDirector(s.Director, rng, bus, log)
	g.board = mission.NewBoard(rng, bus, log)

	bus.Register(sm)
	bus.Subscribe(g.onShipDestroyed, event.EventShipDestroyed)
	bus.Subscribe(g.onMissionEvent, event.EventMissionCompleted, event.EventMissionFailed)

	g.reset()
	return g, nil
}

// RunSafe executes fn while holding the game lock
func (g *Game) RunSafe(fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn()
}

func (g *Game) newPlayer() *component.Ship {
	h := component.PlayerHandling()
	h.BrakePower = g.settings.BrakePower
	h.ApplySpeedMultiplier(g.settings.PlayerSpeedMultiplier)

	p := component.NewShip(PlayerID, vmath.Vec2{X: parameter.PlayerStartX, Y: parameter.PlayerStartY}, h)
	p.Power = g.settings.Power
	p.Weapon.Seeking = g.settings.WeaponSeeking
	return p
}

func (g *Game) reset() {
	g.world = NewWorld(g.newPlayer())
	g.director.Reset()
	g.director.SetSpeedMultiplier(g.world, g.settings.EnemySpeedMultiplier)
	g.director.SpawnAt(g.world, vmath.Vec2{X: parameter.OpeningFighterX, Y: parameter.OpeningFighterY}, core.EnemyFighter)
	g.director.SpawnAt(g.world, vmath.Vec2{X: parameter.OpeningScoutX, Y: parameter.OpeningScoutY}, core.EnemyScout)
	g.board.Reset()

	g.credits = g.settings.StartingCredits
	g.timeScale = g.settings.TimeScale
	g.gameTime = 0
	g.paused = false
	g.over = false
	g.docked = nil
	g.waypoint = nil
	g.messages = g.messages[:0]
	g.input = component.ControlInput{}
	g.firing = false
}

// Restart discards the session and starts over with the current settings
func (g *Game) Restart() {
	g.reset()
	g.Notify("Ship systems online. Good luck, pilot.")
	g.log.Info().Msg("Game restarted")
}

// Tick advances the simulation by one frame of wall time dt
func (g *Game) Tick(dt float64) {
	if g.paused || g.over {
		return
	}
	dt = min(dt, parameter.MaxFrameDelta) * g.timeScale
	if dt <= 0 {
		return
	}
	g.gameTime += dt
	g.metrics.ticks.Add(context.Background(), 1)

	w := g.world
	p := w.Player

	if g.firing {
		combat.Fire(p, g.bus)
	}
	if !physics.Step(p, g.input, dt, w) {
		g.warnUnstable(p)
	}

	obs := ai.Observation{ID: p.ID, Position: p.Pos, Alive: p.Alive()}
	for _, e := range w.Enemies {
		intent := g.brain.Think(e, obs, dt)
		if intent.Fire {
			combat.Fire(&e.Ship, g.bus)
		}
		if !physics.Step(&e.Ship, intent.ControlInput, dt, w) {
			g.warnUnstable(&e.Ship)
		}
	}

	g.resolveCollisions()
	g.director.Update(w, dt)

	if p.Weapon.Seeking > 0 {
		g.autoTarget()
	}
	g.board.Update(dt)
	g.ageMessages(dt)

	if p.Destroyed {
		g.over = true
		g.log.Info().Int("credits", g.credits).Float64("time", g.gameTime).Msg("Game over")
	}
}

func (g *Game) warnUnstable(s *component.Ship) {
	g.warn.Warn().Uint64("ship", uint64(s.ID)).Msg("Non-finite position, velocity reset")
}

// resolveCollisions applies projectile hits, each projectile strikes at most once
func (g *Game) resolveCollisions() {
	w := g.world
	p := w.Player

	for i := range p.Projectiles {
		pr := &p.Projectiles[i]
		if pr.Hit {
			continue
		}
		for _, e := range w.Enemies {
			if e.Destroyed || !physics.Hits(pr, e.Pos, e.Radius) {
				continue
			}
			combat.ApplyDamage(&e.Ship, pr.Damage, g.bus)
			pr.Hit = true
			break
		}
	}

	for _, e := range w.Enemies {
		for i := range e.Projectiles {
			pr := &e.Projectiles[i]
			if pr.Hit || p.Destroyed {
				continue
			}
			if physics.Hits(pr, p.Pos, p.Radius) {
				combat.ApplyDamage(p, pr.Damage, g.bus)
				pr.Hit = true
			}
		}
		physics.Purge(&e.Ship)
	}
	physics.Purge(p)
}

// autoTarget locks the player's weapon onto the nearest enemy in sensor range
func (g *Game) autoTarget() {
	p := g.world.Player
	if e := g.world.NearestEnemy(p.Pos, p.Power.SensorRange()); e != nil {
		p.Weapon.Target = e.ID
	} else {
		p.Weapon.Target = core.NoEntity
	}
}

func (g *Game) onShipDestroyed(ev event.GameEvent) {
	pl, ok := ev.Payload.(*event.ShipDestroyedPayload)
	if !ok {
		return
	}
	if pl.Ship == PlayerID {
		g.log.Info().Msg("Player destroyed")
		return
	}
	e := g.world.Enemy(pl.Ship)
	if e == nil {
		return
	}
	g.log.Debug().Str("type", e.Type.String()).Int("credits", e.Tune.Credits).Msg("Enemy destroyed")
	g.award(e.Tune.Credits, "kill")
	g.Notify(fmt.Sprintf("+%d credits", e.Tune.Credits))
	g.board.OnEnemyKilled(e.Type)
}

func (g *Game) onMissionEvent(ev event.GameEvent) {
	pl, ok := ev.Payload.(*event.MissionPayload)
	if !ok {
		return
	}
	g.waypoint = nil
	switch ev.Type {
	case event.EventMissionCompleted:
		g.award(pl.Credits, "mission")
		g.Notify(fmt.Sprintf("Mission Complete! +%d credits", pl.Credits))
	case event.EventMissionFailed:
		g.Notify("Mission Failed!")
	}
}

func (g *Game) award(amount int, source string) {
	if amount <= 0 {
		return
	}
	g.credits += amount
	g.bus.Emit(event.EventCreditsAwarded, &event.CreditsPayload{Amount: amount, Balance: g.credits, Source: source})
}

// Notify queues a HUD message
func (g *Game) Notify(text string) {
	g.messages = append(g.messages, Message{Text: text, TTL: parameter.MessageDuration})
	if n := len(g.messages); n > parameter.MessageMaxQueue {
		g.messages = append(g.messages[:0], g.messages[n-parameter.MessageMaxQueue:]...)
	}
}

func (g *Game) ageMessages(dt float64) {
	kept := g.messages[:0]
	for _, m := range g.messages {
		m.TTL -= dt
		if m.TTL > 0 {
			kept = append(kept, m)
		}
	}
	g.messages = kept
}

// SetInput replaces the held flight controls
func (g *Game) SetInput(in component.ControlInput) { g.input = in }

// SetFiring sets whether the trigger is held
func (g *Game) SetFiring(on bool) { g.firing = on }

// TogglePause flips the pause state; ignored after game over
func (g *Game) TogglePause() {
	if !g.over {
		g.paused = !g.paused
	}
}

// TryDock docks the player at any station in range
func (g *Game) TryDock() error {
	if g.over {
		return ErrGameOver
	}
	p := g.world.Player
	if p.Docked {
		return world.ErrAlreadyDocked
	}
	st := g.sector.InDockRange(p)
	if st == nil {
		g.Notify("No station in range. Approach slowly to dock.")
		return world.ErrNotInRange
	}
	if err := st.Dock(p, g.bus); err != nil {
		return fmt.Errorf("docking at %s: %w", st.Name, err)
	}
	g.docked = st
	g.log.Info().Str("station", st.Name).Msg("Docked")
	g.board.OnStationVisited(st.Name)
	return nil
}

// Undock releases the player from the current station
func (g *Game) Undock() error {
	if g.docked == nil {
		return world.ErrNotDocked
	}
	if err := g.docked.Undock(g.world.Player, g.bus); err != nil {
		return fmt.Errorf("undocking from %s: %w", g.docked.Name, err)
	}
	g.log.Info().Str("station", g.docked.Name).Msg("Undocked")
	g.docked = nil
	return nil
}

// ToggleDock docks when free and undocks when docked
func (g *Game) ToggleDock() error {
	if g.docked != nil {
		return g.Undock()
	}
	return g.TryDock()
}

// AcceptMission activates an offered mission, sets a waypoint for destination missions and launches
func (g *Game) AcceptMission(id uuid.UUID) error {
	m, err := g.board.Accept(id)
	if err != nil {
		return err
	}
	g.Notify("Mission accepted: " + m.Title)
	if st, ok := g.sector.ByName(m.Destination); ok {
		wp := st.Pos
		g.waypoint = &wp
	}
	if g.docked != nil {
		return g.Undock()
	}
	return nil
}

// AbandonMission fails the active mission
func (g *Game) AbandonMission() error {
	return g.board.Abandon()
}

// SetTimeScale sets the game speed factor
func (g *Game) SetTimeScale(v float64) {
	g.timeScale = vmath.Clamp(v, parameter.MinTimeScale, parameter.MaxTimeScale)
}

// SetPlayerSpeedMultiplier rescales the player's top speed
func (g *Game) SetPlayerSpeedMultiplier(v float64) {
	g.settings.PlayerSpeedMultiplier = vmath.Clamp(v, parameter.MinSpeedMultiplier, parameter.MaxSpeedMultiplier)
	g.world.Player.ApplySpeedMultiplier(g.settings.PlayerSpeedMultiplier)
}

// SetEnemySpeedMultiplier rescales every enemy's top speed
func (g *Game) SetEnemySpeedMultiplier(v float64) {
	g.director.SetSpeedMultiplier(g.world, v)
	g.settings.EnemySpeedMultiplier = g.director.SpeedMultiplier()
}

// SetBrakePower sets the per-tick velocity factor while braking
func (g *Game) SetBrakePower(v float64) {
	g.settings.BrakePower = vmath.Clamp(v, 0, 1)
	g.world.Player.BrakePower = g.settings.BrakePower
}

// SetWeaponSeeking sets projectile homing strength; zero disables auto-targeting
func (g *Game) SetWeaponSeeking(v float64) {
	g.settings.WeaponSeeking = max(0, v)
	p := g.world.Player
	p.Weapon.Seeking = g.settings.WeaponSeeking
	if p.Weapon.Seeking == 0 {
		p.Weapon.Target = core.NoEntity
	}
}

// AdjustPower shifts one power channel by delta, clamped to its range
func (g *Game) AdjustPower(c component.PowerChannel, delta int) {
	p := &g.world.Player.Power
	p.Set(c, p.Get(c)+delta)
	g.settings.Power = *p
}

func (g *Game) Player() *component.Ship { return g.world.Player }
func (g *Game) Enemies() []*component.Enemy { return g.world.Enemies }
func (g *Game) Missions() *mission.Board { return g.board }
func (g *Game) Credits() int { return g.credits }
func (g *Game) TimeScale() float64 { return g.timeScale }
func (g *Game) GameTime() float64 { return g.gameTime }
func (g *Game) Paused() bool { return g.paused }
func (g *Game) Over() bool { return g.over }
func (g *Game) Docked() *world.Station { return g.docked }
func (g *Game) Waypoint() *vmath.Vec2 { return g.waypoint }
func (g *Game) Messages() []Message { return g.messages }
func (g *Game) Settings() Settings { return g.settings }
func (g *Game) Sector() *world.Sector { return g.sector }
func (g *Game) World() *World { return g.world }
