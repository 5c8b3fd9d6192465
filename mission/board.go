package mission

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/solar-winds/core"
	"github.com/lixenwraith/solar-winds/event"
	"github.com/lixenwraith/solar-winds/parameter"
)

var (
	ErrMissionActive  = errors.New("mission: a mission is already active")
	ErrUnknownMission = errors.New("mission: unknown mission")
	ErrNoActive       = errors.New("mission: no active mission")
)

// Rand is the randomness a board draws generated missions from
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Board holds the offered, active and finished missions
// Owned by the game loop goroutine
type Board struct {
	Available []*Mission
	Active    *Mission
	Completed []*Mission

	rng  Rand
	emit event.Emitter
	log  zerolog.Logger
}

// NewBoard creates a board seeded with the starting contracts
func NewBoard(rng Rand, emit event.Emitter, log zerolog.Logger) *Board {
	if emit == nil {
		emit = event.Discard
	}
	b := &Board{rng: rng, emit: emit, log: log}
	b.Reset()
	return b
}

// Reset discards all progress and restores the starting contracts
func (b *Board) Reset() {
	b.Active = nil
	b.Completed = nil
	b.Available = []*Mission{
		New(Spec{
			Title:       "Clear the Sector",
			Description: "Eliminate hostile ships threatening our trade routes.",
			Type:        TypeBounty,
			TargetType:  AnyEnemy,
			TargetCount: 3,
			Credits:     300,
			Giver:       "Station Commander",
		}),
		New(Spec{
			Title:       "Scout Hunter",
			Description: "Enemy scouts have been spotted. Destroy them before they report our position.",
			Type:        TypeBounty,
			TargetType:  core.EnemyScout,
			TargetCount: 2,
			Credits:     200,
			Giver:       "Intelligence Officer",
		}),
		New(Spec{
			Title:       "Heavy Assault",
			Description: "A heavily armed enemy vessel threatens the station. Take it down.",
			Type:        TypeBounty,
			TargetType:  core.EnemyHeavy,
			TargetCount: 1,
			Credits:     500,
			Giver:       "Fleet Admiral",
		}),
		New(Spec{
			Title:       "Survey Run",
			Description: "Travel to the Research Lab and collect data.",
			Type:        TypeExploration,
			Destination: "RESEARCH LAB",
			Credits:     250,
			Giver:       "Science Officer",
		}),
		New(Spec{
			Title:       "Supply Delivery",
			Description: "Deliver supplies to the Trading Post.",
			Type:        TypeDelivery,
			Destination: "TRADING POST",
			Credits:     200,
			Giver:       "Quartermaster",
		}),
	}
}

// Find returns an available mission by ID
func (b *Board) Find(id uuid.UUID) (*Mission, bool) {
	i := slices.IndexFunc(b.Available, func(m *Mission) bool { return m.ID == id })
	if i < 0 {
		return nil, false
	}
	return b.Available[i], true
}

// Accept moves an available mission to active
func (b *Board) Accept(id uuid.UUID) (*Mission, error) {
	if b.Active != nil {
		return nil, ErrMissionActive
	}
	i := slices.IndexFunc(b.Available, func(m *Mission) bool { return m.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("accepting %s: %w", id, ErrUnknownMission)
	}
	m := b.Available[i]
	b.Available = slices.Delete(b.Available, i, i+1)
	m.start()
	b.Active = m

	b.log.Info().Str("mission", m.Title).Str("type", m.Type.String()).Msg("Mission accepted")
	return m, nil
}

// Abandon fails the active mission
func (b *Board) Abandon() error {
	if b.Active == nil {
		return ErrNoActive
	}
	m := b.Active
	m.Status = StatusFailed
	b.fail(m, "abandoned")
	return nil
}

// Update advances the active mission's time limit
func (b *Board) Update(dt float64) {
	if b.Active == nil {
		return
	}
	if b.Active.tick(dt) {
		b.fail(b.Active, "time expired")
	}
}

// OnEnemyKilled credits a kill to the active bounty
func (b *Board) OnEnemyKilled(t core.EnemyType) {
	if b.Active != nil && b.Active.recordKill(t) {
		b.complete(b.Active)
	}
}

// OnStationVisited checks the active mission's destination
func (b *Board) OnStationVisited(station string) {
	if b.Active != nil && b.Active.recordVisit(station) {
		b.complete(b.Active)
	}
}

func (b *Board) complete(m *Mission) {
	b.Active = nil
	b.Completed = append(b.Completed, m)

	b.log.Info().Str("mission", m.Title).Int("credits", m.Credits).Msg("Mission completed")
	b.emit.Emit(event.EventMissionCompleted, &event.MissionPayload{
		ID:      m.ID.String(),
		Title:   m.Title,
		Credits: m.Credits,
	})

	b.Available = append(b.Available, b.Generate())
}

func (b *Board) fail(m *Mission, reason string) {
	b.Active = nil

	b.log.Info().Str("mission", m.Title).Str("reason", reason).Msg("Mission failed")
	b.emit.Emit(event.EventMissionFailed, &event.MissionPayload{
		ID:     m.ID.String(),
		Title:  m.Title,
		Reason: reason,
	})
}

// Generate creates a procedural bounty contract
func (b *Board) Generate() *Mission {
	if b.rng.Float64() < parameter.GeneratedPatrolChance {
		return New(Spec{
			Title:       "Patrol Duty",
			Description: "Patrol the sector and eliminate threats.",
			Type:        TypeBounty,
			TargetType:  AnyEnemy,
			TargetCount: parameter.PatrolKillsMin + b.rng.Intn(parameter.PatrolKillsSpread),
			Credits:     parameter.PatrolRewardMin + b.rng.Intn(parameter.PatrolRewardSpread),
			Giver:       "Station Commander",
		})
	}
	return New(Spec{
		Title:       "Priority Target",
		Description: "Eliminate the designated enemy vessel.",
		Type:        TypeBounty,
		TargetType:  core.EnemyType(b.rng.Intn(int(core.EnemyTypeCount))),
		TargetCount: 1,
		Credits:     parameter.PriorityRewardMin + b.rng.Intn(parameter.PriorityRewardSpread),
		Giver:       "Intelligence Officer",
	})
}
