package mission

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/solar-winds/core"
	"github.com/lixenwraith/solar-winds/event"
)

type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(n int) int   { return min(r.n, n-1) }

func newTestBoard(t *testing.T, rng Rand) (*Board, *event.Bus) {
	t.Helper()
	bus := event.NewBus()
	return NewBoard(rng, bus, zerolog.Nop()), bus
}

func byTitle(t *testing.T, b *Board, title string) *Mission {
	t.Helper()
	for _, m := range b.Available {
		if m.Title == title {
			return m
		}
	}
	t.Fatalf("mission %q not offered", title)
	return nil
}

func TestStartingMissions(t *testing.T) {
	b, _ := newTestBoard(t, fixedRand{})
	require.Len(t, b.Available, 5)
	assert.Nil(t, b.Active)

	scout := byTitle(t, b, "Scout Hunter")
	assert.Equal(t, core.EnemyScout, scout.TargetType)
	assert.Equal(t, 2, scout.TargetCount)
	assert.Equal(t, 200, scout.Credits)

	survey := byTitle(t, b, "Survey Run")
	assert.Equal(t, TypeExploration, survey.Type)
	assert.Equal(t, "RESEARCH LAB", survey.Destination)
}

func TestAcceptSingleActive(t *testing.T) {
	b, _ := newTestBoard(t, fixedRand{})
	first := byTitle(t, b, "Clear the Sector")

	m, err := b.Accept(first.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusActive, m.Status)
	assert.Len(t, b.Available, 4)

	second := byTitle(t, b, "Heavy Assault")
	_, err = b.Accept(second.ID)
	assert.ErrorIs(t, err, ErrMissionActive)

	require.NoError(t, b.Abandon())
	assert.Equal(t, StatusFailed, first.Status)
	assert.Nil(t, b.Active)

	_, err = b.Accept(uuid.New())
	assert.ErrorIs(t, err, ErrUnknownMission)
	assert.ErrorIs(t, b.Abandon(), ErrNoActive)
}

func TestBountyCompletion(t *testing.T) {
	b, bus := newTestBoard(t, fixedRand{f: 0.1, n: 1})
	var paid int
	bus.Subscribe(func(ev event.GameEvent) {
		paid += ev.Payload.(*event.MissionPayload).Credits
	}, event.EventMissionCompleted)

	scout := byTitle(t, b, "Scout Hunter")
	_, err := b.Accept(scout.ID)
	require.NoError(t, err)

	b.OnEnemyKilled(core.EnemyFighter)
	assert.Equal(t, 0, scout.Kills, "non-matching type must not count")

	b.OnEnemyKilled(core.EnemyScout)
	assert.Equal(t, "1/2 targets", scout.Progress())
	b.OnEnemyKilled(core.EnemyScout)

	assert.Equal(t, StatusCompleted, scout.Status)
	assert.Nil(t, b.Active)
	require.Len(t, b.Completed, 1)
	assert.Equal(t, 200, paid)

	// Replacement contract is a patrol bounty under the fixed roll
	require.Len(t, b.Available, 5)
	gen := b.Available[len(b.Available)-1]
	assert.Equal(t, "Patrol Duty", gen.Title)
	assert.Equal(t, 3, gen.TargetCount)
	assert.Equal(t, 201, gen.Credits)
}

func TestAnyTargetBounty(t *testing.T) {
	b, _ := newTestBoard(t, fixedRand{})
	m := byTitle(t, b, "Clear the Sector")
	_, err := b.Accept(m.ID)
	require.NoError(t, err)

	for _, et := range []core.EnemyType{core.EnemyScout, core.EnemyHeavy, core.EnemyFighter} {
		b.OnEnemyKilled(et)
	}
	assert.Equal(t, StatusCompleted, m.Status)
}

func TestDestinationMission(t *testing.T) {
	b, _ := newTestBoard(t, fixedRand{})
	m := byTitle(t, b, "Supply Delivery")
	_, err := b.Accept(m.ID)
	require.NoError(t, err)

	b.OnEnemyKilled(core.EnemyScout)
	b.OnStationVisited("ALPHA STATION")
	assert.Equal(t, StatusActive, m.Status)

	b.OnStationVisited("TRADING POST")
	assert.Equal(t, StatusCompleted, m.Status)
}

func TestTimeLimitFails(t *testing.T) {
	b, bus := newTestBoard(t, fixedRand{})
	var reason string
	bus.Subscribe(func(ev event.GameEvent) {
		reason = ev.Payload.(*event.MissionPayload).Reason
	}, event.EventMissionFailed)

	m := New(Spec{Title: "Rush", Type: TypeBounty, TargetType: AnyEnemy, TimeLimit: 65})
	b.Available = append(b.Available, m)
	_, err := b.Accept(m.ID)
	require.NoError(t, err)
	assert.Equal(t, "1:05", m.TimeText())

	b.Update(30)
	assert.Equal(t, StatusActive, m.Status)
	b.Update(40)
	assert.Equal(t, StatusFailed, m.Status)
	assert.Nil(t, b.Active)
	assert.Equal(t, "time expired", reason)
}

func TestGeneratePriorityTarget(t *testing.T) {
	b, _ := newTestBoard(t, fixedRand{f: 0.9, n: 2})
	m := b.Generate()
	assert.Equal(t, "Priority Target", m.Title)
	assert.Equal(t, core.EnemyHeavy, m.TargetType)
	assert.Equal(t, 1, m.TargetCount)
	assert.Equal(t, 152, m.Credits)
}

func TestReset(t *testing.T) {
	b, _ := newTestBoard(t, fixedRand{})
	m := byTitle(t, b, "Heavy Assault")
	_, err := b.Accept(m.ID)
	require.NoError(t, err)

	b.Reset()
	assert.Nil(t, b.Active)
	assert.Len(t, b.Available, 5)
	assert.Empty(t, b.Completed)
}
