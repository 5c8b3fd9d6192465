package engine

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/lixenwraith/solar-winds/event"
)

const instrumentationName = "github.com/lixenwraith/solar-winds/engine"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// simMetrics are the simulation counters, no-op unless a provider is installed
type simMetrics struct {
	ticks     metric.Int64Counter
	spawned   metric.Int64Counter
	destroyed metric.Int64Counter
	fired     metric.Int64Counter
}

func newSimMetrics() (*simMetrics, error) {
	m := meter()
	sm := &simMetrics{}
	var err error

	sm.ticks, err = m.Int64Counter("sim.ticks",
		metric.WithDescription("Simulation ticks executed"))
	if err != nil {
		return nil, fmt.Errorf("creating ticks counter: %w", err)
	}
	sm.spawned, err = m.Int64Counter("sim.enemies.spawned",
		metric.WithDescription("Enemies spawned by type"))
	if err != nil {
		return nil, fmt.Errorf("creating spawned counter: %w", err)
	}
	sm.destroyed, err = m.Int64Counter("sim.enemies.destroyed",
		metric.WithDescription("Ships destroyed"))
	if err != nil {
		return nil, fmt.Errorf("creating destroyed counter: %w", err)
	}
	sm.fired, err = m.Int64Counter("sim.projectiles.fired",
		metric.WithDescription("Projectiles fired, split by homing"))
	if err != nil {
		return nil, fmt.Errorf("creating fired counter: %w", err)
	}
	return sm, nil
}

// HandleEvent counts bus traffic
func (sm *simMetrics) HandleEvent(ev event.GameEvent) {
	ctx := context.Background()
	switch p := ev.Payload.(type) {
	case *event.EnemySpawnedPayload:
		sm.spawned.Add(ctx, 1, metric.WithAttributes(attribute.String("type", p.Type.String())))
	case *event.ShipDestroyedPayload:
		sm.destroyed.Add(ctx, 1, metric.WithAttributes(attribute.Bool("player", p.Ship == PlayerID)))
	case *event.ShipFiredPayload:
		sm.fired.Add(ctx, 1, metric.WithAttributes(attribute.Bool("homing", p.Homing)))
	}
}

// EventTypes returns the counted event types
func (sm *simMetrics) EventTypes() []event.EventType {
	return []event.EventType{event.EventEnemySpawned, event.EventShipDestroyed, event.EventShipFired}
}
