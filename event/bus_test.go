package event

import "testing"

func TestBusDispatchOrder(t *testing.T) {
	b := NewBus()
	var order []string

	b.Subscribe(func(GameEvent) { order = append(order, "first") }, EventShipFired)
	b.Subscribe(func(GameEvent) { order = append(order, "second") }, EventShipFired, EventShipDestroyed)

	b.Emit(EventShipFired, &ShipFiredPayload{Ship: 1})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("Expected registration order, got %v", order)
	}
	if b.HandlerCount(EventShipDestroyed) != 1 {
		t.Errorf("Expected 1 destroyed handler, got %d", b.HandlerCount(EventShipDestroyed))
	}
}

func TestBusPayloadAndCount(t *testing.T) {
	b := NewBus()
	var got *ShipDamagedPayload
	b.Subscribe(func(ev GameEvent) {
		got = ev.Payload.(*ShipDamagedPayload)
	}, EventShipDamaged)

	b.Emit(EventShipDamaged, &ShipDamagedPayload{Ship: 3, ShieldDamage: 5, HullDamage: 2})
	b.Emit(EventMissionFailed, nil)

	if got == nil || got.Ship != 3 || got.HullDamage != 2 {
		t.Fatalf("Unexpected payload %+v", got)
	}
	if b.Count(EventShipDamaged) != 1 || b.Count(EventMissionFailed) != 1 {
		t.Errorf("Expected one of each, got %d/%d", b.Count(EventShipDamaged), b.Count(EventMissionFailed))
	}
}

func TestEventTypeString(t *testing.T) {
	if EventCreditsAwarded.String() != "credits_awarded" {
		t.Errorf("Unexpected name %q", EventCreditsAwarded.String())
	}
	if EventType(99).String() != "unknown" {
		t.Error("Expected unknown for out of range")
	}
}
