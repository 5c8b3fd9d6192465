package world

import (
	"errors"
	"testing"

	"github.com/lixenwraith/solar-winds/component"
	"github.com/lixenwraith/solar-winds/event"
	"github.com/lixenwraith/solar-winds/vmath"
)

func shipAt(x, y float64) *component.Ship {
	return component.NewShip(1, vmath.Vec2{X: x, Y: y}, component.PlayerHandling())
}

func TestCanDock(t *testing.T) {
	st := NewStation("TEST", StationHome, 0, 0)
	tests := []struct {
		name string
		pos  vmath.Vec2
		vel  vmath.Vec2
		want bool
	}{
		{"Close and slow", vmath.Vec2{X: 100}, vmath.Vec2{X: 10}, true},
		{"Too far", vmath.Vec2{X: 121}, vmath.Vec2{}, false},
		{"Too fast", vmath.Vec2{X: 50}, vmath.Vec2{X: 80}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := shipAt(tt.pos.X, tt.pos.Y)
			s.Vel = tt.vel
			if got := st.CanDock(s); got != tt.want {
				t.Errorf("CanDock = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDockRepairsAndSnaps(t *testing.T) {
	st := NewStation("TRADING POST", StationTrading, 2000, 500)
	s := shipAt(2050, 520)
	s.Vel = vmath.Vec2{X: 20}
	s.Hull.Set(10)
	s.Shields.Set(0)

	bus := event.NewBus()
	var docked string
	bus.Subscribe(func(ev event.GameEvent) {
		docked = ev.Payload.(*event.DockPayload).Station
	}, event.EventShipDocked)

	if err := st.Dock(s, bus); err != nil {
		t.Fatalf("Dock: %v", err)
	}
	if !s.Docked || s.Pos != st.Pos || s.Vel != (vmath.Vec2{}) {
		t.Errorf("Expected snapped and stopped, got %+v", s.Kinetic)
	}
	if s.Hull.Value != s.Hull.Max || s.Shields.Value != s.Shields.Max {
		t.Error("Expected full repair")
	}
	if docked != "TRADING POST" {
		t.Errorf("Expected dock event, got %q", docked)
	}

	if err := st.Dock(s, nil); !errors.Is(err, ErrAlreadyDocked) {
		t.Errorf("Expected ErrAlreadyDocked, got %v", err)
	}

	if err := st.Undock(s, bus); err != nil {
		t.Fatalf("Undock: %v", err)
	}
	if s.Docked || s.Pos != (vmath.Vec2{X: 2170, Y: 500}) {
		t.Errorf("Expected release at (2170,500), got %+v", s.Pos)
	}
	if err := st.Undock(s, nil); !errors.Is(err, ErrNotDocked) {
		t.Errorf("Expected ErrNotDocked, got %v", err)
	}
}

func TestDockOutOfRange(t *testing.T) {
	st := NewStation("TEST", StationHome, 0, 0)
	if err := st.Dock(shipAt(500, 0), nil); !errors.Is(err, ErrNotInRange) {
		t.Errorf("Expected ErrNotInRange, got %v", err)
	}
}

func TestSectorLookup(t *testing.T) {
	sec := DefaultSector()
	if len(sec.Stations) != 4 {
		t.Fatalf("Expected 4 stations, got %d", len(sec.Stations))
	}
	near, d := sec.Nearest(vmath.Vec2{X: 900, Y: -1700})
	if near.Name != "RESEARCH LAB" {
		t.Errorf("Expected RESEARCH LAB nearest, got %s at %.0f", near.Name, d)
	}
	if _, ok := sec.ByName("OUTPOST GAMMA"); !ok {
		t.Error("Expected OUTPOST GAMMA")
	}
	if st := sec.InDockRange(shipAt(10, 10)); st == nil || st.Kind != StationHome {
		t.Error("Expected home station in range at origin")
	}
}
